package service

import (
	"context"
	"fmt"
	"time"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/sequence"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
)

type InboundService interface {
	GetAll(filter RequestFilter) ([]model.InboundRequest, error)
	GetMine(userID uuid.UUID, filter RequestFilter) ([]model.InboundRequest, error)
	GetByID(id uuid.UUID) (*model.InboundRequest, error)
	Create(req *InboundRequestInput, actorID uuid.UUID, actorName string) (*model.InboundRequest, error)
	Update(id uuid.UUID, req *InboundRequestInput, actorID uuid.UUID) (*model.InboundRequest, error)
	Delete(id uuid.UUID, actorID uuid.UUID) error
	Decide(id uuid.UUID, req *ApprovalRequest, actorID uuid.UUID, actorName string) (*model.InboundRequest, error)
}

// InboundRequestInput is the create/update payload for an inbound request
type InboundRequestInput struct {
	SupplierName string             `json:"supplierName" validate:"required"`
	WarehouseID  uuid.UUID          `json:"warehouseId" validate:"uuid_required"`
	Note         string             `json:"note"`
	Items        []RequestItemInput `json:"items"`
}

type inboundService struct {
	inboundRepo   repository.InboundRepository
	warehouseRepo repository.WarehouseRepository
	seq           sequence.Generator
	notifier      Notifier
}

func NewInboundService(inboundRepo repository.InboundRepository, warehouseRepo repository.WarehouseRepository,
	seq sequence.Generator, notifier Notifier) InboundService {
	return &inboundService{
		inboundRepo:   inboundRepo,
		warehouseRepo: warehouseRepo,
		seq:           seq,
		notifier:      notifier,
	}
}

func (s *inboundService) GetAll(filter RequestFilter) ([]model.InboundRequest, error) {
	requests, err := s.inboundRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return FilterInbound(requests, filter), nil
}

func (s *inboundService) GetMine(userID uuid.UUID, filter RequestFilter) ([]model.InboundRequest, error) {
	requests, err := s.inboundRepo.FindByCreator(userID)
	if err != nil {
		return nil, err
	}
	return FilterInbound(requests, filter), nil
}

func (s *inboundService) GetByID(id uuid.UUID) (*model.InboundRequest, error) {
	request, err := s.inboundRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	return request, nil
}

func (s *inboundService) Create(req *InboundRequestInput, actorID uuid.UUID, actorName string) (*model.InboundRequest, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	if _, err := s.warehouseRepo.FindByID(req.WarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}

	requestNo, err := s.seq.Next(context.Background(), "IB")
	if err != nil {
		return nil, err
	}

	request := &model.InboundRequest{
		RequestNo:    requestNo,
		SupplierName: req.SupplierName,
		WarehouseID:  req.WarehouseID,
		Note:         req.Note,
		Status:       model.RequestPending,
		CreatedByID:  actorID,
		Items:        buildInboundItems(req.Items),
	}
	request.CreatedBy = actorID.String()
	request.UpdatedBy = actorID.String()

	if err := s.inboundRepo.Create(request); err != nil {
		return nil, err
	}

	s.notifier.BroadcastEvent(ws.RequestEvent{
		Type:      "request_created",
		Direction: "inbound",
		RequestID: request.ID.String(),
		RequestNo: request.RequestNo,
		Status:    string(request.Status),
		Actor:     actorName,
	})

	return s.inboundRepo.FindByID(request.ID)
}

func (s *inboundService) Update(id uuid.UUID, req *InboundRequestInput, actorID uuid.UUID) (*model.InboundRequest, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	request, err := s.inboundRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if !request.Status.Editable() {
		return nil, ErrRequestNotEditable
	}

	if _, err := s.warehouseRepo.FindByID(req.WarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}

	request.SupplierName = req.SupplierName
	request.WarehouseID = req.WarehouseID
	request.Note = req.Note
	request.Items = buildInboundItems(req.Items)
	for i := range request.Items {
		request.Items[i].RequestID = request.ID
	}
	request.UpdatedBy = actorID.String()

	if err := s.inboundRepo.ReplaceContent(request); err != nil {
		return nil, err
	}
	return s.inboundRepo.FindByID(id)
}

func (s *inboundService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	request, err := s.inboundRepo.FindByID(id)
	if err != nil {
		return ErrRequestNotFound
	}
	if request.Status != model.RequestPending {
		return ErrRequestNotDeletable
	}
	return s.inboundRepo.Delete(id, actorID.String())
}

func (s *inboundService) Decide(id uuid.UUID, req *ApprovalRequest, actorID uuid.UUID, actorName string) (*model.InboundRequest, error) {
	if err := validateApproval(req); err != nil {
		return nil, err
	}

	request, err := s.inboundRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if request.Status != model.RequestPending {
		return nil, ErrRequestNotPending
	}

	now := time.Now()
	request.ApprovedByID = &actorID
	request.ApprovedAt = &now
	request.ApprovalComment = req.Comment
	request.UpdatedBy = actorID.String()

	eventType := "request_approved"
	if req.Action == model.ActionApprove {
		request.Status = model.RequestApproved
	} else {
		request.Status = model.RequestRejected
		request.RejectReason = req.RejectReason
		eventType = "request_rejected"
	}

	if err := s.inboundRepo.UpdateApproval(request); err != nil {
		return nil, err
	}

	s.notifier.BroadcastEvent(ws.RequestEvent{
		Type:      eventType,
		Direction: "inbound",
		RequestID: request.ID.String(),
		RequestNo: request.RequestNo,
		Status:    string(request.Status),
		Actor:     actorName,
	})

	return s.inboundRepo.FindByID(id)
}

func buildInboundItems(inputs []RequestItemInput) []model.InboundItem {
	items := make([]model.InboundItem, len(inputs))
	for i, input := range inputs {
		items[i] = model.InboundItem{
			ProductID:       input.ProductID,
			Quantity:        input.Quantity,
			StoragePosition: input.StoragePosition,
			LineNote:        input.LineNote,
		}
	}
	return items
}
