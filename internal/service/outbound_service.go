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

type OutboundService interface {
	GetAll(filter RequestFilter) ([]model.OutboundRequest, error)
	GetMine(userID uuid.UUID, filter RequestFilter) ([]model.OutboundRequest, error)
	GetByID(id uuid.UUID) (*model.OutboundRequest, error)
	Create(req *OutboundRequestInput, actorID uuid.UUID, actorName string) (*model.OutboundRequest, error)
	Update(id uuid.UUID, req *OutboundRequestInput, actorID uuid.UUID) (*model.OutboundRequest, error)
	Delete(id uuid.UUID, actorID uuid.UUID) error
	Decide(id uuid.UUID, req *ApprovalRequest, actorID uuid.UUID, actorName string) (*model.OutboundRequest, error)
}

// OutboundRequestInput is the create/update payload for an outbound request
type OutboundRequestInput struct {
	CustomerName string             `json:"customerName" validate:"required"`
	WarehouseID  uuid.UUID          `json:"warehouseId" validate:"uuid_required"`
	Note         string             `json:"note"`
	Items        []RequestItemInput `json:"items"`
}

type outboundService struct {
	outboundRepo  repository.OutboundRepository
	warehouseRepo repository.WarehouseRepository
	seq           sequence.Generator
	notifier      Notifier
}

func NewOutboundService(outboundRepo repository.OutboundRepository, warehouseRepo repository.WarehouseRepository,
	seq sequence.Generator, notifier Notifier) OutboundService {
	return &outboundService{
		outboundRepo:  outboundRepo,
		warehouseRepo: warehouseRepo,
		seq:           seq,
		notifier:      notifier,
	}
}

func (s *outboundService) GetAll(filter RequestFilter) ([]model.OutboundRequest, error) {
	requests, err := s.outboundRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return FilterOutbound(requests, filter), nil
}

func (s *outboundService) GetMine(userID uuid.UUID, filter RequestFilter) ([]model.OutboundRequest, error) {
	requests, err := s.outboundRepo.FindByCreator(userID)
	if err != nil {
		return nil, err
	}
	return FilterOutbound(requests, filter), nil
}

func (s *outboundService) GetByID(id uuid.UUID) (*model.OutboundRequest, error) {
	request, err := s.outboundRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	return request, nil
}

func (s *outboundService) Create(req *OutboundRequestInput, actorID uuid.UUID, actorName string) (*model.OutboundRequest, error) {
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

	requestNo, err := s.seq.Next(context.Background(), "OB")
	if err != nil {
		return nil, err
	}

	request := &model.OutboundRequest{
		RequestNo:    requestNo,
		CustomerName: req.CustomerName,
		WarehouseID:  req.WarehouseID,
		Note:         req.Note,
		Status:       model.RequestPending,
		CreatedByID:  actorID,
		Items:        buildOutboundItems(req.Items),
	}
	request.CreatedBy = actorID.String()
	request.UpdatedBy = actorID.String()

	if err := s.outboundRepo.Create(request); err != nil {
		return nil, err
	}

	s.notifier.BroadcastEvent(ws.RequestEvent{
		Type:      "request_created",
		Direction: "outbound",
		RequestID: request.ID.String(),
		RequestNo: request.RequestNo,
		Status:    string(request.Status),
		Actor:     actorName,
	})

	return s.outboundRepo.FindByID(request.ID)
}

func (s *outboundService) Update(id uuid.UUID, req *OutboundRequestInput, actorID uuid.UUID) (*model.OutboundRequest, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	request, err := s.outboundRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if !request.Status.Editable() {
		return nil, ErrRequestNotEditable
	}

	if _, err := s.warehouseRepo.FindByID(req.WarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}

	request.CustomerName = req.CustomerName
	request.WarehouseID = req.WarehouseID
	request.Note = req.Note
	request.Items = buildOutboundItems(req.Items)
	for i := range request.Items {
		request.Items[i].RequestID = request.ID
	}
	request.UpdatedBy = actorID.String()

	if err := s.outboundRepo.ReplaceContent(request); err != nil {
		return nil, err
	}
	return s.outboundRepo.FindByID(id)
}

func (s *outboundService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	request, err := s.outboundRepo.FindByID(id)
	if err != nil {
		return ErrRequestNotFound
	}
	if request.Status != model.RequestPending {
		return ErrRequestNotDeletable
	}
	return s.outboundRepo.Delete(id, actorID.String())
}

func (s *outboundService) Decide(id uuid.UUID, req *ApprovalRequest, actorID uuid.UUID, actorName string) (*model.OutboundRequest, error) {
	if err := validateApproval(req); err != nil {
		return nil, err
	}

	request, err := s.outboundRepo.FindByID(id)
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

	if err := s.outboundRepo.UpdateApproval(request); err != nil {
		return nil, err
	}

	s.notifier.BroadcastEvent(ws.RequestEvent{
		Type:      eventType,
		Direction: "outbound",
		RequestID: request.ID.String(),
		RequestNo: request.RequestNo,
		Status:    string(request.Status),
		Actor:     actorName,
	})

	return s.outboundRepo.FindByID(id)
}

func buildOutboundItems(inputs []RequestItemInput) []model.OutboundItem {
	items := make([]model.OutboundItem, len(inputs))
	for i, input := range inputs {
		items[i] = model.OutboundItem{
			ProductID:       input.ProductID,
			Quantity:        input.Quantity,
			StoragePosition: input.StoragePosition,
			LineNote:        input.LineNote,
		}
	}
	return items
}
