package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeInboundRepo struct {
	requests  map[uuid.UUID]*model.InboundRequest
	findCalls int
	deleted   map[uuid.UUID]string
}

func newFakeInboundRepo() *fakeInboundRepo {
	return &fakeInboundRepo{
		requests: make(map[uuid.UUID]*model.InboundRequest),
		deleted:  make(map[uuid.UUID]string),
	}
}

func (r *fakeInboundRepo) FindAll() ([]model.InboundRequest, error) {
	var result []model.InboundRequest
	for _, req := range r.requests {
		result = append(result, *req)
	}
	return result, nil
}

func (r *fakeInboundRepo) FindByCreator(userID uuid.UUID) ([]model.InboundRequest, error) {
	var result []model.InboundRequest
	for _, req := range r.requests {
		if req.CreatedByID == userID {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (r *fakeInboundRepo) FindByID(id uuid.UUID) (*model.InboundRequest, error) {
	r.findCalls++
	req, ok := r.requests[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *req
	return &clone, nil
}

func (r *fakeInboundRepo) Create(req *model.InboundRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakeInboundRepo) ReplaceContent(req *model.InboundRequest) error {
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakeInboundRepo) UpdateApproval(req *model.InboundRequest) error {
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakeInboundRepo) Delete(id uuid.UUID, deletedBy string) error {
	delete(r.requests, id)
	r.deleted[id] = deletedBy
	return nil
}

func (r *fakeInboundRepo) CountByStatus(status model.RequestStatus) (int64, error) {
	var n int64
	for _, req := range r.requests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeWarehouseRepo struct {
	warehouses map[uuid.UUID]*model.Warehouse
}

func newFakeWarehouseRepo(ids ...uuid.UUID) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[uuid.UUID]*model.Warehouse)}
	for i, id := range ids {
		w := &model.Warehouse{Code: fmt.Sprintf("WH-%02d", i+1), Name: "Warehouse"}
		w.ID = id
		r.warehouses[id] = w
	}
	return r
}

func (r *fakeWarehouseRepo) FindAll() ([]model.Warehouse, error) {
	var result []model.Warehouse
	for _, w := range r.warehouses {
		result = append(result, *w)
	}
	return result, nil
}

func (r *fakeWarehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return w, nil
}

func (r *fakeWarehouseRepo) FindByCode(code string) (*model.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.Code == code {
			return w, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeWarehouseRepo) Create(warehouse *model.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) Update(warehouse *model.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) SeedDefaults() error                     { return nil }

type fakeSequence struct {
	n int
}

func (s *fakeSequence) Next(ctx context.Context, prefix string) (string, error) {
	s.n++
	return fmt.Sprintf("%s-20250831-%04d", prefix, s.n), nil
}

type recordingNotifier struct {
	events []ws.RequestEvent
}

func (n *recordingNotifier) BroadcastEvent(event ws.RequestEvent) {
	n.events = append(n.events, event)
}

func validInboundInput(warehouseID uuid.UUID) *InboundRequestInput {
	return &InboundRequestInput{
		SupplierName: "Acme Supplies",
		WarehouseID:  warehouseID,
		Items: []RequestItemInput{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(10)},
		},
	}
}

func newInboundFixture() (*fakeInboundRepo, *recordingNotifier, InboundService, uuid.UUID) {
	repo := newFakeInboundRepo()
	warehouseID := uuid.New()
	notifier := &recordingNotifier{}
	svc := NewInboundService(repo, newFakeWarehouseRepo(warehouseID), &fakeSequence{}, notifier)
	return repo, notifier, svc, warehouseID
}

func TestInboundCreate(t *testing.T) {
	repo, notifier, svc, warehouseID := newInboundFixture()
	actor := uuid.New()

	created, err := svc.Create(validInboundInput(warehouseID), actor, "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.Status != model.RequestPending {
		t.Errorf("new request status = %s, want Pending", created.Status)
	}
	if created.RequestNo != "IB-20250831-0001" {
		t.Errorf("request number = %s", created.RequestNo)
	}
	if created.CreatedByID != actor {
		t.Errorf("creator not recorded")
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected 1 stored request, got %d", len(repo.requests))
	}
	if len(notifier.events) != 1 || notifier.events[0].Type != "request_created" {
		t.Fatalf("expected a request_created event, got %+v", notifier.events)
	}
}

func TestInboundCreateRejectsEmptyItems(t *testing.T) {
	repo, _, svc, warehouseID := newInboundFixture()

	input := validInboundInput(warehouseID)
	input.Items = nil

	if _, err := svc.Create(input, uuid.New(), "alice"); !errors.Is(err, ErrNoItems) {
		t.Fatalf("Create() error = %v, want ErrNoItems", err)
	}
	if len(repo.requests) != 0 {
		t.Fatal("invalid payload reached the repository")
	}
}

func TestInboundCreateRejectsUnknownWarehouse(t *testing.T) {
	_, _, svc, _ := newInboundFixture()

	if _, err := svc.Create(validInboundInput(uuid.New()), uuid.New(), "alice"); !errors.Is(err, ErrWarehouseNotFound) {
		t.Fatalf("Create() error = %v, want ErrWarehouseNotFound", err)
	}
}

func TestInboundUpdateOnlyWhilePending(t *testing.T) {
	repo, _, svc, warehouseID := newInboundFixture()

	created, err := svc.Create(validInboundInput(warehouseID), uuid.New(), "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Pending: the edit goes through
	input := validInboundInput(warehouseID)
	input.SupplierName = "Replacement Supplier"
	updated, err := svc.Update(created.ID, input, uuid.New())
	if err != nil {
		t.Fatalf("Update() on pending request error = %v", err)
	}
	if updated.SupplierName != "Replacement Supplier" {
		t.Errorf("supplier not updated: %s", updated.SupplierName)
	}

	// Decided: the edit is refused
	repo.requests[created.ID].Status = model.RequestApproved
	if _, err := svc.Update(created.ID, input, uuid.New()); !errors.Is(err, ErrRequestNotEditable) {
		t.Fatalf("Update() on approved request error = %v, want ErrRequestNotEditable", err)
	}
}

func TestInboundDeleteOnlyWhilePending(t *testing.T) {
	repo, _, svc, warehouseID := newInboundFixture()
	actor := uuid.New()

	created, err := svc.Create(validInboundInput(warehouseID), actor, "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	repo.requests[created.ID].Status = model.RequestRejected
	if err := svc.Delete(created.ID, actor); !errors.Is(err, ErrRequestNotDeletable) {
		t.Fatalf("Delete() on rejected request error = %v, want ErrRequestNotDeletable", err)
	}

	repo.requests[created.ID].Status = model.RequestPending
	if err := svc.Delete(created.ID, actor); err != nil {
		t.Fatalf("Delete() on pending request error = %v", err)
	}
	if repo.deleted[created.ID] != actor.String() {
		t.Error("deleter not recorded")
	}
}

func TestInboundDecideApprove(t *testing.T) {
	_, notifier, svc, warehouseID := newInboundFixture()
	approver := uuid.New()

	created, err := svc.Create(validInboundInput(warehouseID), uuid.New(), "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	decided, err := svc.Decide(created.ID, &ApprovalRequest{
		Action:  model.ActionApprove,
		Comment: "stock verified",
	}, approver, "bob")
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if decided.Status != model.RequestApproved {
		t.Errorf("status = %s, want Approved", decided.Status)
	}
	if decided.ApprovedByID == nil || *decided.ApprovedByID != approver {
		t.Error("approver not recorded")
	}
	if decided.ApprovedAt == nil {
		t.Error("approval time not recorded")
	}
	if decided.ApprovalComment != "stock verified" {
		t.Errorf("comment = %q", decided.ApprovalComment)
	}

	last := notifier.events[len(notifier.events)-1]
	if last.Type != "request_approved" || last.Actor != "bob" {
		t.Errorf("unexpected event: %+v", last)
	}
}

func TestInboundDecideRejectRequiresReasonBeforeAnyLookup(t *testing.T) {
	repo, _, svc, warehouseID := newInboundFixture()

	created, err := svc.Create(validInboundInput(warehouseID), uuid.New(), "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	callsBefore := repo.findCalls
	_, err = svc.Decide(created.ID, &ApprovalRequest{Action: model.ActionReject}, uuid.New(), "bob")
	if !errors.Is(err, ErrRejectReasonRequired) {
		t.Fatalf("Decide() error = %v, want ErrRejectReasonRequired", err)
	}
	if repo.findCalls != callsBefore {
		t.Error("empty reject reason should be refused before the repository is touched")
	}
}

func TestInboundDecideReject(t *testing.T) {
	_, notifier, svc, warehouseID := newInboundFixture()

	created, err := svc.Create(validInboundInput(warehouseID), uuid.New(), "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	decided, err := svc.Decide(created.ID, &ApprovalRequest{
		Action:       model.ActionReject,
		RejectReason: "quantities exceed dock capacity",
	}, uuid.New(), "bob")
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if decided.Status != model.RequestRejected {
		t.Errorf("status = %s, want Rejected", decided.Status)
	}
	if decided.RejectReason != "quantities exceed dock capacity" {
		t.Errorf("reject reason = %q", decided.RejectReason)
	}

	last := notifier.events[len(notifier.events)-1]
	if last.Type != "request_rejected" {
		t.Errorf("unexpected event: %+v", last)
	}
}

func TestInboundDecideOnlyOnce(t *testing.T) {
	_, _, svc, warehouseID := newInboundFixture()

	created, err := svc.Create(validInboundInput(warehouseID), uuid.New(), "alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Decide(created.ID, &ApprovalRequest{Action: model.ActionApprove}, uuid.New(), "bob"); err != nil {
		t.Fatalf("first Decide() error = %v", err)
	}
	if _, err := svc.Decide(created.ID, &ApprovalRequest{Action: model.ActionApprove}, uuid.New(), "bob"); !errors.Is(err, ErrRequestNotPending) {
		t.Fatalf("second Decide() error = %v, want ErrRequestNotPending", err)
	}
}

func TestInboundGetMine(t *testing.T) {
	_, _, svc, warehouseID := newInboundFixture()
	alice := uuid.New()
	bob := uuid.New()

	if _, err := svc.Create(validInboundInput(warehouseID), alice, "alice"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(validInboundInput(warehouseID), bob, "bob"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	mine, err := svc.GetMine(alice, RequestFilter{})
	if err != nil {
		t.Fatalf("GetMine() error = %v", err)
	}
	if len(mine) != 1 || mine[0].CreatedByID != alice {
		t.Fatalf("expected only alice's request, got %+v", mine)
	}
}
