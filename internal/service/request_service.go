package service

import (
	"errors"
	"strings"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrNoItems              = errors.New("request must contain at least 1 item")
	ErrQuantityNotPositive  = errors.New("item quantity must be greater than zero")
	ErrRequestNotEditable   = errors.New("request can no longer be edited")
	ErrRequestNotDeletable  = errors.New("only pending requests can be deleted")
	ErrRequestNotPending    = errors.New("request has already been decided")
	ErrRejectReasonRequired = errors.New("a reject reason is required")
	ErrInvalidAction        = errors.New("approval action must be Approve or Reject")
)

// Notifier pushes request lifecycle events to connected clients. Satisfied
// by *ws.Hub; tests substitute a no-op.
type Notifier interface {
	BroadcastEvent(event ws.RequestEvent)
}

// RequestItemInput is one product-quantity line in a create/update payload
type RequestItemInput struct {
	ProductID       uuid.UUID       `json:"productId" validate:"uuid_required"`
	Quantity        decimal.Decimal `json:"quantity"`
	StoragePosition string          `json:"storagePosition"`
	LineNote        string          `json:"lineNote"`
}

// ApprovalRequest is the decision payload for POST /:id/approval
type ApprovalRequest struct {
	Action       model.ApprovalAction `json:"action"`
	Comment      string               `json:"comment"`
	RejectReason string               `json:"rejectReason"`
}

// validateItems applies the shared line-item rules: at least one line, every
// quantity strictly positive. Runs before anything touches a repository.
func validateItems(items []RequestItemInput) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return errors.New("item product is required")
		}
		if !item.Quantity.IsPositive() {
			return ErrQuantityNotPositive
		}
	}
	return nil
}

// validateApproval applies the shared decision rules. The empty-reason check
// runs before any repository access, so an invalid reject never leaves the
// service layer.
func validateApproval(req *ApprovalRequest) error {
	switch req.Action {
	case model.ActionApprove:
		return nil
	case model.ActionReject:
		if strings.TrimSpace(req.RejectReason) == "" {
			return ErrRejectReasonRequired
		}
		return nil
	default:
		return ErrInvalidAction
	}
}

// RequestFilter narrows a fetched request list by request-number substring
// and exact status. Zero values match everything.
type RequestFilter struct {
	RequestNo string
	Status    model.RequestStatus
}

func (f RequestFilter) matches(requestNo string, status model.RequestStatus) bool {
	if f.RequestNo != "" && !strings.Contains(strings.ToLower(requestNo), strings.ToLower(f.RequestNo)) {
		return false
	}
	if f.Status != "" && status != f.Status {
		return false
	}
	return true
}

// FilterInbound is a pure projection over the fetched collection: it never
// mutates the input and yields the same result for the same inputs.
func FilterInbound(requests []model.InboundRequest, f RequestFilter) []model.InboundRequest {
	result := make([]model.InboundRequest, 0, len(requests))
	for _, req := range requests {
		if f.matches(req.RequestNo, req.Status) {
			result = append(result, req)
		}
	}
	return result
}

// FilterOutbound mirrors FilterInbound for outbound requests
func FilterOutbound(requests []model.OutboundRequest, f RequestFilter) []model.OutboundRequest {
	result := make([]model.OutboundRequest, 0, len(requests))
	for _, req := range requests {
		if f.matches(req.RequestNo, req.Status) {
			result = append(result, req)
		}
	}
	return result
}
