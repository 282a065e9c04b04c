package service

import (
	"errors"
	"testing"

	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestValidateItems(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name    string
		items   []RequestItemInput
		wantErr error
	}{
		{
			name:    "empty list",
			items:   nil,
			wantErr: ErrNoItems,
		},
		{
			name: "zero quantity",
			items: []RequestItemInput{
				{ProductID: productID, Quantity: decimal.Zero},
			},
			wantErr: ErrQuantityNotPositive,
		},
		{
			name: "negative quantity",
			items: []RequestItemInput{
				{ProductID: productID, Quantity: decimal.NewFromInt(-3)},
			},
			wantErr: ErrQuantityNotPositive,
		},
		{
			name: "one bad line fails the whole payload",
			items: []RequestItemInput{
				{ProductID: productID, Quantity: decimal.NewFromInt(5)},
				{ProductID: productID, Quantity: decimal.Zero},
			},
			wantErr: ErrQuantityNotPositive,
		},
		{
			name: "fractional quantity is fine",
			items: []RequestItemInput{
				{ProductID: productID, Quantity: decimal.RequireFromString("0.5")},
			},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateItems(tt.items)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateItems() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateApproval(t *testing.T) {
	tests := []struct {
		name    string
		req     ApprovalRequest
		wantErr error
	}{
		{"approve without comment", ApprovalRequest{Action: model.ActionApprove}, nil},
		{"approve with comment", ApprovalRequest{Action: model.ActionApprove, Comment: "looks good"}, nil},
		{"reject with reason", ApprovalRequest{Action: model.ActionReject, RejectReason: "wrong supplier"}, nil},
		{"reject without reason", ApprovalRequest{Action: model.ActionReject}, ErrRejectReasonRequired},
		{"reject with blank reason", ApprovalRequest{Action: model.ActionReject, RejectReason: "   "}, ErrRejectReasonRequired},
		{"unknown action", ApprovalRequest{Action: "Cancel"}, ErrInvalidAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateApproval(&tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateApproval() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func inboundFixture() []model.InboundRequest {
	return []model.InboundRequest{
		{RequestNo: "IB-20250801-0001", Status: model.RequestPending},
		{RequestNo: "IB-20250801-0002", Status: model.RequestApproved},
		{RequestNo: "IB-20250802-0001", Status: model.RequestRejected},
		{RequestNo: "IB-20250803-0007", Status: model.RequestPending},
	}
}

func TestFilterInbound(t *testing.T) {
	tests := []struct {
		name   string
		filter RequestFilter
		want   []string
	}{
		{
			name:   "zero filter matches everything",
			filter: RequestFilter{},
			want:   []string{"IB-20250801-0001", "IB-20250801-0002", "IB-20250802-0001", "IB-20250803-0007"},
		},
		{
			name:   "request number substring",
			filter: RequestFilter{RequestNo: "20250801"},
			want:   []string{"IB-20250801-0001", "IB-20250801-0002"},
		},
		{
			name:   "substring match is case insensitive",
			filter: RequestFilter{RequestNo: "ib-20250802"},
			want:   []string{"IB-20250802-0001"},
		},
		{
			name:   "exact status",
			filter: RequestFilter{Status: model.RequestPending},
			want:   []string{"IB-20250801-0001", "IB-20250803-0007"},
		},
		{
			name:   "both conditions must hold",
			filter: RequestFilter{RequestNo: "20250801", Status: model.RequestPending},
			want:   []string{"IB-20250801-0001"},
		},
		{
			name:   "no match yields empty, not nil panic",
			filter: RequestFilter{RequestNo: "OB-"},
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterInbound(inboundFixture(), tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, req := range got {
				if req.RequestNo != tt.want[i] {
					t.Errorf("result[%d] = %s, want %s", i, req.RequestNo, tt.want[i])
				}
			}
		})
	}
}

func TestFilterInboundDoesNotMutateInput(t *testing.T) {
	source := inboundFixture()

	FilterInbound(source, RequestFilter{Status: model.RequestPending})

	want := inboundFixture()
	for i := range source {
		if source[i].RequestNo != want[i].RequestNo || source[i].Status != want[i].Status {
			t.Fatalf("input slice mutated at index %d", i)
		}
	}
}

func TestFilterInboundIsIdempotent(t *testing.T) {
	filter := RequestFilter{Status: model.RequestPending}

	once := FilterInbound(inboundFixture(), filter)
	twice := FilterInbound(once, filter)

	if len(once) != len(twice) {
		t.Fatalf("second application changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].RequestNo != twice[i].RequestNo {
			t.Errorf("result[%d] changed on second application", i)
		}
	}
}

func TestFilterOutbound(t *testing.T) {
	source := []model.OutboundRequest{
		{RequestNo: "OB-20250801-0001", Status: model.RequestPending},
		{RequestNo: "OB-20250802-0001", Status: model.RequestApproved},
	}

	got := FilterOutbound(source, RequestFilter{Status: model.RequestApproved})
	if len(got) != 1 || got[0].RequestNo != "OB-20250802-0001" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
