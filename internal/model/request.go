package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RequestStatus is the lifecycle status of an inbound or outbound stock
// request. Pending is the only state that allows edits and deletion;
// Approved and Rejected are terminal here. Completed exists as a downstream
// value set by warehouse execution, never by this service.
type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestApproved  RequestStatus = "Approved"
	RequestRejected  RequestStatus = "Rejected"
	RequestCompleted RequestStatus = "Completed"
)

// Editable reports whether header and line items may still change
func (s RequestStatus) Editable() bool {
	return s == RequestPending
}

// ApprovalAction is the decision taken on a Pending request
type ApprovalAction string

const (
	ActionApprove ApprovalAction = "Approve"
	ActionReject  ApprovalAction = "Reject"
)

// InboundRequest is a proposed stock receipt into a warehouse
type InboundRequest struct {
	BaseModel
	RequestNo    string        `gorm:"type:varchar(30);uniqueIndex;not null" json:"requestNo"`
	SupplierName string        `gorm:"type:varchar(255);not null" json:"supplierName" validate:"required"`
	WarehouseID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"warehouseId" validate:"uuid_required"`
	Warehouse    *Warehouse    `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Note         string        `gorm:"type:text" json:"note"`
	Status       RequestStatus `gorm:"type:varchar(20);default:'Pending';index" json:"status"`

	RejectReason    string `gorm:"type:text" json:"rejectReason,omitempty"`
	ApprovalComment string `gorm:"type:text" json:"approvalComment,omitempty"`

	CreatedByID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"createdBy"`
	ApprovedByID *uuid.UUID `gorm:"type:uuid" json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`

	Items []InboundItem `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"items"`
}

// InboundItem is a single product-quantity line within an inbound request
type InboundItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	RequestID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"requestId"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null" json:"productId" validate:"uuid_required"`
	Product          *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity         decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity"`
	ReceivedQuantity decimal.Decimal `gorm:"type:numeric(14,3);default:0" json:"receivedQuantity"`
	StoragePosition  string          `gorm:"type:varchar(50)" json:"storagePosition"`
	LineNote         string          `gorm:"type:text" json:"lineNote"`
}

func (i *InboundItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

// OutboundRequest is a proposed stock issue out of a warehouse
type OutboundRequest struct {
	BaseModel
	RequestNo    string        `gorm:"type:varchar(30);uniqueIndex;not null" json:"requestNo"`
	CustomerName string        `gorm:"type:varchar(255);not null" json:"customerName" validate:"required"`
	WarehouseID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"warehouseId" validate:"uuid_required"`
	Warehouse    *Warehouse    `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Note         string        `gorm:"type:text" json:"note"`
	Status       RequestStatus `gorm:"type:varchar(20);default:'Pending';index" json:"status"`

	RejectReason    string `gorm:"type:text" json:"rejectReason,omitempty"`
	ApprovalComment string `gorm:"type:text" json:"approvalComment,omitempty"`

	CreatedByID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"createdBy"`
	ApprovedByID *uuid.UUID `gorm:"type:uuid" json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`

	Items []OutboundItem `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"items"`
}

// OutboundItem is a single product-quantity line within an outbound request
type OutboundItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	RequestID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"requestId"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null" json:"productId" validate:"uuid_required"`
	Product         *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity        decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity"`
	PickedQuantity  decimal.Decimal `gorm:"type:numeric(14,3);default:0" json:"pickedQuantity"`
	StoragePosition string          `gorm:"type:varchar(50)" json:"storagePosition"`
	LineNote        string          `gorm:"type:text" json:"lineNote"`
}

func (i *OutboundItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
