package model

import "github.com/google/uuid"

// ProductStatus is the canonical product status vocabulary. Deleting a
// product is a soft transition to INACTIVE, never a physical removal.
type ProductStatus string

const (
	ProductActive   ProductStatus = "ACTIVE"
	ProductInactive ProductStatus = "INACTIVE"
)

type Product struct {
	BaseModel
	// SKU is immutable after creation
	SKU        string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name       string        `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	CategoryID uuid.UUID     `gorm:"type:uuid;not null;index" json:"categoryId" validate:"uuid_required"`
	Category   *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BaseUnitID uuid.UUID     `gorm:"type:uuid;not null;index" json:"baseUnitId" validate:"uuid_required"`
	BaseUnit   *Unit         `gorm:"foreignKey:BaseUnitID" json:"baseUnit,omitempty"`
	Status     ProductStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`
}

// ProductResponse flattens the category name and base unit code the way list
// screens consume them.
type ProductResponse struct {
	ID           uuid.UUID     `json:"id"`
	SKU          string        `json:"sku"`
	Name         string        `json:"name"`
	Status       ProductStatus `json:"status"`
	CategoryID   uuid.UUID     `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	BaseUnitID   uuid.UUID     `json:"baseUnitId"`
	BaseUnitCode string        `json:"baseUnitCode"`
	CreatedAt    string        `json:"createdAt"`
}

// ToResponse converts Product to ProductResponse
func (p *Product) ToResponse() ProductResponse {
	resp := ProductResponse{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		Status:     p.Status,
		CategoryID: p.CategoryID,
		BaseUnitID: p.BaseUnitID,
		CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.BaseUnit != nil {
		resp.BaseUnitCode = p.BaseUnit.Code
	}
	return resp
}
