package model

// Warehouse is reference data selected as the target of inbound and outbound
// requests. Seeded at boot, managed by admins.
type Warehouse struct {
	BaseModel
	Code string `gorm:"type:varchar(20);uniqueIndex;not null" json:"code" validate:"required"`
	Name string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
}

// DefaultWarehouses seeds a usable selection list on a fresh database
var DefaultWarehouses = []Warehouse{
	{Code: "WH-01", Name: "Central Warehouse"},
	{Code: "WH-02", Name: "North Depot"},
}
