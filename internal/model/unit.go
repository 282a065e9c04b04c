package model

// Unit is a flat measurement unit entity, referenced by products as their
// base unit. Units are hard-deleted; the unit service refuses deletion while
// any product still references the unit.
type Unit struct {
	BaseModel
	Code        string `gorm:"type:varchar(20);uniqueIndex;not null" json:"code" validate:"required"`
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	IsBaseUnit  bool   `gorm:"default:false" json:"isBaseUnit"`
}
