package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitRepository interface {
	FindAll() ([]model.Unit, error)
	FindByID(id uuid.UUID) (*model.Unit, error)
	FindByCode(code string) (*model.Unit, error)
	Create(unit *model.Unit) error
	Update(unit *model.Unit) error
	Delete(id uuid.UUID) error
}

type unitRepo struct {
	db *gorm.DB
}

func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{db}
}

func (r *unitRepo) FindAll() ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.Order("code ASC").Find(&units).Error
	return units, err
}

func (r *unitRepo) FindByID(id uuid.UUID) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) FindByCode(code string) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) Create(unit *model.Unit) error {
	return r.db.Create(unit).Error
}

func (r *unitRepo) Update(unit *model.Unit) error {
	return r.db.Save(unit).Error
}

// Delete removes the unit permanently. Referential checks happen in the
// service before this is called.
func (r *unitRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.Unit{}, "id = ?", id).Error
}
