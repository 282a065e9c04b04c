package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	FindAll() ([]model.Warehouse, error)
	FindByID(id uuid.UUID) (*model.Warehouse, error)
	FindByCode(code string) (*model.Warehouse, error)
	Create(warehouse *model.Warehouse) error
	Update(warehouse *model.Warehouse) error
	SeedDefaults() error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) FindAll() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := r.db.Order("code ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.First(&warehouse, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) FindByCode(code string) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.First(&warehouse, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Save(warehouse).Error
}

// SeedDefaults creates default warehouses if they don't exist
func (r *warehouseRepo) SeedDefaults() error {
	for _, wh := range model.DefaultWarehouses {
		var existing model.Warehouse
		err := r.db.Where("code = ?", wh.Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&wh).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
