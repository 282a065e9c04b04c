package service

import (
	"errors"
	"fmt"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrWarehouseNotFound   = errors.New("warehouse not found")
	ErrWarehouseCodeExists = errors.New("warehouse code already exists")
)

type WarehouseService interface {
	GetAll() ([]model.Warehouse, error)
	GetByID(id uuid.UUID) (*model.Warehouse, error)
	Create(req *WarehouseRequest, actorID string) (*model.Warehouse, error)
	Update(id uuid.UUID, req *WarehouseRequest, actorID string) (*model.Warehouse, error)
}

type WarehouseRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

func (s *warehouseService) GetAll() ([]model.Warehouse, error) {
	return s.warehouseRepo.FindAll()
}

func (s *warehouseService) GetByID(id uuid.UUID) (*model.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		return nil, ErrWarehouseNotFound
	}
	return warehouse, nil
}

func (s *warehouseService) Create(req *WarehouseRequest, actorID string) (*model.Warehouse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.warehouseRepo.FindByCode(req.Code)
	if existing != nil {
		return nil, ErrWarehouseCodeExists
	}

	warehouse := &model.Warehouse{
		Code: req.Code,
		Name: req.Name,
	}
	warehouse.CreatedBy = actorID
	warehouse.UpdatedBy = actorID

	if err := s.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (s *warehouseService) Update(id uuid.UUID, req *WarehouseRequest, actorID string) (*model.Warehouse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	warehouse, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		return nil, ErrWarehouseNotFound
	}

	if warehouse.Code != req.Code {
		existing, _ := s.warehouseRepo.FindByCode(req.Code)
		if existing != nil {
			return nil, ErrWarehouseCodeExists
		}
	}

	warehouse.Code = req.Code
	warehouse.Name = req.Name
	warehouse.UpdatedBy = actorID

	if err := s.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}
