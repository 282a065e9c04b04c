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
	ErrUnitNotFound   = errors.New("unit not found")
	ErrUnitCodeExists = errors.New("unit code already exists")
	ErrUnitInUse      = errors.New("unit is referenced by existing products")
)

type UnitService interface {
	GetAll() ([]model.Unit, error)
	Create(req *UnitRequest, actorID string) (*model.Unit, error)
	Update(id uuid.UUID, req *UnitRequest, actorID string) (*model.Unit, error)
	Delete(id uuid.UUID) error
}

type UnitRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsBaseUnit  bool   `json:"isBaseUnit"`
}

type unitService struct {
	unitRepo    repository.UnitRepository
	productRepo repository.ProductRepository
}

func NewUnitService(unitRepo repository.UnitRepository, productRepo repository.ProductRepository) UnitService {
	return &unitService{unitRepo: unitRepo, productRepo: productRepo}
}

func (s *unitService) GetAll() ([]model.Unit, error) {
	return s.unitRepo.FindAll()
}

func (s *unitService) Create(req *UnitRequest, actorID string) (*model.Unit, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.unitRepo.FindByCode(req.Code)
	if existing != nil {
		return nil, ErrUnitCodeExists
	}

	unit := &model.Unit{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		IsBaseUnit:  req.IsBaseUnit,
	}
	unit.CreatedBy = actorID
	unit.UpdatedBy = actorID

	if err := s.unitRepo.Create(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *unitService) Update(id uuid.UUID, req *UnitRequest, actorID string) (*model.Unit, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	unit, err := s.unitRepo.FindByID(id)
	if err != nil {
		return nil, ErrUnitNotFound
	}

	if req.Code != unit.Code {
		existing, _ := s.unitRepo.FindByCode(req.Code)
		if existing != nil {
			return nil, ErrUnitCodeExists
		}
	}

	unit.Code = req.Code
	unit.Name = req.Name
	unit.Description = req.Description
	unit.IsBaseUnit = req.IsBaseUnit
	unit.UpdatedBy = actorID

	if err := s.unitRepo.Update(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// Delete removes the unit permanently. A unit still referenced by any
// product is refused; referential integrity lives here, not in the client.
func (s *unitService) Delete(id uuid.UUID) error {
	if _, err := s.unitRepo.FindByID(id); err != nil {
		return ErrUnitNotFound
	}

	count, err := s.productRepo.CountByBaseUnit(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUnitInUse
	}

	return s.unitRepo.Delete(id)
}
