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
	ErrProductNotFound = errors.New("product not found")
	ErrSKUExists       = errors.New("SKU already exists")
)

type ProductService interface {
	GetAll() ([]model.ProductResponse, error)
	GetByID(id uuid.UUID) (*model.ProductResponse, error)
	Create(req *CreateProductRequest, actorID string) (*model.Product, error)
	Update(id uuid.UUID, req *UpdateProductRequest, actorID string) (*model.Product, error)
	Deactivate(id uuid.UUID, actorID string) (*model.Product, error)
}

type CreateProductRequest struct {
	SKU        string    `json:"sku" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	CategoryID uuid.UUID `json:"categoryId" validate:"uuid_required"`
	BaseUnitID uuid.UUID `json:"baseUnitId" validate:"uuid_required"`
}

// UpdateProductRequest deliberately has no SKU field: the SKU is immutable
// after creation.
type UpdateProductRequest struct {
	Name       string              `json:"name" validate:"required"`
	CategoryID uuid.UUID           `json:"categoryId" validate:"uuid_required"`
	BaseUnitID uuid.UUID           `json:"baseUnitId" validate:"uuid_required"`
	Status     model.ProductStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		unitRepo:     unitRepo,
	}
}

func (s *productService) GetAll() ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = p.ToResponse()
	}
	return responses, nil
}

func (s *productService) GetByID(id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	response := product.ToResponse()
	return &response, nil
}

func (s *productService) Create(req *CreateProductRequest, actorID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.productRepo.FindBySKU(req.SKU)
	if existing != nil {
		return nil, ErrSKUExists
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.unitRepo.FindByID(req.BaseUnitID); err != nil {
		return nil, ErrUnitNotFound
	}

	product := &model.Product{
		SKU:        req.SKU,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		BaseUnitID: req.BaseUnitID,
		Status:     model.ProductActive,
	}
	product.CreatedBy = actorID
	product.UpdatedBy = actorID

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(product.ID)
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest, actorID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.unitRepo.FindByID(req.BaseUnitID); err != nil {
		return nil, ErrUnitNotFound
	}

	product.Name = req.Name
	product.CategoryID = req.CategoryID
	product.BaseUnitID = req.BaseUnitID
	product.Status = req.Status
	product.UpdatedBy = actorID

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(id)
}

// Deactivate is the product delete: a soft transition to INACTIVE, never a
// physical removal.
func (s *productService) Deactivate(id uuid.UUID, actorID string) (*model.Product, error) {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return nil, ErrProductNotFound
	}

	if err := s.productRepo.UpdateStatus(id, model.ProductInactive, actorID); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(id)
}
