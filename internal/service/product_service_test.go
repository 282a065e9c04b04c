package service

import (
	"errors"
	"testing"

	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	var result []model.Product
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) FindBySKU(sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) UpdateStatus(id uuid.UUID, status model.ProductStatus, updatedBy string) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("record not found")
	}
	p.Status = status
	p.UpdatedBy = updatedBy
	return nil
}

func (r *fakeProductRepo) CountByBaseUnit(unitID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.BaseUnitID == unitID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
	productCnt map[uuid.UUID]int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*model.Category),
		productCnt: make(map[uuid.UUID]int64),
	}
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	var result []model.Category
	for _, c := range r.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) DeleteAndReparent(id uuid.UUID, newParentID *uuid.UUID) error {
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == id {
			c.ParentID = newParentID
		}
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) CountProducts(categoryID uuid.UUID) (int64, error) {
	return r.productCnt[categoryID], nil
}

func newProductFixture(t *testing.T) (ProductService, *fakeProductRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	unitRepo := newFakeUnitRepo()

	category := &model.Category{Name: "Electronics"}
	if err := categoryRepo.Create(category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	unit := &model.Unit{Code: "PCS", Name: "Pieces"}
	if err := unitRepo.Create(unit); err != nil {
		t.Fatalf("seed unit: %v", err)
	}

	svc := NewProductService(productRepo, categoryRepo, unitRepo)
	return svc, productRepo, category.ID, unit.ID
}

func TestProductCreate(t *testing.T) {
	svc, _, categoryID, unitID := newProductFixture(t)

	product, err := svc.Create(&CreateProductRequest{
		SKU:        "SKU-001",
		Name:       "Laptop",
		CategoryID: categoryID,
		BaseUnitID: unitID,
	}, "system")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if product.Status != model.ProductActive {
		t.Errorf("new product status = %s, want ACTIVE", product.Status)
	}

	// Duplicate SKU is refused
	_, err = svc.Create(&CreateProductRequest{
		SKU:        "SKU-001",
		Name:       "Another Laptop",
		CategoryID: categoryID,
		BaseUnitID: unitID,
	}, "system")
	if !errors.Is(err, ErrSKUExists) {
		t.Fatalf("duplicate Create() error = %v, want ErrSKUExists", err)
	}
}

func TestProductCreateUnknownReferences(t *testing.T) {
	svc, _, categoryID, unitID := newProductFixture(t)

	if _, err := svc.Create(&CreateProductRequest{
		SKU: "SKU-002", Name: "Phone", CategoryID: uuid.New(), BaseUnitID: unitID,
	}, "system"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unknown category: error = %v, want ErrCategoryNotFound", err)
	}

	if _, err := svc.Create(&CreateProductRequest{
		SKU: "SKU-002", Name: "Phone", CategoryID: categoryID, BaseUnitID: uuid.New(),
	}, "system"); !errors.Is(err, ErrUnitNotFound) {
		t.Errorf("unknown unit: error = %v, want ErrUnitNotFound", err)
	}
}

func TestProductUpdateKeepsSKU(t *testing.T) {
	svc, repo, categoryID, unitID := newProductFixture(t)

	created, err := svc.Create(&CreateProductRequest{
		SKU: "SKU-001", Name: "Laptop", CategoryID: categoryID, BaseUnitID: unitID,
	}, "system")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(created.ID, &UpdateProductRequest{
		Name:       "Laptop Pro",
		CategoryID: categoryID,
		BaseUnitID: unitID,
		Status:     model.ProductActive,
	}, "system")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Name != "Laptop Pro" {
		t.Errorf("name = %s", updated.Name)
	}
	if updated.SKU != "SKU-001" {
		t.Errorf("SKU changed to %s", updated.SKU)
	}
	if repo.products[created.ID].SKU != "SKU-001" {
		t.Error("stored SKU changed")
	}
}

func TestProductDeactivate(t *testing.T) {
	svc, repo, categoryID, unitID := newProductFixture(t)

	created, err := svc.Create(&CreateProductRequest{
		SKU: "SKU-001", Name: "Laptop", CategoryID: categoryID, BaseUnitID: unitID,
	}, "system")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deactivated, err := svc.Deactivate(created.ID, "system")
	if err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if deactivated.Status != model.ProductInactive {
		t.Errorf("status = %s, want INACTIVE", deactivated.Status)
	}

	// The row survives: deactivation is not a delete
	if _, ok := repo.products[created.ID]; !ok {
		t.Error("product removed instead of deactivated")
	}
}
