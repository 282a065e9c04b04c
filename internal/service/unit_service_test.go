package service

import (
	"errors"
	"testing"

	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
)

type fakeUnitRepo struct {
	units map[uuid.UUID]*model.Unit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[uuid.UUID]*model.Unit)}
}

func (r *fakeUnitRepo) FindAll() ([]model.Unit, error) {
	var result []model.Unit
	for _, u := range r.units {
		result = append(result, *u)
	}
	return result, nil
}

func (r *fakeUnitRepo) FindByID(id uuid.UUID) (*model.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUnitRepo) FindByCode(code string) (*model.Unit, error) {
	for _, u := range r.units {
		if u.Code == code {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUnitRepo) Create(unit *model.Unit) error {
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}
	clone := *unit
	r.units[unit.ID] = &clone
	return nil
}

func (r *fakeUnitRepo) Update(unit *model.Unit) error {
	clone := *unit
	r.units[unit.ID] = &clone
	return nil
}

func (r *fakeUnitRepo) Delete(id uuid.UUID) error {
	delete(r.units, id)
	return nil
}

type fakeProductCounter struct {
	countByUnit map[uuid.UUID]int64
}

func (r *fakeProductCounter) FindAll() ([]model.Product, error)           { return nil, nil }
func (r *fakeProductCounter) FindByID(id uuid.UUID) (*model.Product, error) {
	return nil, errors.New("record not found")
}
func (r *fakeProductCounter) FindBySKU(sku string) (*model.Product, error) {
	return nil, errors.New("record not found")
}
func (r *fakeProductCounter) Create(product *model.Product) error { return nil }
func (r *fakeProductCounter) Update(product *model.Product) error { return nil }
func (r *fakeProductCounter) UpdateStatus(id uuid.UUID, status model.ProductStatus, updatedBy string) error {
	return nil
}
func (r *fakeProductCounter) CountByBaseUnit(unitID uuid.UUID) (int64, error) {
	return r.countByUnit[unitID], nil
}

func TestUnitCreateAndDuplicateCode(t *testing.T) {
	repo := newFakeUnitRepo()
	svc := NewUnitService(repo, &fakeProductCounter{})

	unit, err := svc.Create(&UnitRequest{Code: "KG", Name: "Kilogram", IsBaseUnit: true}, "system")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if unit.Code != "KG" || !unit.IsBaseUnit {
		t.Errorf("unexpected unit: %+v", unit)
	}

	if _, err := svc.Create(&UnitRequest{Code: "KG", Name: "Duplicate"}, "system"); !errors.Is(err, ErrUnitCodeExists) {
		t.Fatalf("duplicate Create() error = %v, want ErrUnitCodeExists", err)
	}
}

func TestUnitDeleteRefusedWhileReferenced(t *testing.T) {
	repo := newFakeUnitRepo()
	counter := &fakeProductCounter{countByUnit: make(map[uuid.UUID]int64)}
	svc := NewUnitService(repo, counter)

	unit, err := svc.Create(&UnitRequest{Code: "PCS", Name: "Pieces"}, "system")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	counter.countByUnit[unit.ID] = 3
	if err := svc.Delete(unit.ID); !errors.Is(err, ErrUnitInUse) {
		t.Fatalf("Delete() error = %v, want ErrUnitInUse", err)
	}

	counter.countByUnit[unit.ID] = 0
	if err := svc.Delete(unit.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(unit.ID); err == nil {
		t.Error("unit still present after delete")
	}
}

func TestUnitDeleteUnknown(t *testing.T) {
	svc := NewUnitService(newFakeUnitRepo(), &fakeProductCounter{})

	if err := svc.Delete(uuid.New()); !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("Delete() error = %v, want ErrUnitNotFound", err)
	}
}
