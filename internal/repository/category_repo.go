package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	Create(category *model.Category) error
	Update(category *model.Category) error
	// DeleteAndReparent hard-deletes the category and moves its direct
	// children up to the deleted node's parent, keeping the forest intact.
	DeleteAndReparent(id uuid.UUID, newParentID *uuid.UUID) error
	CountProducts(categoryID uuid.UUID) (int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("created_at ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) DeleteAndReparent(id uuid.UUID, newParentID *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Category{}).
			Where("parent_id = ?", id).
			Update("parent_id", newParentID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Category{}, "id = ?", id).Error
	})
}

func (r *categoryRepo) CountProducts(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
