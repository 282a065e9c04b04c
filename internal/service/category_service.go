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
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryCycle    = errors.New("category cannot be its own parent or a descendant of itself")
	ErrCategoryInUse    = errors.New("category is referenced by existing products")
	ErrParentNotFound   = errors.New("parent category not found")
)

type CategoryService interface {
	GetTree() ([]model.Category, error)
	GetFlattened() ([]model.FlatCategory, error)
	GetParentOptions(editedID uuid.UUID) ([]model.ParentOption, error)
	Create(req *CategoryRequest, actorID string) (*model.Category, error)
	Update(id uuid.UUID, req *CategoryRequest, actorID string) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type CategoryRequest struct {
	Name     string     `json:"name" validate:"required"`
	ParentID *uuid.UUID `json:"parentId"`
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// BuildTree assembles the category forest from flat rows. A row whose
// parent is missing from the set is treated as a root, so the result is
// always a well-formed forest.
func BuildTree(categories []model.Category) []model.Category {
	known := make(map[uuid.UUID]bool, len(categories))
	byParent := make(map[uuid.UUID][]model.Category)
	for _, c := range categories {
		known[c.ID] = true
	}
	for _, c := range categories {
		if c.ParentID != nil && known[*c.ParentID] {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
		}
	}

	var attach func(node model.Category) model.Category
	attach = func(node model.Category) model.Category {
		node.Children = nil
		for _, child := range byParent[node.ID] {
			node.Children = append(node.Children, attach(child))
		}
		return node
	}

	var roots []model.Category
	for _, c := range categories {
		if c.ParentID == nil || !known[*c.ParentID] {
			roots = append(roots, attach(c))
		}
	}
	return roots
}

// Flatten produces a depth-first, parent-before-children sequence over the
// forest, annotating each node with its nesting depth (root = 0). Pure and
// deterministic; recomputed whenever the source forest changes.
func Flatten(forest []model.Category) []model.FlatCategory {
	var result []model.FlatCategory
	var walk func(nodes []model.Category, depth int)
	walk = func(nodes []model.Category, depth int) {
		for _, node := range nodes {
			result = append(result, model.FlatCategory{
				ID:       node.ID,
				Name:     node.Name,
				ParentID: node.ParentID,
				Depth:    depth,
			})
			if len(node.Children) > 0 {
				walk(node.Children, depth+1)
			}
		}
	}
	walk(forest, 0)
	return result
}

// IsDescendant reports whether targetID is node itself or anywhere in its
// subtree.
func IsDescendant(node model.Category, targetID uuid.UUID) bool {
	if node.ID == targetID {
		return true
	}
	for _, child := range node.Children {
		if IsDescendant(child, targetID) {
			return true
		}
	}
	return false
}

// EligibleParents builds the "choose parent" selection list for an edit
// form: every category, with the edited node and all of its descendants
// disabled so the forest can never gain a cycle.
func EligibleParents(forest []model.Category, editedID uuid.UUID) []model.ParentOption {
	var edited *model.Category
	var find func(nodes []model.Category) *model.Category
	find = func(nodes []model.Category) *model.Category {
		for i := range nodes {
			if nodes[i].ID == editedID {
				return &nodes[i]
			}
			if found := find(nodes[i].Children); found != nil {
				return found
			}
		}
		return nil
	}
	edited = find(forest)

	var options []model.ParentOption
	var walk func(nodes []model.Category)
	walk = func(nodes []model.Category) {
		for _, node := range nodes {
			disabled := false
			if edited != nil {
				disabled = IsDescendant(*edited, node.ID)
			}
			options = append(options, model.ParentOption{
				ID:       node.ID,
				ParentID: node.ParentID,
				Name:     node.Name,
				Disabled: disabled,
			})
			walk(node.Children)
		}
	}
	walk(forest)
	return options
}

func (s *categoryService) GetTree() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return BuildTree(categories), nil
}

func (s *categoryService) GetFlattened() ([]model.FlatCategory, error) {
	tree, err := s.GetTree()
	if err != nil {
		return nil, err
	}
	return Flatten(tree), nil
}

func (s *categoryService) GetParentOptions(editedID uuid.UUID) ([]model.ParentOption, error) {
	tree, err := s.GetTree()
	if err != nil {
		return nil, err
	}
	return EligibleParents(tree, editedID), nil
}

func (s *categoryService) Create(req *CategoryRequest, actorID string) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindByID(*req.ParentID); err != nil {
			return nil, ErrParentNotFound
		}
	}

	category := &model.Category{
		Name:     req.Name,
		ParentID: req.ParentID,
	}
	category.CreatedBy = actorID
	category.UpdatedBy = actorID

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uuid.UUID, req *CategoryRequest, actorID string) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindByID(*req.ParentID); err != nil {
			return nil, ErrParentNotFound
		}

		// The new parent may not be the node itself or any of its
		// descendants; this is the authoritative acyclicity check.
		tree, err := s.GetTree()
		if err != nil {
			return nil, err
		}
		for _, option := range EligibleParents(tree, id) {
			if option.ID == *req.ParentID && option.Disabled {
				return nil, ErrCategoryCycle
			}
		}
	}

	category.Name = req.Name
	category.ParentID = req.ParentID
	category.UpdatedBy = actorID

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categoryRepo.DeleteAndReparent(id, category.ParentID)
}
