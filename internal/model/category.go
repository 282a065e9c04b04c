package model

import "github.com/google/uuid"

// Category is a node in the product category forest. ParentID is a nullable
// self-reference; the graph must stay acyclic, which the category service
// enforces on every create and update.
type Category struct {
	BaseModel
	Name     string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parentId"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

// FlatCategory is a tree node annotated with its nesting depth (root = 0),
// produced by the depth-first flattening used for indented list rendering.
type FlatCategory struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parentId"`
	Depth    int        `json:"depth"`
}

// ParentOption is an entry in the "choose parent" selection list. Disabled
// marks the node being edited and all of its descendants, so a category can
// never be made its own ancestor.
type ParentOption struct {
	ID       uuid.UUID  `json:"id"`
	ParentID *uuid.UUID `json:"parentId"`
	Name     string     `json:"name"`
	Disabled bool       `json:"disabled"`
}
