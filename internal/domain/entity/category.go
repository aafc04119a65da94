// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryIcon is the fallback icon for categories with an unknown icon key.
const DefaultCategoryIcon = "circle"

// Category represents a transaction category. Default categories are shared,
// system-seeded rows with a nil UserID; user categories are private.
// A category's Type is immutable after creation.
type Category struct {
	ID        uuid.UUID
	UserID    *uuid.UUID // nil for system-wide default categories
	Name      string
	Type      CategoryType
	Icon      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new user-owned Category entity.
// Note: Icon defaulting and name validation are applied in the Application
// layer (UseCase) before calling this constructor.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    &userID,
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VisibleTo reports whether the category may be read or referenced by the
// given user: defaults are visible to everyone, private categories only to
// their owner.
func (c *Category) VisibleTo(userID uuid.UUID) bool {
	if c.IsDefault {
		return true
	}
	return c.UserID != nil && *c.UserID == userID
}

// CategoryWithStats represents a category with its transaction count.
type CategoryWithStats struct {
	Category         *Category
	TransactionCount int
}
