// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID. Soft-deleted rows are excluded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisibleToUser retrieves the default categories plus the user's own
	// categories, ordered by name.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndType checks whether the user already has a visible
	// category with the given name (case-insensitive) and type, excluding
	// the category identified by excludeID when it is non-nil.
	ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountTransactions returns the number of live transactions per category
	// for the given user and category IDs.
	CountTransactions(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
