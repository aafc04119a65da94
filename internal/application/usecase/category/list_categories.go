// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for category listing.
type ListCategoriesInput struct {
	UserID uuid.UUID
	Type   *entity.CategoryType // Optional type filter
}

// ListCategoriesOutput represents the output of category listing.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithStats
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the default categories plus the user's own, each with its
// transaction count for the requesting user.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindVisibleToUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if input.Type != nil {
		filtered := make([]*entity.Category, 0, len(categories))
		for _, c := range categories {
			if c.Type == *input.Type {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}

	ids := make([]uuid.UUID, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}

	counts, err := uc.categoryRepo.CountTransactions(ctx, input.UserID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count category transactions: %w", err)
	}

	result := make([]*entity.CategoryWithStats, len(categories))
	for i, c := range categories {
		result[i] = &entity.CategoryWithStats{
			Category:         c,
			TransactionCount: counts[c.ID],
		}
	}

	return &ListCategoriesOutput{
		Categories: result,
	}, nil
}
