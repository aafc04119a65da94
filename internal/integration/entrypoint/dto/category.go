// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Type string `json:"type" binding:"required,oneof=expense income"`
	Icon string `json:"icon,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Icon *string `json:"icon,omitempty"`
	Type *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Icon             string    `json:"icon"`
	IsDefault        bool      `json:"is_default"`
	TransactionCount int       `json:"transaction_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// IconListResponse represents the response for listing available icons.
type IconListResponse struct {
	Icons []string `json:"icons"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Type:      string(cat.Type),
		Icon:      cat.Icon,
		IsDefault: cat.IsDefault,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryResponseWithStats converts a CategoryWithStats to a
// CategoryResponse DTO.
func ToCategoryResponseWithStats(stats *entity.CategoryWithStats) CategoryResponse {
	response := ToCategoryResponse(stats.Category)
	response.TransactionCount = stats.TransactionCount
	return response
}

// ToCategoryListResponse converts a list of CategoryWithStats to a
// CategoryListResponse.
func ToCategoryListResponse(categories []*entity.CategoryWithStats) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponseWithStats(c)
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
