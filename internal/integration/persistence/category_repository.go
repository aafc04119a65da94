// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindVisibleToUser retrieves the default categories plus the user's own,
// ordered by name.
func (r *categoryRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("is_default = ? OR user_id = ?", true, userID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// ExistsByNameAndType checks for a case-insensitive name collision among the
// categories visible to the user with the given type.
func (r *categoryRepository) ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("LOWER(name) = ? AND type = ?", strings.ToLower(strings.TrimSpace(name)), string(categoryType)).
		Where("is_default = ? OR user_id = ?", true, userID)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a category.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountTransactions returns the number of live transactions per category for
// the given user. Categories without transactions are absent from the map.
func (r *categoryRepository) CountTransactions(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return counts, nil
	}

	type countRow struct {
		CategoryID uuid.UUID
		Count      int
	}
	var rows []countRow
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, COUNT(*) as count").
		Where("user_id = ? AND category_id IN ?", userID, categoryIDs).
		Group("category_id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
