// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/persistence/model"
)

// loanRepository implements the adapter.LoanRepository interface.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository instance.
func NewLoanRepository(db *gorm.DB) adapter.LoanRepository {
	return &loanRepository{
		db: db,
	}
}

// Create creates a new loan in the database.
func (r *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	loanModel := model.LoanFromEntity(loan)
	result := r.db.WithContext(ctx).Create(loanModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a loan by its ID.
func (r *loanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var loanModel model.LoanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&loanModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLoanNotFound
		}
		return nil, result.Error
	}
	return loanModel.ToEntity(), nil
}

// FindByUser retrieves all loans for a user ordered by loan date descending.
func (r *loanRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error) {
	var loanModels []model.LoanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("loan_date DESC, created_at DESC").
		Find(&loanModels)
	if result.Error != nil {
		return nil, result.Error
	}

	loans := make([]*entity.Loan, len(loanModels))
	for i := range loanModels {
		loans[i] = loanModels[i].ToEntity()
	}
	return loans, nil
}

// Update updates an existing loan in the database.
func (r *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	loanModel := model.LoanFromEntity(loan)
	result := r.db.WithContext(ctx).Save(loanModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a loan from the database.
func (r *loanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LoanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
