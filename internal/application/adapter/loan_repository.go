// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// LoanRepository defines the interface for loan persistence operations.
type LoanRepository interface {
	// Create creates a new loan in the database.
	Create(ctx context.Context, loan *entity.Loan) error

	// FindByID retrieves a loan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByUser retrieves all loans for a user, ordered by loan date
	// descending then created_at descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error)

	// Update updates an existing loan in the database.
	Update(ctx context.Context, loan *entity.Loan) error

	// Delete removes a loan from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
