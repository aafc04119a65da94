// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database.
type LoanModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	LoanDate  time.Time       `gorm:"type:date;not null"`
	DueDate   *time.Time      `gorm:"type:date"`
	Status    string          `gorm:"type:varchar(10);not null;default:'unpaid'"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	var dueDate *time.Time
	if m.DueDate != nil {
		due := entity.NormalizeDate(*m.DueDate)
		dueDate = &due
	}

	return &entity.Loan{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		LoanDate:  entity.NormalizeDate(m.LoanDate),
		DueDate:   dueDate,
		Status:    entity.LoanStatus(m.Status),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:        loan.ID,
		UserID:    loan.UserID,
		Name:      loan.Name,
		Amount:    loan.Amount,
		LoanDate:  loan.LoanDate,
		DueDate:   loan.DueDate,
		Status:    string(loan.Status),
		Notes:     loan.Notes,
		CreatedAt: loan.CreatedAt,
		UpdatedAt: loan.UpdatedAt,
	}
}
