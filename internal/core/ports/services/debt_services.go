package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// DebtReaderSvc defines read operations for debts
type DebtReaderSvc interface {
	// GetDebtByID retrieves one of the user's debts.
	GetDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)

	// ListDebts retrieves the user's debts, soonest due first.
	ListDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error)

	// ListPayments retrieves the payment history of one of the user's debts.
	ListPayments(ctx context.Context, userID, debtID string) ([]domain.DebtPayment, error)
}

// DebtWriterSvc defines write operations for debts
type DebtWriterSvc interface {
	// CreateDebt records a new debt with remaining = total and paid = false.
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error)

	// UpdateDebt updates one of the user's debts.
	UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// DeleteDebt removes one of the user's debts and its payment history.
	DeleteDebt(ctx context.Context, userID, debtID string) error

	// ApplyPayment applies a payment against the debt's remaining balance,
	// producing the mutated debt and the immutable payment record.
	ApplyPayment(ctx context.Context, userID, debtID string, req dto.ApplyPaymentRequest) (*domain.Debt, *domain.DebtPayment, error)
}

// DebtSvcFacade combines all debt-related service interfaces
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
