package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// DebtReader defines read operations for debt data
type DebtReader interface {
	// FindDebtByID retrieves a specific debt for an owner.
	FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)

	// FindDebts retrieves an owner's debts, soonest due date first, debts
	// without a due date last.
	FindDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error)

	// FindPaymentsByDebt retrieves the payment history of a debt, newest first.
	FindPaymentsByDebt(ctx context.Context, userID, debtID string) ([]domain.DebtPayment, error)
}

// DebtWriter defines write operations for debt data
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// UpdateDebt updates an existing debt.
	UpdateDebt(ctx context.Context, debt domain.Debt) error

	// DeleteDebt removes an owner's debt together with its payment records.
	DeleteDebt(ctx context.Context, userID, debtID string) error

	// ApplyPayment persists the mutated debt snapshot and the new payment
	// record in a single database transaction. Either both writes land or
	// neither does, so a payment can never exist without the matching
	// balance change.
	ApplyPayment(ctx context.Context, debt domain.Debt, payment domain.DebtPayment) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}

// DebtRepositoryWithTx extends DebtRepositoryFacade with transaction capabilities
type DebtRepositoryWithTx interface {
	DebtRepositoryFacade
	TransactionManager
}
