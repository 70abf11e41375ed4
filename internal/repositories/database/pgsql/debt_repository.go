package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/models"
	"github.com/fintrackhq/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const debtColumns = `debt_id, user_id, direction, counterparty, total_base, total_secondary, remaining_base, remaining_secondary, exchange_rate, purpose, due_date, paid, priority_score, created_at, created_by, last_updated_at, last_updated_by`

const debtPaymentColumns = `payment_id, debt_id, user_id, amount_base, amount_secondary, exchange_rate, payment_date, notes, created_at, created_by`

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt data.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryWithTx {
	return &PgxDebtRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DebtRepositoryWithTx = (*PgxDebtRepository)(nil)

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.UserID,
		&m.Direction,
		&m.Counterparty,
		&m.TotalBase,
		&m.TotalSecondary,
		&m.RemainingBase,
		&m.RemainingSecondary,
		&m.ExchangeRate,
		&m.Purpose,
		&m.DueDate,
		&m.Paid,
		&m.PriorityScore,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanDebtPayment(row pgx.Row) (models.DebtPayment, error) {
	var m models.DebtPayment
	err := row.Scan(
		&m.PaymentID,
		&m.DebtID,
		&m.UserID,
		&m.AmountBase,
		&m.AmountSecondary,
		&m.ExchangeRate,
		&m.PaymentDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// SaveDebt persists a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)

	query := `
		INSERT INTO debts (debt_id, user_id, direction, counterparty, total_base, total_secondary, remaining_base, remaining_secondary, exchange_rate, purpose, due_date, paid, priority_score, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID, m.UserID, m.Direction, m.Counterparty,
		m.TotalBase, m.TotalSecondary, m.RemainingBase, m.RemainingSecondary,
		m.ExchangeRate, m.Purpose, m.DueDate, m.Paid, m.PriorityScore,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt %s: %w", m.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a specific debt for an owner.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1 AND user_id = $2;`
	m, err := scanDebt(r.Pool.QueryRow(ctx, query, debtID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}
	d := mapping.ToDomainDebt(m)
	return &d, nil
}

// FindDebts retrieves an owner's debts, soonest due date first. Debts
// without a due date sort last (NULLS LAST).
func (r *PgxDebtRepository) FindDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1
		ORDER BY due_date ASC NULLS LAST, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Debt, error) {
		return scanDebt(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan debts: %w", err)
	}
	return mapping.ToDomainDebtSlice(ms), nil
}

// FindPaymentsByDebt retrieves the payment history of a debt, newest first.
func (r *PgxDebtRepository) FindPaymentsByDebt(ctx context.Context, userID, debtID string) ([]domain.DebtPayment, error) {
	query := `
		SELECT ` + debtPaymentColumns + `
		FROM debt_payments
		WHERE debt_id = $1 AND user_id = $2
		ORDER BY payment_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, debtID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for debt %s: %w", debtID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DebtPayment, error) {
		return scanDebtPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return mapping.ToDomainDebtPaymentSlice(ms), nil
}

// UpdateDebt updates an existing debt owned by the same user.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		UPDATE debts
		SET direction = $1, counterparty = $2, total_base = $3, total_secondary = $4, remaining_base = $5, remaining_secondary = $6, exchange_rate = $7, purpose = $8, due_date = $9, paid = $10, last_updated_at = $11, last_updated_by = $12
		WHERE debt_id = $13 AND user_id = $14;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Direction, m.Counterparty,
		m.TotalBase, m.TotalSecondary, m.RemainingBase, m.RemainingSecondary,
		m.ExchangeRate, m.Purpose, m.DueDate, m.Paid,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.DebtID, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt %s: %w", m.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyPayment persists the mutated debt snapshot and the new payment record
// inside one transaction, so the debt balance and its payment history can
// never diverge.
func (r *PgxDebtRepository) ApplyPayment(ctx context.Context, debt domain.Debt, payment domain.DebtPayment) error {
	dm := mapping.ToModelDebt(debt)
	pm := mapping.ToModelDebtPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	updateQuery := `
		UPDATE debts
		SET remaining_base = $1, remaining_secondary = $2, paid = $3, last_updated_at = $4, last_updated_by = $5
		WHERE debt_id = $6 AND user_id = $7;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		dm.RemainingBase, dm.RemainingSecondary, dm.Paid,
		dm.LastUpdatedAt, dm.LastUpdatedBy,
		dm.DebtID, dm.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt %s balance: %w", dm.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	insertQuery := `
		INSERT INTO debt_payments (payment_id, debt_id, user_id, amount_base, amount_secondary, exchange_rate, payment_date, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertQuery,
		pm.PaymentID, pm.DebtID, pm.UserID,
		pm.AmountBase, pm.AmountSecondary, pm.ExchangeRate,
		pm.PaymentDate, pm.Notes, pm.CreatedAt, pm.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to record payment %s for debt %s: %w", pm.PaymentID, pm.DebtID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteDebt removes an owner's debt together with its payment records.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM debt_payments WHERE debt_id = $1 AND user_id = $2;`, debtID, userID); err != nil {
		return fmt.Errorf("failed to delete payments for debt %s: %w", debtID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM debts WHERE debt_id = $1 AND user_id = $2;`, debtID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
