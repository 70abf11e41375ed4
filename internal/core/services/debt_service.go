package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/google/uuid"
)

type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: debtRepo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// CreateDebt records a new debt. The remaining balance starts equal to the
// total and the debt starts unpaid.
func (s *debtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if req.AmountBase.LessThanOrEqual(decimalZero) {
		return nil, apperrors.NewValidationError("amountBase must be positive")
	}
	if req.ExchangeRate.LessThanOrEqual(decimalZero) {
		return nil, apperrors.NewValidationError("exchangeRate must be positive")
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("dueDate must be in YYYY-MM-DD format")
		}
		dueDate = &parsed
	}

	now := time.Now()
	secondary := req.AmountBase.Mul(req.ExchangeRate)

	debt := domain.Debt{
		DebtID:             uuid.NewString(),
		UserID:             userID,
		Direction:          domain.DebtDirection(req.Direction),
		Counterparty:       req.Counterparty,
		TotalBase:          req.AmountBase,
		TotalSecondary:     secondary,
		RemainingBase:      req.AmountBase,
		RemainingSecondary: secondary,
		ExchangeRate:       req.ExchangeRate,
		Purpose:            req.Purpose,
		DueDate:            dueDate,
		Paid:               false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "failed to save debt", slog.String("debt_id", debt.DebtID))
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	s.LogInfo(ctx, "debt created",
		slog.String("debt_id", debt.DebtID),
		slog.String("direction", string(debt.Direction)))
	return &debt, nil
}

// GetDebtByID retrieves one of the user's debts.
func (s *debtService) GetDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}
	return debt, nil
}

// ListDebts retrieves the user's debts, soonest due first.
func (s *debtService) ListDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error) {
	if limit <= 0 {
		limit = 50
	}
	debts, err := s.debtRepo.FindDebts(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

// ListPayments retrieves the payment history of one of the user's debts. The
// debt is loaded first so an unknown debt yields not-found rather than an
// empty list.
func (s *debtService) ListPayments(ctx context.Context, userID, debtID string) ([]domain.DebtPayment, error) {
	if _, err := s.debtRepo.FindDebtByID(ctx, userID, debtID); err != nil {
		return nil, err
	}

	payments, err := s.debtRepo.FindPaymentsByDebt(ctx, userID, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// UpdateDebt applies the submitted descriptive fields to one of the user's
// debts. Balances only move through ApplyPayment.
func (s *debtService) UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	if req.Counterparty != nil {
		debt.Counterparty = *req.Counterparty
	}
	if req.Purpose != nil {
		debt.Purpose = *req.Purpose
	}
	if req.ClearDueDate {
		debt.DueDate = nil
	} else if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("dueDate must be in YYYY-MM-DD format")
		}
		debt.DueDate = &parsed
	}

	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "failed to update debt", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}
	return debt, nil
}

// ApplyPayment applies a payment against the debt's remaining balance. The
// payment must be positive and no larger than the remaining balance; a
// rejected payment leaves the debt untouched. The mutated debt and the new
// payment record are persisted together in one database transaction.
func (s *debtService) ApplyPayment(ctx context.Context, userID, debtID string, req dto.ApplyPaymentRequest) (*domain.Debt, *domain.DebtPayment, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, nil, err
	}

	if req.AmountBase.LessThanOrEqual(decimalZero) {
		return nil, nil, apperrors.NewValidationError("payment amount must be positive")
	}
	if req.AmountBase.GreaterThan(debt.RemainingBase) {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf(
			"payment amount %s exceeds remaining balance %s",
			req.AmountBase.String(), debt.RemainingBase.String()))
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return nil, nil, apperrors.NewValidationError("paymentDate must be in YYYY-MM-DD format")
	}

	now := time.Now()

	debt.RemainingBase = debt.RemainingBase.Sub(req.AmountBase)
	debt.RemainingSecondary = debt.RemainingBase.Mul(debt.ExchangeRate)
	debt.Paid = debt.RemainingBase.LessThanOrEqual(decimalZero)
	debt.LastUpdatedAt = now
	debt.LastUpdatedBy = userID

	payment := domain.DebtPayment{
		PaymentID:       uuid.NewString(),
		DebtID:          debt.DebtID,
		UserID:          userID,
		AmountBase:      req.AmountBase,
		AmountSecondary: req.AmountBase.Mul(debt.ExchangeRate),
		ExchangeRate:    debt.ExchangeRate,
		PaymentDate:     paymentDate,
		Notes:           req.Notes,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	if err := s.debtRepo.ApplyPayment(ctx, *debt, payment); err != nil {
		s.LogError(ctx, err, "failed to apply payment",
			slog.String("debt_id", debtID),
			slog.String("payment_id", payment.PaymentID))
		return nil, nil, fmt.Errorf("failed to apply payment: %w", err)
	}

	s.LogInfo(ctx, "payment applied",
		slog.String("debt_id", debtID),
		slog.String("payment_id", payment.PaymentID),
		slog.Bool("paid_off", debt.Paid))
	return debt, &payment, nil
}

// DeleteDebt removes one of the user's debts together with its payments.
func (s *debtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	if err := s.debtRepo.DeleteDebt(ctx, userID, debtID); err != nil {
		return err
	}
	s.LogInfo(ctx, "debt deleted", slog.String("debt_id", debtID))
	return nil
}
