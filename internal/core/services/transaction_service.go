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
	"github.com/shopspring/decimal"
)

var decimalZero = decimal.Zero

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a new transaction. The category must belong to
// the submitted kind, and the secondary amount is derived exactly once here.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	kind := domain.TransactionKind(req.Kind)
	if !domain.ValidCategory(kind, req.Category) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("category %q is not valid for kind %q", req.Category, req.Kind))
	}
	if req.AmountBase.LessThanOrEqual(decimalZero) {
		return nil, apperrors.NewValidationError("amountBase must be positive")
	}
	if req.ExchangeRate.LessThanOrEqual(decimalZero) {
		return nil, apperrors.NewValidationError("exchangeRate must be positive")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Kind:            kind,
		Category:        req.Category,
		AmountBase:      req.AmountBase,
		AmountSecondary: req.AmountBase.Mul(req.ExchangeRate),
		ExchangeRate:    req.ExchangeRate,
		Description:     req.Description,
		Date:            date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("category", txn.Category))
	return &txn, nil
}

// GetTransactionByID retrieves one of the user's transactions.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves the user's transactions, newest first. A
// negative limit means no limit; zero falls back to the default page size.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	txns, err := s.txnRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransaction applies the submitted fields to one of the user's
// transactions. The category, if changed, must still match the transaction's
// kind; the secondary amount is re-derived whenever the base amount or rate
// changes.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if !domain.ValidCategory(txn.Kind, *req.Category) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("category %q is not valid for kind %q", *req.Category, txn.Kind))
		}
		txn.Category = *req.Category
	}
	if req.AmountBase != nil {
		if req.AmountBase.LessThanOrEqual(decimalZero) {
			return nil, apperrors.NewValidationError("amountBase must be positive")
		}
		txn.AmountBase = *req.AmountBase
	}
	if req.ExchangeRate != nil {
		if req.ExchangeRate.LessThanOrEqual(decimalZero) {
			return nil, apperrors.NewValidationError("exchangeRate must be positive")
		}
		txn.ExchangeRate = *req.ExchangeRate
	}
	if req.AmountBase != nil || req.ExchangeRate != nil {
		txn.AmountSecondary = txn.AmountBase.Mul(txn.ExchangeRate)
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
		}
		txn.Date = date
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
