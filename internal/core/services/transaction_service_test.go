package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	userID   string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:         "expense",
		Category:     "food",
		AmountBase:   decimal.RequireFromString("12.50"),
		ExchangeRate: decimal.RequireFromString("61.5"),
		Description:  "lunch",
		Date:         "2026-03-10",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.UserID == suite.userID &&
			t.Kind == domain.Expense &&
			t.Category == "food" &&
			t.AmountSecondary.Equal(req.AmountBase.Mul(req.ExchangeRate)) &&
			t.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.AmountSecondary.Equal(decimal.RequireFromString("768.75")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryKindMismatch() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:         "income",
		Category:     "food", // expense category on an income record
		AmountBase:   decimal.RequireFromString("10"),
		ExchangeRate: decimal.RequireFromString("61.5"),
		Date:         "2026-03-10",
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Kind:         "expense",
		Category:     "transport",
		AmountBase:   decimal.RequireFromString("-3"),
		ExchangeRate: decimal.RequireFromString("61.5"),
		Date:         "2026-03-10",
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultLimit() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, portsrepo.TransactionListFilter{Limit: 50}).
		Return([]domain.Transaction{}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, portsrepo.TransactionListFilter{})

	suite.Require().NoError(err)
	suite.Empty(txns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NegativeLimitPassesThrough() {
	ctx := context.Background()

	// A negative limit means unbounded and must not be replaced by the
	// default page size, or exports would be truncated.
	suite.mockRepo.On("FindTransactions", ctx, suite.userID, portsrepo.TransactionListFilter{Limit: -1}).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, suite.userID, portsrepo.TransactionListFilter{Limit: -1})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RederivesSecondary() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID:   txnID,
		UserID:          suite.userID,
		Kind:            domain.Expense,
		Category:        "food",
		AmountBase:      decimal.RequireFromString("10"),
		AmountSecondary: decimal.RequireFromString("615"),
		ExchangeRate:    decimal.RequireFromString("61.5"),
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	newAmount := decimal.RequireFromString("20")

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, txnID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.AmountBase.Equal(newAmount) &&
			t.AmountSecondary.Equal(newAmount.Mul(existing.ExchangeRate))
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{
		AmountBase: &newAmount,
	})

	suite.Require().NoError(err)
	suite.True(txn.AmountSecondary.Equal(decimal.RequireFromString("1230")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_CategoryMustMatchKind() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        suite.userID,
		Kind:          domain.Income,
		Category:      "salary",
		AmountBase:    decimal.RequireFromString("100"),
		ExchangeRate:  decimal.RequireFromString("61.5"),
	}
	badCategory := "food"

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, txnID).Return(existing, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{
		Category: &badCategory,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction")
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, txnID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.userID, txnID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, suite.userID, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txnID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
