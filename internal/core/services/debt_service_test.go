package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	args := m.Called(ctx, userID, debtID)
	return args.Error(0)
}

func (m *MockDebtRepository) ApplyPayment(ctx context.Context, debt domain.Debt, payment domain.DebtPayment) error {
	args := m.Called(ctx, debt, payment)
	return args.Error(0)
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, userID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindDebts(ctx context.Context, userID string, limit, offset int) ([]domain.Debt, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindPaymentsByDebt(ctx context.Context, userID, debtID string) ([]domain.DebtPayment, error) {
	args := m.Called(ctx, userID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtPayment), args.Error(1)
}

// --- Test Suite ---
type DebtServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDebtRepository
	service  portssvc.DebtSvcFacade
	userID   string
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDebtRepository)
	suite.service = services.NewDebtService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *DebtServiceTestSuite) newDebt(remaining string, rate string) *domain.Debt {
	rem := decimal.RequireFromString(remaining)
	r := decimal.RequireFromString(rate)
	return &domain.Debt{
		DebtID:             uuid.NewString(),
		UserID:             suite.userID,
		Direction:          domain.Owe,
		Counterparty:       "Alice",
		TotalBase:          decimal.RequireFromString("100"),
		TotalSecondary:     decimal.RequireFromString("100").Mul(r),
		RemainingBase:      rem,
		RemainingSecondary: rem.Mul(r),
		ExchangeRate:       r,
		Purpose:            "rent",
		Paid:               false,
	}
}

// --- Test Cases ---

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	due := "2026-06-01"
	req := dto.CreateDebtRequest{
		Direction:    "owe",
		Counterparty: "Alice",
		AmountBase:   decimal.RequireFromString("250"),
		ExchangeRate: decimal.RequireFromString("61.5"),
		Purpose:      "rent",
		DueDate:      &due,
	}

	suite.mockRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.UserID == suite.userID &&
			d.RemainingBase.Equal(d.TotalBase) &&
			d.RemainingSecondary.Equal(d.TotalSecondary) &&
			d.TotalSecondary.Equal(req.AmountBase.Mul(req.ExchangeRate)) &&
			!d.Paid &&
			d.PriorityScore == 0 &&
			d.DueDate != nil
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.True(debt.RemainingBase.Equal(req.AmountBase))
	suite.False(debt.Paid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Direction:    "lent",
		Counterparty: "Bob",
		AmountBase:   decimal.Zero,
		ExchangeRate: decimal.RequireFromString("61.5"),
		Purpose:      "loan",
	}

	debt, err := suite.service.CreateDebt(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDebt")
}

func (suite *DebtServiceTestSuite) TestApplyPayment_PartialPayment() {
	ctx := context.Background()
	existing := suite.newDebt("100", "61.5")

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, existing.DebtID).Return(existing, nil).Once()
	suite.mockRepo.On("ApplyPayment", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.RemainingBase.Equal(decimal.RequireFromString("60")) &&
			d.RemainingSecondary.Equal(decimal.RequireFromString("60").Mul(existing.ExchangeRate)) &&
			!d.Paid
	}), mock.MatchedBy(func(p domain.DebtPayment) bool {
		return p.DebtID == existing.DebtID &&
			p.AmountBase.Equal(decimal.RequireFromString("40")) &&
			p.AmountSecondary.Equal(decimal.RequireFromString("40").Mul(existing.ExchangeRate))
	})).Return(nil).Once()

	debt, payment, err := suite.service.ApplyPayment(ctx, suite.userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("40"),
		PaymentDate: "2026-03-10",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.Require().NotNil(payment)
	suite.True(debt.RemainingBase.Equal(decimal.RequireFromString("60")))
	suite.False(debt.Paid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestApplyPayment_ExactPayoff() {
	ctx := context.Background()
	existing := suite.newDebt("100", "61.5")

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, existing.DebtID).Return(existing, nil).Once()
	suite.mockRepo.On("ApplyPayment", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.RemainingBase.IsZero() && d.Paid
	}), mock.AnythingOfType("domain.DebtPayment")).Return(nil).Once()

	debt, payment, err := suite.service.ApplyPayment(ctx, suite.userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("100"),
		PaymentDate: "2026-03-10",
	})

	suite.Require().NoError(err)
	suite.True(debt.Paid)
	suite.True(debt.RemainingBase.IsZero())
	suite.True(debt.RemainingSecondary.IsZero())
	suite.NotNil(payment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestApplyPayment_ExceedsRemaining() {
	ctx := context.Background()
	existing := suite.newDebt("100", "61.5")

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, existing.DebtID).Return(existing, nil).Once()

	debt, payment, err := suite.service.ApplyPayment(ctx, suite.userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("150"),
		PaymentDate: "2026-03-10",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(debt)
	suite.Nil(payment)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyPayment")
}

func (suite *DebtServiceTestSuite) TestApplyPayment_NonPositiveAmount() {
	ctx := context.Background()
	existing := suite.newDebt("100", "61.5")

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, existing.DebtID).Return(existing, nil).Once()

	_, _, err := suite.service.ApplyPayment(ctx, suite.userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("-5"),
		PaymentDate: "2026-03-10",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyPayment")
}

func (suite *DebtServiceTestSuite) TestApplyPayment_SequenceToPayoff() {
	ctx := context.Background()
	existing := suite.newDebt("100", "61.5")

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, existing.DebtID).Return(existing, nil)
	suite.mockRepo.On("ApplyPayment", ctx, mock.AnythingOfType("domain.Debt"), mock.AnythingOfType("domain.DebtPayment")).Return(nil)

	debt, _, err := suite.service.ApplyPayment(ctx, suite.userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("60"),
		PaymentDate: "2026-03-01",
	})
	suite.Require().NoError(err)
	suite.False(debt.Paid)

	// The repository mock returns the original snapshot, so feed the
	// mutated debt back in for the second installment.
	*existing = *debt

	debt, _, err = suite.service.ApplyPayment(ctx, suite.userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("40"),
		PaymentDate: "2026-03-15",
	})
	suite.Require().NoError(err)
	suite.True(debt.Paid)
	suite.True(debt.RemainingBase.IsZero())

	// Any further payment exceeds the zero remaining balance.
	*existing = *debt
	_, _, err = suite.service.ApplyPayment(ctx, suite.userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("1"),
		PaymentDate: "2026-03-16",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DebtServiceTestSuite) TestApplyPayment_DebtNotFound() {
	ctx := context.Background()
	debtID := uuid.NewString()

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, debtID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.ApplyPayment(ctx, suite.userID, debtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("10"),
		PaymentDate: "2026-03-10",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestUpdateDebt_ClearDueDate() {
	ctx := context.Background()
	existing := suite.newDebt("100", "61.5")
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	existing.DueDate = &due

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, existing.DebtID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.DueDate == nil
	})).Return(nil).Once()

	debt, err := suite.service.UpdateDebt(ctx, suite.userID, existing.DebtID, dto.UpdateDebtRequest{
		ClearDueDate: true,
	})

	suite.Require().NoError(err)
	suite.Nil(debt.DueDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestListPayments_UnknownDebt() {
	ctx := context.Background()
	debtID := uuid.NewString()

	suite.mockRepo.On("FindDebtByID", ctx, suite.userID, debtID).Return(nil, apperrors.ErrNotFound).Once()

	payments, err := suite.service.ListPayments(ctx, suite.userID, debtID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payments)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPaymentsByDebt")
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}

func TestApplyPaymentResetsSecondaryFromRate(t *testing.T) {
	// Remaining secondary is re-derived from the remaining base, never
	// decremented independently.
	mockRepo := new(MockDebtRepository)
	service := services.NewDebtService(mockRepo)
	userID := uuid.NewString()

	rate := decimal.RequireFromString("61.5")
	existing := &domain.Debt{
		DebtID:             uuid.NewString(),
		UserID:             userID,
		Direction:          domain.Lent,
		TotalBase:          decimal.RequireFromString("90"),
		TotalSecondary:     decimal.RequireFromString("90").Mul(rate),
		RemainingBase:      decimal.RequireFromString("90"),
		RemainingSecondary: decimal.RequireFromString("90").Mul(rate),
		ExchangeRate:       rate,
	}

	mockRepo.On("FindDebtByID", mock.Anything, userID, existing.DebtID).Return(existing, nil).Once()
	mockRepo.On("ApplyPayment", mock.Anything, mock.AnythingOfType("domain.Debt"), mock.AnythingOfType("domain.DebtPayment")).Return(nil).Once()

	debt, _, err := service.ApplyPayment(context.Background(), userID, existing.DebtID, dto.ApplyPaymentRequest{
		AmountBase:  decimal.RequireFromString("30"),
		PaymentDate: "2026-03-10",
	})

	assert.NoError(t, err)
	assert.True(t, debt.RemainingSecondary.Equal(decimal.RequireFromString("60").Mul(rate)))
}
