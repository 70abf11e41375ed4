package services_test

import (
	"context"
	"testing"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PreferencesRepository ---
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) FindPreferencesByUser(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreferences), args.Error(1)
}

func (m *MockPreferencesRepository) SavePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

func (m *MockPreferencesRepository) UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

// --- Test Suite ---
type PreferencesServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPreferencesRepository
	service  portssvc.PreferencesSvcFacade
	userID   string
}

func (suite *PreferencesServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPreferencesRepository)
	suite.service = services.NewPreferencesService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *PreferencesServiceTestSuite) TestGetOrCreatePreferences_ExistingRow() {
	ctx := context.Background()
	existing := &domain.UserPreferences{
		PreferencesID:   uuid.NewString(),
		UserID:          suite.userID,
		DisplayCurrency: "USD",
		Theme:           "dark",
		ExchangeRate:    decimal.RequireFromString("59.25"),
	}

	suite.mockRepo.On("FindPreferencesByUser", ctx, suite.userID).Return(existing, nil).Once()

	prefs, err := suite.service.GetOrCreatePreferences(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing, prefs)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePreferences")
}

func (suite *PreferencesServiceTestSuite) TestGetOrCreatePreferences_LazyCreatesDefaults() {
	ctx := context.Background()

	suite.mockRepo.On("FindPreferencesByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SavePreferences", ctx, mock.MatchedBy(func(p domain.UserPreferences) bool {
		return p.UserID == suite.userID &&
			p.DisplayCurrency == domain.DefaultDisplayCurrency &&
			p.Theme == domain.DefaultTheme &&
			p.ExchangeRate.Equal(domain.DefaultExchangeRate)
	})).Return(nil).Once()

	prefs, err := suite.service.GetOrCreatePreferences(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(prefs)
	suite.Equal("CAD", prefs.DisplayCurrency)
	suite.Equal("light", prefs.Theme)
	suite.True(prefs.ExchangeRate.Equal(decimal.RequireFromString("61.5")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferencesServiceTestSuite) TestGetOrCreatePreferences_LosesCreationRace() {
	ctx := context.Background()
	winner := &domain.UserPreferences{
		PreferencesID:   uuid.NewString(),
		UserID:          suite.userID,
		DisplayCurrency: domain.DefaultDisplayCurrency,
		Theme:           domain.DefaultTheme,
		ExchangeRate:    domain.DefaultExchangeRate,
	}

	// First read misses, the insert collides with a concurrent creator,
	// then the re-read returns the winner's row.
	suite.mockRepo.On("FindPreferencesByUser", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SavePreferences", ctx, mock.AnythingOfType("domain.UserPreferences")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindPreferencesByUser", ctx, suite.userID).Return(winner, nil).Once()

	prefs, err := suite.service.GetOrCreatePreferences(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(winner, prefs)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferencesServiceTestSuite) TestUpdatePreferences_Success() {
	ctx := context.Background()
	existing := &domain.UserPreferences{
		PreferencesID:   uuid.NewString(),
		UserID:          suite.userID,
		DisplayCurrency: "CAD",
		Theme:           "light",
		ExchangeRate:    decimal.RequireFromString("61.5"),
	}
	newCurrency := "USD"
	newTheme := "dark"

	suite.mockRepo.On("FindPreferencesByUser", ctx, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePreferences", ctx, mock.MatchedBy(func(p domain.UserPreferences) bool {
		return p.DisplayCurrency == "USD" && p.Theme == "dark" &&
			p.ExchangeRate.Equal(decimal.RequireFromString("61.5"))
	})).Return(nil).Once()

	prefs, err := suite.service.UpdatePreferences(ctx, suite.userID, dto.UpdatePreferencesRequest{
		DisplayCurrency: &newCurrency,
		Theme:           &newTheme,
	})

	suite.Require().NoError(err)
	suite.Equal("USD", prefs.DisplayCurrency)
	suite.Equal("dark", prefs.Theme)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferencesServiceTestSuite) TestUpdatePreferences_NonPositiveRate() {
	ctx := context.Background()
	existing := &domain.UserPreferences{
		PreferencesID:   uuid.NewString(),
		UserID:          suite.userID,
		DisplayCurrency: "CAD",
		Theme:           "light",
		ExchangeRate:    decimal.RequireFromString("61.5"),
	}
	badRate := decimal.Zero

	suite.mockRepo.On("FindPreferencesByUser", ctx, suite.userID).Return(existing, nil).Once()

	prefs, err := suite.service.UpdatePreferences(ctx, suite.userID, dto.UpdatePreferencesRequest{
		ExchangeRate: &badRate,
	})

	suite.Require().Error(err)
	suite.Nil(prefs)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePreferences")
}

func TestPreferencesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferencesServiceTestSuite))
}
