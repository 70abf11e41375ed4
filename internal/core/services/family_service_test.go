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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FamilyGrantRepository ---
type MockFamilyGrantRepository struct {
	mock.Mock
}

func (m *MockFamilyGrantRepository) SaveGrant(ctx context.Context, grant domain.FamilyAccessGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockFamilyGrantRepository) UpdateGrant(ctx context.Context, grant domain.FamilyAccessGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockFamilyGrantRepository) DeleteGrant(ctx context.Context, ownerUserID, grantID string) error {
	args := m.Called(ctx, ownerUserID, grantID)
	return args.Error(0)
}

func (m *MockFamilyGrantRepository) FindGrantByID(ctx context.Context, ownerUserID, grantID string) (*domain.FamilyAccessGrant, error) {
	args := m.Called(ctx, ownerUserID, grantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyAccessGrant), args.Error(1)
}

func (m *MockFamilyGrantRepository) FindGrantsByOwner(ctx context.Context, ownerUserID string) ([]domain.FamilyAccessGrant, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FamilyAccessGrant), args.Error(1)
}

// --- Test Suite ---
type FamilyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFamilyGrantRepository
	service  portssvc.FamilySvcFacade
	ownerID  string
}

func (suite *FamilyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFamilyGrantRepository)
	suite.service = services.NewFamilyService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *FamilyServiceTestSuite) TestCreateGrant_ActiveViewGrant() {
	ctx := context.Background()

	suite.mockRepo.On("SaveGrant", ctx, mock.MatchedBy(func(g domain.FamilyAccessGrant) bool {
		return g.OwnerUserID == suite.ownerID &&
			g.MemberEmail == "mom@example.com" &&
			g.AccessLevel == domain.AccessView &&
			g.Active
	})).Return(nil).Once()

	grant, err := suite.service.CreateGrant(ctx, suite.ownerID, dto.CreateFamilyGrantRequest{
		MemberEmail: "Mom@Example.COM",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(grant)
	suite.Equal("mom@example.com", grant.MemberEmail)
	suite.True(grant.Active)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FamilyServiceTestSuite) TestCreateGrant_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("SaveGrant", ctx, mock.AnythingOfType("domain.FamilyAccessGrant")).
		Return(apperrors.ErrDuplicate).Once()

	grant, err := suite.service.CreateGrant(ctx, suite.ownerID, dto.CreateFamilyGrantRequest{
		MemberEmail: "mom@example.com",
	})

	suite.Require().Error(err)
	suite.Nil(grant)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FamilyServiceTestSuite) TestUpdateGrant_Deactivate() {
	ctx := context.Background()
	existing := &domain.FamilyAccessGrant{
		GrantID:     uuid.NewString(),
		OwnerUserID: suite.ownerID,
		MemberEmail: "mom@example.com",
		AccessLevel: domain.AccessView,
		Active:      true,
	}
	inactive := false

	suite.mockRepo.On("FindGrantByID", ctx, suite.ownerID, existing.GrantID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateGrant", ctx, mock.MatchedBy(func(g domain.FamilyAccessGrant) bool {
		return g.GrantID == existing.GrantID && !g.Active
	})).Return(nil).Once()

	grant, err := suite.service.UpdateGrant(ctx, suite.ownerID, existing.GrantID, dto.UpdateFamilyGrantRequest{
		Active: &inactive,
	})

	suite.Require().NoError(err)
	suite.False(grant.Active)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FamilyServiceTestSuite) TestUpdateGrant_NotOwned() {
	ctx := context.Background()
	grantID := uuid.NewString()
	active := true

	// Lookups are owner-scoped, so another owner's grant is simply not found.
	suite.mockRepo.On("FindGrantByID", ctx, suite.ownerID, grantID).Return(nil, apperrors.ErrNotFound).Once()

	grant, err := suite.service.UpdateGrant(ctx, suite.ownerID, grantID, dto.UpdateFamilyGrantRequest{
		Active: &active,
	})

	suite.Require().Error(err)
	suite.Nil(grant)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateGrant")
}

func (suite *FamilyServiceTestSuite) TestListGrants() {
	ctx := context.Background()
	grants := []domain.FamilyAccessGrant{
		{GrantID: uuid.NewString(), OwnerUserID: suite.ownerID, MemberEmail: "mom@example.com", Active: true},
		{GrantID: uuid.NewString(), OwnerUserID: suite.ownerID, MemberEmail: "dad@example.com", Active: false},
	}

	suite.mockRepo.On("FindGrantsByOwner", ctx, suite.ownerID).Return(grants, nil).Once()

	got, err := suite.service.ListGrants(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FamilyServiceTestSuite) TestDeleteGrant() {
	ctx := context.Background()
	grantID := uuid.NewString()

	suite.mockRepo.On("DeleteGrant", ctx, suite.ownerID, grantID).Return(nil).Once()

	err := suite.service.DeleteGrant(ctx, suite.ownerID, grantID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestFamilyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FamilyServiceTestSuite))
}
