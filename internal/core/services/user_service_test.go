package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/core/services"
	"github.com/petadminhq/pet_admin_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestListUsers() {
	ctx := context.Background()
	stored := []domain.User{
		{UserID: uuid.NewString(), Email: "a@example.com"},
		{UserID: uuid.NewString(), Email: "b@example.com"},
	}
	suite.mockRepo.On("FindUsers", ctx, 20, 40).Return(stored, nil).Once()

	users, err := suite.service.ListUsers(ctx, 20, 40)

	suite.Require().NoError(err)
	suite.Len(users, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdatePersonalInformation_Success() {
	ctx := context.Background()
	user := &domain.User{UserID: "user-1", Email: "a@example.com"}

	suite.mockRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PersonalInformation != nil &&
			u.PersonalInformation.FirstName == "Ada" &&
			u.PersonalInformation.LastName == "Lovelace"
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePersonalInformation(ctx, "user-1", dto.UpdatePersonalInfoRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	suite.Require().NoError(err)
	suite.Equal("Ada", updated.PersonalInformation.FirstName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdatePersonalInformation_MissingNames() {
	ctx := context.Background()

	_, err := suite.service.UpdatePersonalInformation(ctx, "user-1", dto.UpdatePersonalInfoRequest{LastName: "Lovelace"})
	suite.ErrorIs(err, apperrors.ErrMissingInput)

	_, err = suite.service.UpdatePersonalInformation(ctx, "user-1", dto.UpdatePersonalInfoRequest{FirstName: "Ada"})
	suite.ErrorIs(err, apperrors.ErrMissingInput)
}

func (suite *UserServiceTestSuite) TestUpdateRoles_Success() {
	ctx := context.Background()
	user := &domain.User{UserID: "user-1", Roles: []domain.Role{domain.RoleClient}}

	suite.mockRepo.On("FindUserByID", ctx, "user-1").Return(user, nil).Once()
	suite.mockRepo.On("UpdateRoles", ctx, "user-1", []domain.Role{domain.RoleClient, domain.RoleAdmin}).Return(nil).Once()

	updated, err := suite.service.UpdateRoles(ctx, "user-1", []string{"client", "admin"})

	suite.Require().NoError(err)
	suite.Equal([]domain.Role{domain.RoleClient, domain.RoleAdmin}, updated.Roles)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateRoles_UnknownRole() {
	ctx := context.Background()

	_, err := suite.service.UpdateRoles(ctx, "user-1", []string{"owner"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRoles", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateRoles_EmptySet() {
	ctx := context.Background()

	_, err := suite.service.UpdateRoles(ctx, "user-1", nil)
	suite.ErrorIs(err, apperrors.ErrMissingInput)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteUser", ctx, "user-1").Return(nil).Once()

	message, err := suite.service.DeleteUser(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal("User id: user-1 has been deleted.", message)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteUser", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.DeleteUser(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingProviderIdentity() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Email: "a@example.com", AuthProvider: domain.ProviderGoogle, ProviderUserID: "g-123"}

	suite.mockRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Ada Lovelace", "a@example.com", "google", "g-123")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_LinksExistingEmailAccount() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Email: "a@example.com", AuthProvider: domain.ProviderLocal}

	suite.mockRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "a@example.com").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Ada Lovelace", "a@example.com", "google", "g-123")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_CreatesNewAccount() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "a@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "a@example.com" &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == "g-123" &&
			u.PasswordHash != "" &&
			u.PersonalInformation != nil &&
			u.PersonalInformation.FirstName == "Ada" &&
			u.PersonalInformation.LastName == "Lovelace"
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Ada Lovelace", "a@example.com", "google", "g-123")

	suite.Require().NoError(err)
	suite.Equal([]domain.Role{domain.RoleClient}, user.Roles)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_IncompleteIdentity() {
	ctx := context.Background()

	_, err := suite.service.CreateOAuthUser(ctx, "Ada", "", "google", "g-123")
	suite.ErrorIs(err, apperrors.ErrMissingInput)

	_, err = suite.service.CreateOAuthUser(ctx, "Ada", "a@example.com", "google", "")
	suite.ErrorIs(err, apperrors.ErrMissingInput)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
