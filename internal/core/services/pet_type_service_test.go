package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PetTypeRepository ---
type MockPetTypeRepository struct {
	mock.Mock
}

func (m *MockPetTypeRepository) FindPetTypeByID(ctx context.Context, petTypeID string) (*domain.PetType, error) {
	args := m.Called(ctx, petTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetType), args.Error(1)
}

func (m *MockPetTypeRepository) FindPetTypeByName(ctx context.Context, name string) (*domain.PetType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetType), args.Error(1)
}

func (m *MockPetTypeRepository) FindPetTypes(ctx context.Context) ([]domain.PetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PetType), args.Error(1)
}

func (m *MockPetTypeRepository) SavePetType(ctx context.Context, petType domain.PetType) error {
	args := m.Called(ctx, petType)
	return args.Error(0)
}

func (m *MockPetTypeRepository) UpdatePetType(ctx context.Context, petType domain.PetType) error {
	args := m.Called(ctx, petType)
	return args.Error(0)
}

func (m *MockPetTypeRepository) SetPetTypeDeletedAt(ctx context.Context, petTypeID string, deletedAt *time.Time) error {
	args := m.Called(ctx, petTypeID, deletedAt)
	return args.Error(0)
}

func (m *MockPetTypeRepository) DeletePetType(ctx context.Context, petTypeID string) error {
	args := m.Called(ctx, petTypeID)
	return args.Error(0)
}

type PetTypeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPetTypeRepository
	service  portssvc.PetTypeSvcFacade
}

func (suite *PetTypeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPetTypeRepository)
	suite.service = services.NewPetTypeService(suite.mockRepo)
}

func (suite *PetTypeServiceTestSuite) TestCreatePetType_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindPetTypeByName", ctx, "Dog").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SavePetType", ctx, mock.MatchedBy(func(pt domain.PetType) bool {
		return pt.Name == "Dog" && pt.PetTypeID != "" && pt.DeletedAt == nil
	})).Return(nil).Once()

	petType, err := suite.service.CreatePetType(ctx, "Dog")

	suite.Require().NoError(err)
	suite.Equal("Dog", petType.Name)
	suite.True(petType.Active())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PetTypeServiceTestSuite) TestCreatePetType_DuplicateName() {
	ctx := context.Background()
	existing := &domain.PetType{PetTypeID: uuid.NewString(), Name: "Dog"}

	suite.mockRepo.On("FindPetTypeByName", ctx, "Dog").Return(existing, nil).Once()

	petType, err := suite.service.CreatePetType(ctx, "Dog")

	suite.Require().Error(err)
	suite.Nil(petType)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePetType", mock.Anything, mock.Anything)
}

func (suite *PetTypeServiceTestSuite) TestCreatePetType_MissingName() {
	ctx := context.Background()

	_, err := suite.service.CreatePetType(ctx, "")
	suite.ErrorIs(err, apperrors.ErrMissingInput)
}

func (suite *PetTypeServiceTestSuite) TestUpdatePetType_Success() {
	ctx := context.Background()
	petType := &domain.PetType{PetTypeID: "pt-1", Name: "Dog"}

	suite.mockRepo.On("FindPetTypeByName", ctx, "Canine").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindPetTypeByID", ctx, "pt-1").Return(petType, nil).Once()
	suite.mockRepo.On("UpdatePetType", ctx, mock.MatchedBy(func(pt domain.PetType) bool {
		return pt.PetTypeID == "pt-1" && pt.Name == "Canine"
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePetType(ctx, "pt-1", "Canine")

	suite.Require().NoError(err)
	suite.Equal("Canine", updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PetTypeServiceTestSuite) TestUpdatePetType_SameNameSameRecord() {
	ctx := context.Background()
	petType := &domain.PetType{PetTypeID: "pt-1", Name: "Dog"}

	// Renaming a record to its own current name is not a conflict.
	suite.mockRepo.On("FindPetTypeByName", ctx, "Dog").Return(petType, nil).Once()
	suite.mockRepo.On("FindPetTypeByID", ctx, "pt-1").Return(petType, nil).Once()
	suite.mockRepo.On("UpdatePetType", ctx, mock.AnythingOfType("domain.PetType")).Return(nil).Once()

	_, err := suite.service.UpdatePetType(ctx, "pt-1", "Dog")
	suite.Require().NoError(err)
}

func (suite *PetTypeServiceTestSuite) TestUpdatePetType_NameTakenByOther() {
	ctx := context.Background()
	other := &domain.PetType{PetTypeID: "pt-2", Name: "Cat"}

	suite.mockRepo.On("FindPetTypeByName", ctx, "Cat").Return(other, nil).Once()

	_, err := suite.service.UpdatePetType(ctx, "pt-1", "Cat")
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PetTypeServiceTestSuite) TestTogglePetTypeActive_Deactivates() {
	ctx := context.Background()
	petType := &domain.PetType{PetTypeID: "pt-1", Name: "Dog"}

	suite.mockRepo.On("FindPetTypeByID", ctx, "pt-1").Return(petType, nil).Once()
	suite.mockRepo.On("SetPetTypeDeletedAt", ctx, "pt-1", mock.MatchedBy(func(ts *time.Time) bool {
		return ts != nil
	})).Return(nil).Once()

	message, err := suite.service.TogglePetTypeActive(ctx, "pt-1")

	suite.Require().NoError(err)
	suite.Equal("pet type name: Dog status is inActive.", message)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PetTypeServiceTestSuite) TestTogglePetTypeActive_Reactivates() {
	ctx := context.Background()
	deletedAt := time.Now().UTC().Add(-time.Hour)
	petType := &domain.PetType{PetTypeID: "pt-1", Name: "Dog", DeletedAt: &deletedAt}

	suite.mockRepo.On("FindPetTypeByID", ctx, "pt-1").Return(petType, nil).Once()
	suite.mockRepo.On("SetPetTypeDeletedAt", ctx, "pt-1", (*time.Time)(nil)).Return(nil).Once()

	message, err := suite.service.TogglePetTypeActive(ctx, "pt-1")

	suite.Require().NoError(err)
	suite.Equal("pet type name: Dog status is Active.", message)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PetTypeServiceTestSuite) TestTogglePetTypeActive_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindPetTypeByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.TogglePetTypeActive(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PetTypeServiceTestSuite) TestDeletePetType_Success() {
	ctx := context.Background()
	petType := &domain.PetType{PetTypeID: "pt-1", Name: "Dog"}

	suite.mockRepo.On("FindPetTypeByID", ctx, "pt-1").Return(petType, nil).Once()
	suite.mockRepo.On("DeletePetType", ctx, "pt-1").Return(nil).Once()

	message, err := suite.service.DeletePetType(ctx, "pt-1")

	suite.Require().NoError(err)
	suite.Equal("pet type name: Dog has been deleted.", message)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PetTypeServiceTestSuite) TestDeletePetType_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindPetTypeByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.DeletePetType(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeletePetType", mock.Anything, mock.Anything)
}

func (suite *PetTypeServiceTestSuite) TestListPetTypes() {
	ctx := context.Background()
	stored := []domain.PetType{{PetTypeID: "pt-1", Name: "Dog"}, {PetTypeID: "pt-2", Name: "Cat"}}

	suite.mockRepo.On("FindPetTypes", ctx).Return(stored, nil).Once()

	petTypes, err := suite.service.ListPetTypes(ctx)

	suite.Require().NoError(err)
	suite.Len(petTypes, 2)
}

func TestPetTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PetTypeServiceTestSuite))
}
