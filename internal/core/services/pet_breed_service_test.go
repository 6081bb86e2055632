package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PetBreedRepository ---
type MockPetBreedRepository struct {
	mock.Mock
}

func (m *MockPetBreedRepository) FindPetBreedByID(ctx context.Context, petBreedID string) (*domain.PetBreed, error) {
	args := m.Called(ctx, petBreedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetBreed), args.Error(1)
}

func (m *MockPetBreedRepository) FindPetBreedByName(ctx context.Context, name string) (*domain.PetBreed, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PetBreed), args.Error(1)
}

func (m *MockPetBreedRepository) FindPetBreeds(ctx context.Context) ([]domain.PetBreed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PetBreed), args.Error(1)
}

func (m *MockPetBreedRepository) SavePetBreed(ctx context.Context, petBreed domain.PetBreed) error {
	args := m.Called(ctx, petBreed)
	return args.Error(0)
}

func (m *MockPetBreedRepository) UpdatePetBreed(ctx context.Context, petBreed domain.PetBreed) error {
	args := m.Called(ctx, petBreed)
	return args.Error(0)
}

func (m *MockPetBreedRepository) SetPetBreedDeletedAt(ctx context.Context, petBreedID string, deletedAt *time.Time) error {
	args := m.Called(ctx, petBreedID, deletedAt)
	return args.Error(0)
}

func (m *MockPetBreedRepository) DeletePetBreed(ctx context.Context, petBreedID string) error {
	args := m.Called(ctx, petBreedID)
	return args.Error(0)
}

type PetBreedServiceTestSuite struct {
	suite.Suite
	mockBreedRepo *MockPetBreedRepository
	mockTypeRepo  *MockPetTypeRepository
	service       portssvc.PetBreedSvcFacade
}

func (suite *PetBreedServiceTestSuite) SetupTest() {
	suite.mockBreedRepo = new(MockPetBreedRepository)
	suite.mockTypeRepo = new(MockPetTypeRepository)
	suite.service = services.NewPetBreedService(suite.mockBreedRepo, suite.mockTypeRepo)
}

func (suite *PetBreedServiceTestSuite) TestCreatePetBreed_Success() {
	ctx := context.Background()
	petType := &domain.PetType{PetTypeID: "pt-1", Name: "Dog"}

	suite.mockBreedRepo.On("FindPetBreedByName", ctx, "Beagle").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTypeRepo.On("FindPetTypeByID", ctx, "pt-1").Return(petType, nil).Once()
	suite.mockBreedRepo.On("SavePetBreed", ctx, mock.MatchedBy(func(b domain.PetBreed) bool {
		return b.Name == "Beagle" && b.PetTypeID == "pt-1" && b.PetBreedID != ""
	})).Return(nil).Once()

	breed, err := suite.service.CreatePetBreed(ctx, "Beagle", "pt-1")

	suite.Require().NoError(err)
	suite.Equal("Beagle", breed.Name)
	suite.Require().NotNil(breed.PetType)
	suite.Equal("Dog", breed.PetType.Name)
	suite.mockBreedRepo.AssertExpectations(suite.T())
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func (suite *PetBreedServiceTestSuite) TestCreatePetBreed_DuplicateName() {
	ctx := context.Background()
	existing := &domain.PetBreed{PetBreedID: "pb-1", Name: "Beagle"}

	suite.mockBreedRepo.On("FindPetBreedByName", ctx, "Beagle").Return(existing, nil).Once()

	_, err := suite.service.CreatePetBreed(ctx, "Beagle", "pt-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBreedRepo.AssertNotCalled(suite.T(), "SavePetBreed", mock.Anything, mock.Anything)
}

func (suite *PetBreedServiceTestSuite) TestCreatePetBreed_UnknownPetType() {
	ctx := context.Background()

	suite.mockBreedRepo.On("FindPetBreedByName", ctx, "Beagle").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTypeRepo.On("FindPetTypeByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePetBreed(ctx, "Beagle", "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBreedRepo.AssertNotCalled(suite.T(), "SavePetBreed", mock.Anything, mock.Anything)
}

func (suite *PetBreedServiceTestSuite) TestCreatePetBreed_MissingInput() {
	ctx := context.Background()

	_, err := suite.service.CreatePetBreed(ctx, "", "pt-1")
	suite.ErrorIs(err, apperrors.ErrMissingInput)

	_, err = suite.service.CreatePetBreed(ctx, "Beagle", "")
	suite.ErrorIs(err, apperrors.ErrMissingInput)
}

func (suite *PetBreedServiceTestSuite) TestUpdatePetBreed_RenameOnly() {
	ctx := context.Background()
	breed := &domain.PetBreed{PetBreedID: "pb-1", Name: "Beagle", PetTypeID: "pt-1"}

	suite.mockBreedRepo.On("FindPetBreedByName", ctx, "Basset").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBreedRepo.On("FindPetBreedByID", ctx, "pb-1").Return(breed, nil).Once()
	suite.mockBreedRepo.On("UpdatePetBreed", ctx, mock.MatchedBy(func(b domain.PetBreed) bool {
		return b.PetBreedID == "pb-1" && b.Name == "Basset" && b.PetTypeID == "pt-1"
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePetBreed(ctx, "pb-1", "Basset", "")

	suite.Require().NoError(err)
	suite.Equal("Basset", updated.Name)
	suite.mockTypeRepo.AssertNotCalled(suite.T(), "FindPetTypeByID", mock.Anything, mock.Anything)
}

func (suite *PetBreedServiceTestSuite) TestUpdatePetBreed_Retype() {
	ctx := context.Background()
	breed := &domain.PetBreed{PetBreedID: "pb-1", Name: "Beagle", PetTypeID: "pt-1"}
	newType := &domain.PetType{PetTypeID: "pt-2", Name: "Hound"}

	suite.mockBreedRepo.On("FindPetBreedByName", ctx, "Beagle").Return(breed, nil).Once()
	suite.mockBreedRepo.On("FindPetBreedByID", ctx, "pb-1").Return(breed, nil).Once()
	suite.mockTypeRepo.On("FindPetTypeByID", ctx, "pt-2").Return(newType, nil).Once()
	suite.mockBreedRepo.On("UpdatePetBreed", ctx, mock.MatchedBy(func(b domain.PetBreed) bool {
		return b.PetTypeID == "pt-2"
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePetBreed(ctx, "pb-1", "Beagle", "pt-2")

	suite.Require().NoError(err)
	suite.Equal("pt-2", updated.PetTypeID)
	suite.mockBreedRepo.AssertExpectations(suite.T())
	suite.mockTypeRepo.AssertExpectations(suite.T())
}

func (suite *PetBreedServiceTestSuite) TestUpdatePetBreed_NameTakenByOther() {
	ctx := context.Background()
	other := &domain.PetBreed{PetBreedID: "pb-2", Name: "Basset"}

	suite.mockBreedRepo.On("FindPetBreedByName", ctx, "Basset").Return(other, nil).Once()

	_, err := suite.service.UpdatePetBreed(ctx, "pb-1", "Basset", "")
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PetBreedServiceTestSuite) TestTogglePetBreedActive_Deactivates() {
	ctx := context.Background()
	breed := &domain.PetBreed{PetBreedID: "pb-1", Name: "Beagle", PetTypeID: "pt-1"}

	suite.mockBreedRepo.On("FindPetBreedByID", ctx, "pb-1").Return(breed, nil).Once()
	suite.mockBreedRepo.On("SetPetBreedDeletedAt", ctx, "pb-1", mock.MatchedBy(func(ts *time.Time) bool {
		return ts != nil
	})).Return(nil).Once()

	message, err := suite.service.TogglePetBreedActive(ctx, "pb-1")

	suite.Require().NoError(err)
	suite.Equal("pet breed name: Beagle status is inActive.", message)
}

func (suite *PetBreedServiceTestSuite) TestTogglePetBreedActive_Reactivates() {
	ctx := context.Background()
	deletedAt := time.Now().UTC().Add(-time.Hour)
	breed := &domain.PetBreed{PetBreedID: "pb-1", Name: "Beagle", PetTypeID: "pt-1", DeletedAt: &deletedAt}

	suite.mockBreedRepo.On("FindPetBreedByID", ctx, "pb-1").Return(breed, nil).Once()
	suite.mockBreedRepo.On("SetPetBreedDeletedAt", ctx, "pb-1", (*time.Time)(nil)).Return(nil).Once()

	message, err := suite.service.TogglePetBreedActive(ctx, "pb-1")

	suite.Require().NoError(err)
	suite.Equal("pet breed name: Beagle status is Active.", message)
}

func (suite *PetBreedServiceTestSuite) TestDeletePetBreed_Success() {
	ctx := context.Background()
	breed := &domain.PetBreed{PetBreedID: "pb-1", Name: "Beagle", PetTypeID: "pt-1"}

	suite.mockBreedRepo.On("FindPetBreedByID", ctx, "pb-1").Return(breed, nil).Once()
	suite.mockBreedRepo.On("DeletePetBreed", ctx, "pb-1").Return(nil).Once()

	message, err := suite.service.DeletePetBreed(ctx, "pb-1")

	suite.Require().NoError(err)
	suite.Equal("pet breed name: Beagle has been deleted.", message)
}

func (suite *PetBreedServiceTestSuite) TestDeletePetBreed_NotFound() {
	ctx := context.Background()
	suite.mockBreedRepo.On("FindPetBreedByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.DeletePetBreed(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBreedRepo.AssertNotCalled(suite.T(), "DeletePetBreed", mock.Anything, mock.Anything)
}

func (suite *PetBreedServiceTestSuite) TestListPetBreeds() {
	ctx := context.Background()
	stored := []domain.PetBreed{{PetBreedID: "pb-1", Name: "Beagle"}}

	suite.mockBreedRepo.On("FindPetBreeds", ctx).Return(stored, nil).Once()

	breeds, err := suite.service.ListPetBreeds(ctx)

	suite.Require().NoError(err)
	suite.Len(breeds, 1)
}

func TestPetBreedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PetBreedServiceTestSuite))
}
