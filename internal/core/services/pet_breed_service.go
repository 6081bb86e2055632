package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portsrepo "github.com/petadminhq/pet_admin_app/internal/core/ports/repositories"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
)

type petBreedService struct {
	petBreedRepo portsrepo.PetBreedRepositoryFacade
	petTypeRepo  portsrepo.PetTypeRepositoryFacade
}

// NewPetBreedService creates a new instance of petBreedService.
func NewPetBreedService(petBreedRepo portsrepo.PetBreedRepositoryFacade, petTypeRepo portsrepo.PetTypeRepositoryFacade) portssvc.PetBreedSvcFacade {
	return &petBreedService{petBreedRepo: petBreedRepo, petTypeRepo: petTypeRepo}
}

var _ portssvc.PetBreedSvcFacade = (*petBreedService)(nil)

func (s *petBreedService) ListPetBreeds(ctx context.Context) ([]domain.PetBreed, error) {
	petBreeds, err := s.petBreedRepo.FindPetBreeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet breeds: %w", err)
	}
	return petBreeds, nil
}

func (s *petBreedService) CreatePetBreed(ctx context.Context, name, petTypeID string) (*domain.PetBreed, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrMissingInput)
	}
	if petTypeID == "" {
		return nil, fmt.Errorf("%w: pet type id is required", apperrors.ErrMissingInput)
	}

	existing, err := s.petBreedRepo.FindPetBreedByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pet breed name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: name already in use", apperrors.ErrDuplicate)
	}

	petType, err := s.petTypeRepo.FindPetTypeByID(ctx, petTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: pet type not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load pet type: %w", err)
	}

	now := time.Now().UTC()
	petBreed := domain.PetBreed{
		PetBreedID: uuid.NewString(),
		Name:       name,
		PetTypeID:  petType.PetTypeID,
		PetType:    petType,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.petBreedRepo.SavePetBreed(ctx, petBreed); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: name already in use", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create pet breed: %w", err)
	}
	return &petBreed, nil
}

func (s *petBreedService) UpdatePetBreed(ctx context.Context, petBreedID, name, petTypeID string) (*domain.PetBreed, error) {
	if petBreedID == "" {
		return nil, fmt.Errorf("%w: pet breed id is required", apperrors.ErrMissingInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrMissingInput)
	}

	existing, err := s.petBreedRepo.FindPetBreedByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pet breed name: %w", err)
	}
	if existing != nil && existing.PetBreedID != petBreedID {
		return nil, fmt.Errorf("%w: name already in use", apperrors.ErrDuplicate)
	}

	petBreed, err := s.petBreedRepo.FindPetBreedByID(ctx, petBreedID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: pet breed not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load pet breed: %w", err)
	}

	petBreed.Name = name
	if petTypeID != "" && petTypeID != petBreed.PetTypeID {
		petType, err := s.petTypeRepo.FindPetTypeByID(ctx, petTypeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: pet type not found", apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to load pet type: %w", err)
		}
		petBreed.PetTypeID = petType.PetTypeID
		petBreed.PetType = petType
	}

	if err := s.petBreedRepo.UpdatePetBreed(ctx, *petBreed); err != nil {
		return nil, fmt.Errorf("failed to update pet breed: %w", err)
	}
	petBreed.UpdatedAt = time.Now().UTC()
	return petBreed, nil
}

func (s *petBreedService) TogglePetBreedActive(ctx context.Context, petBreedID string) (string, error) {
	if petBreedID == "" {
		return "", fmt.Errorf("%w: pet breed id is required", apperrors.ErrMissingInput)
	}

	petBreed, err := s.petBreedRepo.FindPetBreedByID(ctx, petBreedID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to load pet breed: %w", err)
	}

	var message string
	var deletedAt *time.Time
	if petBreed.Active() {
		now := time.Now().UTC()
		deletedAt = &now
		message = fmt.Sprintf("pet breed name: %s status is inActive.", petBreed.Name)
	} else {
		message = fmt.Sprintf("pet breed name: %s status is Active.", petBreed.Name)
	}

	if err := s.petBreedRepo.SetPetBreedDeletedAt(ctx, petBreedID, deletedAt); err != nil {
		return "", fmt.Errorf("failed to toggle pet breed state: %w", err)
	}
	return message, nil
}

func (s *petBreedService) DeletePetBreed(ctx context.Context, petBreedID string) (string, error) {
	if petBreedID == "" {
		return "", fmt.Errorf("%w: pet breed id is required", apperrors.ErrMissingInput)
	}

	petBreed, err := s.petBreedRepo.FindPetBreedByID(ctx, petBreedID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to load pet breed: %w", err)
	}

	if err := s.petBreedRepo.DeletePetBreed(ctx, petBreedID); err != nil {
		return "", fmt.Errorf("failed to delete pet breed: %w", err)
	}
	return fmt.Sprintf("pet breed name: %s has been deleted.", petBreed.Name), nil
}
