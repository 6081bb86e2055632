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

type petTypeService struct {
	petTypeRepo portsrepo.PetTypeRepositoryFacade
}

// NewPetTypeService creates a new instance of petTypeService.
func NewPetTypeService(petTypeRepo portsrepo.PetTypeRepositoryFacade) portssvc.PetTypeSvcFacade {
	return &petTypeService{petTypeRepo: petTypeRepo}
}

var _ portssvc.PetTypeSvcFacade = (*petTypeService)(nil)

func (s *petTypeService) ListPetTypes(ctx context.Context) ([]domain.PetType, error) {
	petTypes, err := s.petTypeRepo.FindPetTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet types: %w", err)
	}
	return petTypes, nil
}

func (s *petTypeService) CreatePetType(ctx context.Context, name string) (*domain.PetType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrMissingInput)
	}

	existing, err := s.petTypeRepo.FindPetTypeByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pet type name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: name already in use", apperrors.ErrDuplicate)
	}

	now := time.Now().UTC()
	petType := domain.PetType{
		PetTypeID: uuid.NewString(),
		Name:      name,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.petTypeRepo.SavePetType(ctx, petType); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: name already in use", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create pet type: %w", err)
	}
	return &petType, nil
}

func (s *petTypeService) UpdatePetType(ctx context.Context, petTypeID, name string) (*domain.PetType, error) {
	if petTypeID == "" {
		return nil, fmt.Errorf("%w: pet type id is required", apperrors.ErrMissingInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrMissingInput)
	}

	existing, err := s.petTypeRepo.FindPetTypeByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pet type name: %w", err)
	}
	if existing != nil && existing.PetTypeID != petTypeID {
		return nil, fmt.Errorf("%w: name already in use", apperrors.ErrDuplicate)
	}

	petType, err := s.petTypeRepo.FindPetTypeByID(ctx, petTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: pet type not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load pet type: %w", err)
	}

	petType.Name = name
	if err := s.petTypeRepo.UpdatePetType(ctx, *petType); err != nil {
		return nil, fmt.Errorf("failed to update pet type: %w", err)
	}
	petType.UpdatedAt = time.Now().UTC()
	return petType, nil
}

// TogglePetTypeActive deactivates an active pet type and reactivates an
// inactive one, reporting the resulting state.
func (s *petTypeService) TogglePetTypeActive(ctx context.Context, petTypeID string) (string, error) {
	if petTypeID == "" {
		return "", fmt.Errorf("%w: pet type id is required", apperrors.ErrMissingInput)
	}

	petType, err := s.petTypeRepo.FindPetTypeByID(ctx, petTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to load pet type: %w", err)
	}

	var message string
	var deletedAt *time.Time
	if petType.Active() {
		now := time.Now().UTC()
		deletedAt = &now
		message = fmt.Sprintf("pet type name: %s status is inActive.", petType.Name)
	} else {
		message = fmt.Sprintf("pet type name: %s status is Active.", petType.Name)
	}

	if err := s.petTypeRepo.SetPetTypeDeletedAt(ctx, petTypeID, deletedAt); err != nil {
		return "", fmt.Errorf("failed to toggle pet type state: %w", err)
	}
	return message, nil
}

func (s *petTypeService) DeletePetType(ctx context.Context, petTypeID string) (string, error) {
	if petTypeID == "" {
		return "", fmt.Errorf("%w: pet type id is required", apperrors.ErrMissingInput)
	}

	petType, err := s.petTypeRepo.FindPetTypeByID(ctx, petTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to load pet type: %w", err)
	}

	if err := s.petTypeRepo.DeletePetType(ctx, petTypeID); err != nil {
		return "", fmt.Errorf("failed to delete pet type: %w", err)
	}
	return fmt.Sprintf("pet type name: %s has been deleted.", petType.Name), nil
}
