package services

import (
	"context"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// PetTypeSvcFacade defines the moderation operations for pet types.
type PetTypeSvcFacade interface {
	// ListPetTypes returns all pet types, newest first.
	ListPetTypes(ctx context.Context) ([]domain.PetType, error)

	// CreatePetType creates a pet type with a unique name.
	CreatePetType(ctx context.Context, name string) (*domain.PetType, error)

	// UpdatePetType renames a pet type.
	UpdatePetType(ctx context.Context, petTypeID, name string) (*domain.PetType, error)

	// TogglePetTypeActive flips the active/inactive state and returns a
	// confirmation message describing the new state.
	TogglePetTypeActive(ctx context.Context, petTypeID string) (string, error)

	// DeletePetType permanently removes a pet type.
	DeletePetType(ctx context.Context, petTypeID string) (string, error)
}

// PetBreedSvcFacade defines the moderation operations for pet breeds.
type PetBreedSvcFacade interface {
	// ListPetBreeds returns all breeds, newest first, with types populated.
	ListPetBreeds(ctx context.Context) ([]domain.PetBreed, error)

	// CreatePetBreed creates a breed under an existing pet type.
	CreatePetBreed(ctx context.Context, name, petTypeID string) (*domain.PetBreed, error)

	// UpdatePetBreed renames a breed and optionally moves it to another type.
	UpdatePetBreed(ctx context.Context, petBreedID, name, petTypeID string) (*domain.PetBreed, error)

	// TogglePetBreedActive flips the active/inactive state.
	TogglePetBreedActive(ctx context.Context, petBreedID string) (string, error)

	// DeletePetBreed permanently removes a breed.
	DeletePetBreed(ctx context.Context, petBreedID string) (string, error)
}
