package repositories

import (
	"context"
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// PetBreedReader defines read operations for pet breeds
type PetBreedReader interface {
	// FindPetBreedByID retrieves a breed by ID with its pet type populated.
	FindPetBreedByID(ctx context.Context, petBreedID string) (*domain.PetBreed, error)

	// FindPetBreedByName retrieves a breed by its unique name.
	FindPetBreedByName(ctx context.Context, name string) (*domain.PetBreed, error)

	// FindPetBreeds retrieves all breeds, newest first, with pet types populated.
	FindPetBreeds(ctx context.Context) ([]domain.PetBreed, error)
}

// PetBreedWriter defines write operations for pet breeds
type PetBreedWriter interface {
	// SavePetBreed persists a new breed.
	SavePetBreed(ctx context.Context, petBreed domain.PetBreed) error

	// UpdatePetBreed updates an existing breed.
	UpdatePetBreed(ctx context.Context, petBreed domain.PetBreed) error

	// SetPetBreedDeletedAt sets or clears the inactive marker.
	SetPetBreedDeletedAt(ctx context.Context, petBreedID string, deletedAt *time.Time) error

	// DeletePetBreed permanently removes a breed.
	DeletePetBreed(ctx context.Context, petBreedID string) error
}

// PetBreedRepositoryFacade combines all pet-breed repository interfaces
type PetBreedRepositoryFacade interface {
	PetBreedReader
	PetBreedWriter
}
