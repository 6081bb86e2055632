package repositories

import (
	"context"
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// PetTypeReader defines read operations for pet types
type PetTypeReader interface {
	// FindPetTypeByID retrieves a pet type by ID, including inactive ones.
	FindPetTypeByID(ctx context.Context, petTypeID string) (*domain.PetType, error)

	// FindPetTypeByName retrieves a pet type by its unique name.
	FindPetTypeByName(ctx context.Context, name string) (*domain.PetType, error)

	// FindPetTypes retrieves all pet types, newest first.
	FindPetTypes(ctx context.Context) ([]domain.PetType, error)
}

// PetTypeWriter defines write operations for pet types
type PetTypeWriter interface {
	// SavePetType persists a new pet type.
	SavePetType(ctx context.Context, petType domain.PetType) error

	// UpdatePetType updates an existing pet type.
	UpdatePetType(ctx context.Context, petType domain.PetType) error

	// SetPetTypeDeletedAt sets or clears the inactive marker.
	SetPetTypeDeletedAt(ctx context.Context, petTypeID string, deletedAt *time.Time) error

	// DeletePetType permanently removes a pet type.
	DeletePetType(ctx context.Context, petTypeID string) error
}

// PetTypeRepositoryFacade combines all pet-type repository interfaces
type PetTypeRepositoryFacade interface {
	PetTypeReader
	PetTypeWriter
}
