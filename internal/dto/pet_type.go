package dto

import (
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// CreatePetTypeRequest carries the data for a new pet type.
type CreatePetTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdatePetTypeRequest carries the data for renaming a pet type.
type UpdatePetTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// PetTypeResponse is the external pet-type shape.
type PetTypeResponse struct {
	PetTypeID string     `json:"petTypeID"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// ToPetTypeResponse converts a domain.PetType to a PetTypeResponse DTO
func ToPetTypeResponse(petType *domain.PetType) PetTypeResponse {
	return PetTypeResponse{
		PetTypeID: petType.PetTypeID,
		Name:      petType.Name,
		Active:    petType.Active(),
		CreatedAt: petType.CreatedAt,
		UpdatedAt: petType.UpdatedAt,
		DeletedAt: petType.DeletedAt,
	}
}

// ListPetTypesResponse wraps the list of pet types.
type ListPetTypesResponse struct {
	PetTypes []PetTypeResponse `json:"petTypes"`
}

// ToListPetTypesResponse converts a slice of domain.PetType to the list DTO
func ToListPetTypesResponse(petTypes []domain.PetType) ListPetTypesResponse {
	responses := make([]PetTypeResponse, len(petTypes))
	for i := range petTypes {
		responses[i] = ToPetTypeResponse(&petTypes[i])
	}
	return ListPetTypesResponse{PetTypes: responses}
}
