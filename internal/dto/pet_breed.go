package dto

import (
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// CreatePetBreedRequest carries the data for a new pet breed.
type CreatePetBreedRequest struct {
	Name      string `json:"name" binding:"required"`
	PetTypeID string `json:"petTypeID" binding:"required"`
}

// UpdatePetBreedRequest carries the data for updating a breed. PetTypeID is
// optional; when empty the breed keeps its current type.
type UpdatePetBreedRequest struct {
	Name      string `json:"name" binding:"required"`
	PetTypeID string `json:"petTypeID"`
}

// PetBreedResponse is the external pet-breed shape with its type embedded.
type PetBreedResponse struct {
	PetBreedID string           `json:"petBreedID"`
	Name       string           `json:"name"`
	PetType    *PetTypeResponse `json:"petType,omitempty"`
	Active     bool             `json:"active"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	DeletedAt  *time.Time       `json:"deletedAt,omitempty"`
}

// ToPetBreedResponse converts a domain.PetBreed to a PetBreedResponse DTO
func ToPetBreedResponse(petBreed *domain.PetBreed) PetBreedResponse {
	resp := PetBreedResponse{
		PetBreedID: petBreed.PetBreedID,
		Name:       petBreed.Name,
		Active:     petBreed.Active(),
		CreatedAt:  petBreed.CreatedAt,
		UpdatedAt:  petBreed.UpdatedAt,
		DeletedAt:  petBreed.DeletedAt,
	}
	if petBreed.PetType != nil {
		petType := ToPetTypeResponse(petBreed.PetType)
		resp.PetType = &petType
	}
	return resp
}

// ListPetBreedsResponse wraps the list of pet breeds.
type ListPetBreedsResponse struct {
	PetBreeds []PetBreedResponse `json:"petBreeds"`
}

// ToListPetBreedsResponse converts a slice of domain.PetBreed to the list DTO
func ToListPetBreedsResponse(petBreeds []domain.PetBreed) ListPetBreedsResponse {
	responses := make([]PetBreedResponse, len(petBreeds))
	for i := range petBreeds {
		responses[i] = ToPetBreedResponse(&petBreeds[i])
	}
	return ListPetBreedsResponse{PetBreeds: responses}
}
