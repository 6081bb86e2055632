package mapping

import (
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	"github.com/petadminhq/pet_admin_app/internal/models"
)

// ToModelPetType converts a domain PetType to a model PetType
func ToModelPetType(d domain.PetType) models.PetType {
	return models.PetType{
		PetTypeID: d.PetTypeID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		DeletedAt: d.DeletedAt,
	}
}

// ToDomainPetType converts a model PetType to a domain PetType
func ToDomainPetType(m models.PetType) domain.PetType {
	return domain.PetType{
		PetTypeID: m.PetTypeID,
		Name:      m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
}

// ToDomainPetTypeSlice converts a slice of model PetTypes to a slice of domain PetTypes
func ToDomainPetTypeSlice(ms []models.PetType) []domain.PetType {
	ds := make([]domain.PetType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPetType(m)
	}
	return ds
}

// ToModelPetBreed converts a domain PetBreed to a model PetBreed
func ToModelPetBreed(d domain.PetBreed) models.PetBreed {
	return models.PetBreed{
		PetBreedID: d.PetBreedID,
		Name:       d.Name,
		PetTypeID:  d.PetTypeID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		DeletedAt:  d.DeletedAt,
	}
}

// ToDomainPetBreed converts a model PetBreed to a domain PetBreed
func ToDomainPetBreed(m models.PetBreed) domain.PetBreed {
	return domain.PetBreed{
		PetBreedID: m.PetBreedID,
		Name:       m.Name,
		PetTypeID:  m.PetTypeID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
}
