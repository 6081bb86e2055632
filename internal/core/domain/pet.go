package domain

import "time"

// PetType is a moderated pet category (e.g. dog, cat).
type PetType struct {
	PetTypeID string `json:"petTypeID"`
	Name      string `json:"name"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // present while the type is inactive
}

// Active reports whether the pet type is currently usable.
func (t *PetType) Active() bool {
	return t.DeletedAt == nil
}

// PetBreed is a breed belonging to a pet type.
type PetBreed struct {
	PetBreedID string `json:"petBreedID"`
	Name       string `json:"name"`
	PetTypeID  string `json:"petTypeID"`

	// PetType is populated on reads that join against pet_types.
	PetType *PetType `json:"petType,omitempty"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Active reports whether the breed is currently usable.
func (b *PetBreed) Active() bool {
	return b.DeletedAt == nil
}
