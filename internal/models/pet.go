package models

import "time"

// PetType is the database row shape for the pet_types table.
type PetType struct {
	PetTypeID string     `db:"pet_type_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// PetBreed is the database row shape for the pet_breeds table.
type PetBreed struct {
	PetBreedID string     `db:"pet_breed_id"`
	Name       string     `db:"name"`
	PetTypeID  string     `db:"pet_type_id"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}
