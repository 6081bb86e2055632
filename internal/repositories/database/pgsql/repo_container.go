package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/petadminhq/pet_admin_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		PetTypeRepo:  newPgxPetTypeRepository(dbPool),
		PetBreedRepo: newPgxPetBreedRepository(dbPool),
	}
}
