package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portsrepo "github.com/petadminhq/pet_admin_app/internal/core/ports/repositories"
	"github.com/petadminhq/pet_admin_app/internal/models"
	"github.com/petadminhq/pet_admin_app/internal/utils/mapping"
)

type PgxPetBreedRepository struct {
	db *pgxpool.Pool
}

func newPgxPetBreedRepository(db *pgxpool.Pool) portsrepo.PetBreedRepositoryFacade {
	return &PgxPetBreedRepository{db: db}
}

var _ portsrepo.PetBreedRepositoryFacade = (*PgxPetBreedRepository)(nil)

// breedWithTypeQuery joins pet_types so reads return the breed with its
// type populated, replacing the document store's populate().
const breedWithTypeQuery = `
	SELECT b.pet_breed_id, b.name, b.pet_type_id, b.created_at, b.updated_at, b.deleted_at,
		t.pet_type_id, t.name, t.created_at, t.updated_at, t.deleted_at
	FROM pet_breeds b
	JOIN pet_types t ON t.pet_type_id = b.pet_type_id`

func scanPetBreedWithType(row pgx.Row) (*domain.PetBreed, error) {
	var mb models.PetBreed
	var mt models.PetType
	err := row.Scan(
		&mb.PetBreedID, &mb.Name, &mb.PetTypeID, &mb.CreatedAt, &mb.UpdatedAt, &mb.DeletedAt,
		&mt.PetTypeID, &mt.Name, &mt.CreatedAt, &mt.UpdatedAt, &mt.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	breed := mapping.ToDomainPetBreed(mb)
	petType := mapping.ToDomainPetType(mt)
	breed.PetType = &petType
	return &breed, nil
}

func (r *PgxPetBreedRepository) SavePetBreed(ctx context.Context, petBreed domain.PetBreed) error {
	m := mapping.ToModelPetBreed(petBreed)
	query := `
		INSERT INTO pet_breeds (pet_breed_id, name, pet_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query, m.PetBreedID, m.Name, m.PetTypeID, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save pet breed: %w", err)
	}
	return nil
}

func (r *PgxPetBreedRepository) FindPetBreedByID(ctx context.Context, petBreedID string) (*domain.PetBreed, error) {
	query := breedWithTypeQuery + ` WHERE b.pet_breed_id = $1;`
	breed, err := scanPetBreedWithType(r.db.QueryRow(ctx, query, petBreedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pet breed by ID %s: %w", petBreedID, err)
	}
	return breed, nil
}

func (r *PgxPetBreedRepository) FindPetBreedByName(ctx context.Context, name string) (*domain.PetBreed, error) {
	query := breedWithTypeQuery + ` WHERE b.name = $1;`
	breed, err := scanPetBreedWithType(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pet breed by name: %w", err)
	}
	return breed, nil
}

func (r *PgxPetBreedRepository) FindPetBreeds(ctx context.Context) ([]domain.PetBreed, error) {
	query := breedWithTypeQuery + ` ORDER BY b.created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet breeds: %w", err)
	}
	defer rows.Close()

	var breeds []domain.PetBreed
	for rows.Next() {
		breed, err := scanPetBreedWithType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet breed row: %w", err)
		}
		breeds = append(breeds, *breed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating pet breed rows: %w", err)
	}
	return breeds, nil
}

func (r *PgxPetBreedRepository) UpdatePetBreed(ctx context.Context, petBreed domain.PetBreed) error {
	query := `UPDATE pet_breeds SET name = $2, pet_type_id = $3, updated_at = $4 WHERE pet_breed_id = $1;`
	tag, err := r.db.Exec(ctx, query, petBreed.PetBreedID, petBreed.Name, petBreed.PetTypeID, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update pet breed %s: %w", petBreed.PetBreedID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPetBreedRepository) SetPetBreedDeletedAt(ctx context.Context, petBreedID string, deletedAt *time.Time) error {
	query := `UPDATE pet_breeds SET deleted_at = $2, updated_at = $3 WHERE pet_breed_id = $1;`
	tag, err := r.db.Exec(ctx, query, petBreedID, deletedAt, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set deleted_at for pet breed %s: %w", petBreedID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPetBreedRepository) DeletePetBreed(ctx context.Context, petBreedID string) error {
	query := `DELETE FROM pet_breeds WHERE pet_breed_id = $1;`
	tag, err := r.db.Exec(ctx, query, petBreedID)
	if err != nil {
		return fmt.Errorf("failed to delete pet breed %s: %w", petBreedID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
