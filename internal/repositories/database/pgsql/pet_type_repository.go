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

type PgxPetTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxPetTypeRepository(db *pgxpool.Pool) portsrepo.PetTypeRepositoryFacade {
	return &PgxPetTypeRepository{db: db}
}

var _ portsrepo.PetTypeRepositoryFacade = (*PgxPetTypeRepository)(nil)

const petTypeColumns = `pet_type_id, name, created_at, updated_at, deleted_at`

func scanPetType(row pgx.Row) (*models.PetType, error) {
	var m models.PetType
	err := row.Scan(&m.PetTypeID, &m.Name, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPetTypeRepository) SavePetType(ctx context.Context, petType domain.PetType) error {
	m := mapping.ToModelPetType(petType)
	query := `
		INSERT INTO pet_types (pet_type_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.Exec(ctx, query, m.PetTypeID, m.Name, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save pet type: %w", err)
	}
	return nil
}

func (r *PgxPetTypeRepository) FindPetTypeByID(ctx context.Context, petTypeID string) (*domain.PetType, error) {
	query := `SELECT ` + petTypeColumns + ` FROM pet_types WHERE pet_type_id = $1;`
	m, err := scanPetType(r.db.QueryRow(ctx, query, petTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pet type by ID %s: %w", petTypeID, err)
	}
	petType := mapping.ToDomainPetType(*m)
	return &petType, nil
}

func (r *PgxPetTypeRepository) FindPetTypeByName(ctx context.Context, name string) (*domain.PetType, error) {
	query := `SELECT ` + petTypeColumns + ` FROM pet_types WHERE name = $1;`
	m, err := scanPetType(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pet type by name: %w", err)
	}
	petType := mapping.ToDomainPetType(*m)
	return &petType, nil
}

func (r *PgxPetTypeRepository) FindPetTypes(ctx context.Context) ([]domain.PetType, error) {
	query := `SELECT ` + petTypeColumns + ` FROM pet_types ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pet types: %w", err)
	}
	defer rows.Close()

	var petTypes []models.PetType
	for rows.Next() {
		m, err := scanPetType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet type row: %w", err)
		}
		petTypes = append(petTypes, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating pet type rows: %w", err)
	}
	return mapping.ToDomainPetTypeSlice(petTypes), nil
}

func (r *PgxPetTypeRepository) UpdatePetType(ctx context.Context, petType domain.PetType) error {
	query := `UPDATE pet_types SET name = $2, updated_at = $3 WHERE pet_type_id = $1;`
	tag, err := r.db.Exec(ctx, query, petType.PetTypeID, petType.Name, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update pet type %s: %w", petType.PetTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPetTypeRepository) SetPetTypeDeletedAt(ctx context.Context, petTypeID string, deletedAt *time.Time) error {
	query := `UPDATE pet_types SET deleted_at = $2, updated_at = $3 WHERE pet_type_id = $1;`
	tag, err := r.db.Exec(ctx, query, petTypeID, deletedAt, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set deleted_at for pet type %s: %w", petTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPetTypeRepository) DeletePetType(ctx context.Context, petTypeID string) error {
	query := `DELETE FROM pet_types WHERE pet_type_id = $1;`
	tag, err := r.db.Exec(ctx, query, petTypeID)
	if err != nil {
		return fmt.Errorf("failed to delete pet type %s: %w", petTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
