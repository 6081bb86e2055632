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

const pgUniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, password_hash, token_version,
	reset_password_token, reset_password_token_expiry, roles,
	auth_provider, provider_user_id, fname, lname, birthday, gender,
	profile_img, created_at, updated_at, deleted_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.TokenVersion,
		&m.ResetPasswordToken,
		&m.ResetPasswordTokenExpiry,
		&m.Roles,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.FirstName,
		&m.LastName,
		&m.Birthday,
		&m.Gender,
		&m.ProfileImg,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, email, password_hash, token_version, roles,
			auth_provider, provider_user_id, fname, lname, birthday, gender,
			profile_img, created_at, updated_at)
		VALUES ($1, lower(trim($2)), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.TokenVersion,
		m.Roles,
		m.AuthProvider,
		m.ProviderUserID,
		m.FirstName,
		m.LastName,
		m.Birthday,
		m.Gender,
		m.ProfileImg,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	// Soft-deleted users stay queryable by id; callers decide how to treat
	// the deactivation marker.
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = lower(trim($1)) AND deleted_at IS NULL;`
	m, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_password_token = $1 AND deleted_at IS NULL;`
	m, err := scanUser(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by reset token: %w", err)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;`
	m, err := scanUser(r.db.QueryRow(ctx, query, authProvider, providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating user rows: %w", err)
	}
	return mapping.ToDomainUserSlice(users), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET fname = $2, lname = $3, birthday = $4, gender = $5,
			profile_img = $6, updated_at = $7
		WHERE user_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.UserID,
		m.FirstName,
		m.LastName,
		m.Birthday,
		m.Gender,
		m.ProfileImg,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementTokenVersion is the revocation primitive: the increment happens in
// the database so concurrent signout/refresh calls never lose an update.
func (r *PgxUserRepository) IncrementTokenVersion(ctx context.Context, userID string) (int64, error) {
	query := `
		UPDATE users
		SET token_version = token_version + 1, updated_at = $2
		WHERE user_id = $1
		RETURNING token_version;
	`
	var version int64
	err := r.db.QueryRow(ctx, query, userID, time.Now().UTC()).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment token version for user %s: %w", userID, err)
	}
	return version, nil
}

func (r *PgxUserRepository) SetResetPasswordToken(ctx context.Context, userID string, token string, expiry time.Time) error {
	query := `
		UPDATE users
		SET reset_password_token = $2, reset_password_token_expiry = $3, updated_at = $4
		WHERE user_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, userID, token, expiry, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set reset token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ResetPassword(ctx context.Context, userID string, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_password_token = NULL,
			reset_password_token_expiry = NULL, updated_at = $3
		WHERE user_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, userID, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to reset password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRoles(ctx context.Context, userID string, roles []domain.Role) error {
	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = string(role)
	}
	query := `UPDATE users SET roles = $2, updated_at = $3 WHERE user_id = $1;`
	tag, err := r.db.Exec(ctx, query, userID, roleStrings, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update roles for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE user_id = $1;`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
