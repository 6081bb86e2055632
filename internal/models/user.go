package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for the users table.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	TokenVersion int64 `db:"token_version"`

	ResetPasswordToken       sql.NullString `db:"reset_password_token"`
	ResetPasswordTokenExpiry sql.NullTime   `db:"reset_password_token_expiry"`

	Roles []string `db:"roles"`

	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`

	FirstName  sql.NullString `db:"fname"`
	LastName   sql.NullString `db:"lname"`
	Birthday   sql.NullTime   `db:"birthday"`
	Gender     sql.NullString `db:"gender"`
	ProfileImg sql.NullString `db:"profile_img"`

	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
