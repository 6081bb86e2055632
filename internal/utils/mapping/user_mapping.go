package mapping

import (
	"database/sql"
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	"github.com/petadminhq/pet_admin_app/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:                   d.UserID,
		Email:                    d.Email,
		PasswordHash:             d.PasswordHash,
		TokenVersion:             d.TokenVersion,
		ResetPasswordToken:       nullString(d.ResetPasswordToken),
		ResetPasswordTokenExpiry: nullTime(d.ResetPasswordTokenExpiry),
		Roles:                    make([]string, len(d.Roles)),
		AuthProvider:             string(d.AuthProvider),
		ProviderUserID:           nullString(d.ProviderUserID),
		ProfileImg:               nullString(d.ProfileImg),
		CreatedAt:                d.CreatedAt,
		UpdatedAt:                d.UpdatedAt,
		DeletedAt:                d.DeletedAt,
	}
	for i, r := range d.Roles {
		m.Roles[i] = string(r)
	}
	if pi := d.PersonalInformation; pi != nil {
		m.FirstName = nullString(pi.FirstName)
		m.LastName = nullString(pi.LastName)
		m.Birthday = nullTime(pi.Birthday)
		m.Gender = nullString(pi.Gender)
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		TokenVersion:   m.TokenVersion,
		Roles:          make([]domain.Role, len(m.Roles)),
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID.String,
		ProfileImg:     m.ProfileImg.String,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
	for i, r := range m.Roles {
		d.Roles[i] = domain.Role(r)
	}
	if m.ResetPasswordToken.Valid {
		d.ResetPasswordToken = m.ResetPasswordToken.String
	}
	if m.ResetPasswordTokenExpiry.Valid {
		expiry := m.ResetPasswordTokenExpiry.Time
		d.ResetPasswordTokenExpiry = &expiry
	}
	if m.FirstName.Valid || m.LastName.Valid || m.Birthday.Valid || m.Gender.Valid {
		pi := &domain.PersonalInformation{
			FirstName: m.FirstName.String,
			LastName:  m.LastName.String,
			Gender:    m.Gender.String,
		}
		if m.Birthday.Valid {
			birthday := m.Birthday.Time
			pi.Birthday = &birthday
		}
		d.PersonalInformation = pi
	}
	return d
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
