package domain

import "time"

// Role is a user role drawn from a closed enumeration.
type Role string

const (
	RoleClient     Role = "client"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// ValidRole reports whether r is a member of the role enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// PersonalInformation is the optional profile block attached to a user.
type PersonalInformation struct {
	FirstName string     `json:"fname"`
	LastName  string     `json:"lname"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Gender    string     `json:"gender,omitempty"`
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	// TokenVersion invalidates previously issued tokens when incremented.
	// A token is only honoured while its embedded version equals this value.
	TokenVersion int64 `json:"-"`

	ResetPasswordToken       string     `json:"-"`
	ResetPasswordTokenExpiry *time.Time `json:"-"`

	Roles []Role `json:"roles"`

	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`

	PersonalInformation *PersonalInformation `json:"personalInformation,omitempty"`
	ProfileImg          string               `json:"profileImg,omitempty"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // soft delete / deactivation marker
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// GoogleUserInfo holds user details returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
