package dto

import (
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// UpdatePersonalInfoRequest carries the profile block for a user.
type UpdatePersonalInfoRequest struct {
	FirstName string     `json:"fname" binding:"required"`
	LastName  string     `json:"lname" binding:"required"`
	Birthday  *time.Time `json:"birthday"`
	Gender    string     `json:"gender"`
}

// UpdateRolesRequest replaces a user's role set.
type UpdateRolesRequest struct {
	Roles []string `json:"newRoles" binding:"required,min=1,dive,role"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// PersonalInformationResponse mirrors domain.PersonalInformation for responses.
type PersonalInformationResponse struct {
	FirstName string     `json:"fname"`
	LastName  string     `json:"lname"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Gender    string     `json:"gender,omitempty"`
}

// UserResponse is the external user shape. The password hash and reset
// fields never appear here.
type UserResponse struct {
	UserID              string                       `json:"userID"`
	Email               string                       `json:"email"`
	Roles               []string                     `json:"roles"`
	PersonalInformation *PersonalInformationResponse `json:"personalInformation,omitempty"`
	ProfileImg          string                       `json:"profileImg,omitempty"`
	CreatedAt           time.Time                    `json:"createdAt"`
	UpdatedAt           time.Time                    `json:"updatedAt"`
	DeletedAt           *time.Time                   `json:"deletedAt,omitempty"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		UserID:     user.UserID,
		Email:      user.Email,
		Roles:      make([]string, len(user.Roles)),
		ProfileImg: user.ProfileImg,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		DeletedAt:  user.DeletedAt,
	}
	for i, r := range user.Roles {
		resp.Roles[i] = string(r)
	}
	if pi := user.PersonalInformation; pi != nil {
		resp.PersonalInformation = &PersonalInformationResponse{
			FirstName: pi.FirstName,
			LastName:  pi.LastName,
			Birthday:  pi.Birthday,
			Gender:    pi.Gender,
		}
	}
	return resp
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
