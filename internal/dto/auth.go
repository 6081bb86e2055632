package dto

// SignupRequest carries the credentials for a new account. Presence and
// format checks are enforced by the auth service so each failure surfaces
// as a distinct error kind, not a binding error.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest carries the credentials for an existing account.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest carries the refresh token being exchanged. When empty,
// handlers fall back to the refresh-token cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordRequest starts the password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest consumes a pending reset token.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// AuthData is the token pair returned by signup, signin, refresh and the
// OAuth exchange. ExpiresIn is the access token's absolute expiry as a
// unix timestamp.
type AuthData struct {
	UserID       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// ResponseMessage is a generic confirmation payload.
type ResponseMessage struct {
	Message string `json:"message"`
}
