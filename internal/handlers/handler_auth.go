package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gin-gonic/gin"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/dto"
	"github.com/petadminhq/pet_admin_app/internal/middleware"
	"github.com/petadminhq/pet_admin_app/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication. The session
// resolver runs here too so logout can see who is calling.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth", middleware.SessionResolver(services.TokenService))
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/forgot-password", limitMiddleware, h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}
}

// setRefreshTokenCookie stores the refresh token in an HTTP-only cookie
// scoped to the auth routes.
func (h *AuthHandler) setRefreshTokenCookie(c *gin.Context, authData *dto.AuthData) {
	maxAge := int(h.cfg.RefreshTokenExpiryDuration / time.Second)
	c.SetCookie(h.cfg.RefreshTokenCookieName, authData.RefreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) clearRefreshTokenCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// Register godoc
// @Summary Register a new account
// @Description Creates a client account and returns a fresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.SignupRequest true "Signup credentials"
// @Success 201 {object} dto.AuthData
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	authData, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}

	h.setRefreshTokenCookie(c, authData)
	c.JSON(http.StatusCreated, authData)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a fresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.SigninRequest true "Login credentials"
// @Success 200 {object} dto.AuthData
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Email not found"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	authData, err := h.authService.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sign in")
		return
	}

	h.setRefreshTokenCookie(c, authData)
	c.JSON(http.StatusOK, authData)
}

// Logout godoc
// @Summary User logout
// @Description Revokes every outstanding token for the caller by bumping the
// token version. Succeeds quietly when no user is resolvable.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ResponseMessage
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, _ := middleware.GetUserIDFromContext(c)
	message, err := h.authService.Signout(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sign out")
		return
	}

	h.clearRefreshTokenCookie(c)
	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}

// Refresh godoc
// @Summary Refresh token pair
// @Description Exchanges a refresh token for a new pair. The token is read
// from the body, falling back to the refresh cookie. Each refresh token is
// usable exactly once.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} dto.AuthData
// @Failure 401 {object} ErrorResponse "Invalid, expired or already used token"
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)
	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken, _ = c.Cookie(h.cfg.RefreshTokenCookieName)
	}

	authData, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshTokenCookie(c)
		respondServiceError(c, logger, err, "Failed to refresh token")
		return
	}

	h.setRefreshTokenCookie(c, authData)
	c.JSON(http.StatusOK, authData)
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Emails a reset link carrying a single-use reset token.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.ResponseMessage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Email not found"
// @Failure 502 {object} ErrorResponse "Mail provider rejected the message"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	message, err := h.authService.RequestResetPassword(c.Request.Context(), req.Email)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to send reset email")
		return
	}

	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Consumes a pending reset token and sets a new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.ResponseMessage
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Expired reset token"
// @Failure 404 {object} ErrorResponse "Unknown reset token"
// @Failure 500 {object} ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	message, err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reset password")
		return
	}

	logger.Info("Password reset completed", slog.String("path", c.Request.URL.Path))
	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}
