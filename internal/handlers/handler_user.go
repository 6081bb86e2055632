package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/core/services"
	"github.com/petadminhq/pet_admin_app/internal/dto"
	"github.com/petadminhq/pet_admin_app/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
	authService portssvc.AuthSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, as portssvc.AuthSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
		authService: as,
	}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, authService portssvc.AuthSvcFacade) {
	h := newUserHandler(userService, authService)

	rg.GET("/me", h.getMe)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.PUT("/:id/personal-information", h.updatePersonalInformation)
		users.PUT("/:id/roles", h.updateRoles)
		users.DELETE("/:id", h.deleteUser)
	}
}

// requireCaller resolves the session into a stored user and checks it against
// the allowed role set. On failure it writes the response and returns nil.
func (h *userHandler) requireCaller(c *gin.Context, logger *slog.Logger, allowed ...domain.Role) *domain.User {
	caller, err := h.authService.RequireAuthenticated(c.Request.Context(), middleware.GetClaimsFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve caller")
		return nil
	}
	if err := services.RequireRole(caller, allowed...); err != nil {
		respondServiceError(c, logger, err, "Failed to authorize caller")
		return nil
	}
	return caller
}

// getMe godoc
// @Summary Get the calling user
// @Description Returns the account behind the bearer token.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, err := h.authService.RequireAuthenticated(c.Request.Context(), middleware.GetClaimsFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve caller")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(caller))
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a paginated list of users, newest first.
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.requireCaller(c, logger, services.ModeratorRoles...) == nil {
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// updatePersonalInformation godoc
// @Summary Update a user's personal information
// @Description Replaces the profile block of the given user.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param info body dto.UpdatePersonalInfoRequest true "Personal information"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/personal-information [put]
func (h *userHandler) updatePersonalInformation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.requireCaller(c, logger, services.SuperAdminOnly...) == nil {
		return
	}

	var req dto.UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "First name and last name are required"})
		return
	}

	updated, err := h.userService.UpdatePersonalInformation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update personal information")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// updateRoles godoc
// @Summary Replace a user's roles
// @Description Replaces the role set of the given user. The new set must be
// non-empty and drawn from the role enumeration.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param roles body dto.UpdateRolesRequest true "New role set"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/roles [put]
func (h *userHandler) updateRoles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.requireCaller(c, logger, services.SuperAdminOnly...) == nil {
		return
	}

	var req dto.UpdateRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "newRoles is required"})
		return
	}

	updated, err := h.userService.UpdateRoles(c.Request.Context(), c.Param("id"), req.Roles)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update roles")
		return
	}

	logger.Info("User roles updated", slog.String("target_user_id", updated.UserID))
	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Permanently removes a user record.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.ResponseMessage
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.requireCaller(c, logger, services.SuperAdminOnly...) == nil {
		return
	}

	message, err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}
