package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/core/services"
	"github.com/petadminhq/pet_admin_app/internal/dto"
	"github.com/petadminhq/pet_admin_app/internal/middleware"
)

// petTypeHandler handles HTTP requests related to pet types.
type petTypeHandler struct {
	petTypeService portssvc.PetTypeSvcFacade
	authService    portssvc.AuthSvcFacade
}

// newPetTypeHandler creates a new petTypeHandler.
func newPetTypeHandler(pts portssvc.PetTypeSvcFacade, as portssvc.AuthSvcFacade) *petTypeHandler {
	return &petTypeHandler{
		petTypeService: pts,
		authService:    as,
	}
}

// registerPetTypeRoutes registers routes related to pet types.
func registerPetTypeRoutes(rg *gin.RouterGroup, petTypeService portssvc.PetTypeSvcFacade, authService portssvc.AuthSvcFacade) {
	h := newPetTypeHandler(petTypeService, authService)

	petTypes := rg.Group("/pet-types")
	{
		petTypes.GET("", h.listPetTypes)
		petTypes.POST("", h.createPetType)
		petTypes.PUT("/:id", h.updatePetType)
		petTypes.PATCH("/:id/toggle-active", h.togglePetTypeActive)
		petTypes.DELETE("/:id", h.deletePetType)
	}
}

// requireModerator resolves the session and checks for a moderation role.
// On failure it writes the response and returns false.
func (h *petTypeHandler) requireModerator(c *gin.Context, allowed ...domain.Role) bool {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, err := h.authService.RequireAuthenticated(c.Request.Context(), middleware.GetClaimsFromContext(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve caller")
		return false
	}
	if err := services.RequireRole(caller, allowed...); err != nil {
		respondServiceError(c, logger, err, "Failed to authorize caller")
		return false
	}
	return true
}

// listPetTypes godoc
// @Summary List pet types
// @Description Retrieves all pet types, newest first, including inactive ones.
// @Tags pet-types
// @Produce json
// @Success 200 {object} dto.ListPetTypesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /pet-types [get]
func (h *petTypeHandler) listPetTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, err := h.authService.RequireAuthenticated(c.Request.Context(), middleware.GetClaimsFromContext(c)); err != nil {
		respondServiceError(c, logger, err, "Failed to resolve caller")
		return
	}

	petTypes, err := h.petTypeService.ListPetTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list pet types")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPetTypesResponse(petTypes))
}

// createPetType godoc
// @Summary Create a pet type
// @Description Adds a pet type with a unique name.
// @Tags pet-types
// @Accept json
// @Produce json
// @Param petType body dto.CreatePetTypeRequest true "Pet type details"
// @Success 201 {object} dto.PetTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /pet-types [post]
func (h *petTypeHandler) createPetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.ModeratorRoles...) {
		return
	}

	var req dto.CreatePetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name is required"})
		return
	}

	created, err := h.petTypeService.CreatePetType(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create pet type")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPetTypeResponse(created))
}

// updatePetType godoc
// @Summary Rename a pet type
// @Tags pet-types
// @Accept json
// @Produce json
// @Param id path string true "Pet type ID"
// @Param petType body dto.UpdatePetTypeRequest true "New name"
// @Success 200 {object} dto.PetTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /pet-types/{id} [put]
func (h *petTypeHandler) updatePetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.ModeratorRoles...) {
		return
	}

	var req dto.UpdatePetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name is required"})
		return
	}

	updated, err := h.petTypeService.UpdatePetType(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update pet type")
		return
	}

	c.JSON(http.StatusOK, dto.ToPetTypeResponse(updated))
}

// togglePetTypeActive godoc
// @Summary Toggle a pet type's active state
// @Description Deactivates an active pet type and reactivates an inactive one.
// @Tags pet-types
// @Produce json
// @Param id path string true "Pet type ID"
// @Success 200 {object} dto.ResponseMessage
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pet-types/{id}/toggle-active [patch]
func (h *petTypeHandler) togglePetTypeActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.ModeratorRoles...) {
		return
	}

	message, err := h.petTypeService.TogglePetTypeActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to toggle pet type")
		return
	}

	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}

// deletePetType godoc
// @Summary Delete a pet type
// @Description Permanently removes a pet type.
// @Tags pet-types
// @Produce json
// @Param id path string true "Pet type ID"
// @Success 200 {object} dto.ResponseMessage
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pet-types/{id} [delete]
func (h *petTypeHandler) deletePetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.SuperAdminOnly...) {
		return
	}

	message, err := h.petTypeService.DeletePetType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete pet type")
		return
	}

	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}
