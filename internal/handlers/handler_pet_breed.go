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

// petBreedHandler handles HTTP requests related to pet breeds.
type petBreedHandler struct {
	petBreedService portssvc.PetBreedSvcFacade
	authService     portssvc.AuthSvcFacade
}

// newPetBreedHandler creates a new petBreedHandler.
func newPetBreedHandler(pbs portssvc.PetBreedSvcFacade, as portssvc.AuthSvcFacade) *petBreedHandler {
	return &petBreedHandler{
		petBreedService: pbs,
		authService:     as,
	}
}

// registerPetBreedRoutes registers routes related to pet breeds.
func registerPetBreedRoutes(rg *gin.RouterGroup, petBreedService portssvc.PetBreedSvcFacade, authService portssvc.AuthSvcFacade) {
	h := newPetBreedHandler(petBreedService, authService)

	petBreeds := rg.Group("/pet-breeds")
	{
		petBreeds.GET("", h.listPetBreeds)
		petBreeds.POST("", h.createPetBreed)
		petBreeds.PUT("/:id", h.updatePetBreed)
		petBreeds.PATCH("/:id/toggle-active", h.togglePetBreedActive)
		petBreeds.DELETE("/:id", h.deletePetBreed)
	}
}

func (h *petBreedHandler) requireModerator(c *gin.Context, allowed ...domain.Role) bool {
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

// listPetBreeds godoc
// @Summary List pet breeds
// @Description Retrieves all breeds, newest first, with their pet types embedded.
// @Tags pet-breeds
// @Produce json
// @Success 200 {object} dto.ListPetBreedsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /pet-breeds [get]
func (h *petBreedHandler) listPetBreeds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, err := h.authService.RequireAuthenticated(c.Request.Context(), middleware.GetClaimsFromContext(c)); err != nil {
		respondServiceError(c, logger, err, "Failed to resolve caller")
		return
	}

	petBreeds, err := h.petBreedService.ListPetBreeds(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list pet breeds")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPetBreedsResponse(petBreeds))
}

// createPetBreed godoc
// @Summary Create a pet breed
// @Description Adds a breed with a unique name under an existing pet type.
// @Tags pet-breeds
// @Accept json
// @Produce json
// @Param petBreed body dto.CreatePetBreedRequest true "Pet breed details"
// @Success 201 {object} dto.PetBreedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Pet type not found"
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /pet-breeds [post]
func (h *petBreedHandler) createPetBreed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.ModeratorRoles...) {
		return
	}

	var req dto.CreatePetBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name and pet type ID are required"})
		return
	}

	created, err := h.petBreedService.CreatePetBreed(c.Request.Context(), req.Name, req.PetTypeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create pet breed")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPetBreedResponse(created))
}

// updatePetBreed godoc
// @Summary Update a pet breed
// @Description Renames a breed and optionally moves it to another pet type.
// @Tags pet-breeds
// @Accept json
// @Produce json
// @Param id path string true "Pet breed ID"
// @Param petBreed body dto.UpdatePetBreedRequest true "New breed details"
// @Success 200 {object} dto.PetBreedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /pet-breeds/{id} [put]
func (h *petBreedHandler) updatePetBreed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.ModeratorRoles...) {
		return
	}

	var req dto.UpdatePetBreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name is required"})
		return
	}

	updated, err := h.petBreedService.UpdatePetBreed(c.Request.Context(), c.Param("id"), req.Name, req.PetTypeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update pet breed")
		return
	}

	c.JSON(http.StatusOK, dto.ToPetBreedResponse(updated))
}

// togglePetBreedActive godoc
// @Summary Toggle a pet breed's active state
// @Tags pet-breeds
// @Produce json
// @Param id path string true "Pet breed ID"
// @Success 200 {object} dto.ResponseMessage
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pet-breeds/{id}/toggle-active [patch]
func (h *petBreedHandler) togglePetBreedActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.ModeratorRoles...) {
		return
	}

	message, err := h.petBreedService.TogglePetBreedActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to toggle pet breed")
		return
	}

	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}

// deletePetBreed godoc
// @Summary Delete a pet breed
// @Description Permanently removes a breed.
// @Tags pet-breeds
// @Produce json
// @Param id path string true "Pet breed ID"
// @Success 200 {object} dto.ResponseMessage
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pet-breeds/{id} [delete]
func (h *petBreedHandler) deletePetBreed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.requireModerator(c, services.SuperAdminOnly...) {
		return
	}

	message, err := h.petBreedService.DeletePetBreed(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete pet breed")
		return
	}

	c.JSON(http.StatusOK, dto.ResponseMessage{Message: message})
}
