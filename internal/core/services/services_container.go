package services

import (
	portsrepo "github.com/petadminhq/pet_admin_app/internal/core/ports/repositories"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.NotifierSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.TokenService = NewTokenService(cfg)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo, container.TokenService, notifier)
	container.PetType = NewPetTypeService(repos.PetTypeRepo)
	container.PetBreed = NewPetBreedService(repos.PetBreedRepo, repos.PetTypeRepo)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.Notifier = notifier

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade  = (*authService)(nil)
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.UserSvcFacade  = (*userService)(nil)
)
