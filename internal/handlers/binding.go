package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// registerCustomValidators adds domain-aware binding rules on top of the
// tag set gin ships with. Binding failures surface before the service
// layer sees the request.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.ValidRole(domain.Role(fl.Field().String()))
	})
}
