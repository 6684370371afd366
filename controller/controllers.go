// api/controller/controllers.go
package controller

import (
	"github.com/dev-mohitbeniwal/casa/api/config"
	"github.com/dev-mohitbeniwal/casa/api/service"
)

type Controllers struct {
	Health   *HealthController
	Auth     *AuthController
	User     *UserController
	Property *PropertyController
	Media    *MediaController
	Admin    *AdminController
}

func InitializeControllers(services *service.Services, upload config.UploadConfiguration) *Controllers {
	return &Controllers{
		Health:   NewHealthController(),
		Auth:     NewAuthController(services.Auth),
		User:     NewUserController(services.User),
		Property: NewPropertyController(services.Property),
		Media:    NewMediaController(services.Media, upload),
		Admin:    NewAdminController(services.Audit),
	}
}
