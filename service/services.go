// api/service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/casa/api/audit"
	"github.com/dev-mohitbeniwal/casa/api/config"
	"github.com/dev-mohitbeniwal/casa/api/dao"
	"github.com/dev-mohitbeniwal/casa/api/metrics"
	"github.com/dev-mohitbeniwal/casa/api/pdp/engine"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

type Services struct {
	Auth     IAuthService
	User     IUserService
	Property IPropertyService
	Media    IMediaService
	Audit    IAuditService
}

// Dependencies are the shared infrastructure handed to every service.
type Dependencies struct {
	AuditService        audit.Service
	Metrics             *metrics.Metrics
	Tokens              *util.TokenManager
	ValidationUtil      *util.ValidationUtil
	CacheService        *util.CacheService
	MediaStore          *util.MediaStore
	NotificationService *util.NotificationService
	EventBus            *util.EventBus
	Upload              config.UploadConfiguration
}

func InitializeServices(daos *dao.DAOs, deps Dependencies) *Services {
	authorizer := NewAuthorizer(daos.User, engine.NewPolicyEvaluator(), deps.AuditService, deps.Metrics, deps.NotificationService, deps.EventBus)

	return &Services{
		Auth:     NewAuthService(daos.User, deps.Tokens, deps.ValidationUtil, deps.NotificationService, deps.EventBus),
		User:     NewUserService(daos.User, daos.Favorite, daos.SavedSearch, authorizer, deps.ValidationUtil, deps.NotificationService, deps.EventBus),
		Property: NewPropertyService(daos.Property, daos.Favorite, authorizer, deps.ValidationUtil, deps.CacheService, deps.MediaStore, deps.NotificationService, deps.EventBus),
		Media:    NewMediaService(daos.Media, daos.Property, authorizer, deps.ValidationUtil, deps.CacheService, deps.MediaStore, deps.EventBus, deps.Upload),
		Audit:    NewAuditService(deps.AuditService, authorizer),
	}
}
