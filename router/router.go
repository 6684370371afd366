// api/router/router.go

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/casa/api/config"
	"github.com/dev-mohitbeniwal/casa/api/controller"
	"github.com/dev-mohitbeniwal/casa/api/metrics"
	"github.com/dev-mohitbeniwal/casa/api/middleware"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// Options carries what the router needs besides the controllers.
type Options struct {
	Tokens         middleware.TokenParser
	RateLimitStore middleware.RateLimitStore
	Metrics        *metrics.Metrics
	MediaStore     *util.MediaStore
	RateLimit      config.RateLimitConfiguration
	AllowedOrigins []string
	// MaxUploadMemory bounds the part of a multipart body kept in memory.
	MaxUploadMemory int64
}

func SetupRouter(controllers *controller.Controllers, opts Options) *gin.Engine {
	router := gin.New()
	if opts.MaxUploadMemory > 0 {
		router.MaxMultipartMemory = opts.MaxUploadMemory
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Metrics))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(opts.AllowedOrigins))

	controllers.Health.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	router.StaticFS("/uploads", opts.MediaStore.FileSystem())

	api := router.Group("/api")
	api.Use(middleware.RateLimiter(opts.RateLimitStore, opts.RateLimit.Requests, opts.RateLimit.Duration, opts.Metrics))

	auth := middleware.AuthMiddleware(opts.Tokens)
	controllers.Auth.RegisterRoutes(api, auth)
	controllers.User.RegisterRoutes(api, auth)
	controllers.Property.RegisterRoutes(api, auth)
	controllers.Media.RegisterRoutes(api, auth)
	controllers.Admin.RegisterRoutes(api, auth)

	return router
}
