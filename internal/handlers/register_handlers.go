package handlers

import (
	"net/http"

	"github.com/SscSPs/audit_dashboard/cmd/docs"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/SscSPs/audit_dashboard/internal/middleware"
	"github.com/SscSPs/audit_dashboard/internal/platform/config"
	"github.com/SscSPs/audit_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps are the non-service collaborators of the router.
type RouteDeps struct {
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	// IntakeLimiter throttles intake submissions when set.
	IntakeLimiter *limiter.Limiter
	Posthog       *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	registerBindingValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	setupAPIV1Routes(r, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, deps RouteDeps) {
	v1 := r.Group("/api/v1")

	var submitLimit gin.HandlerFunc
	if deps.IntakeLimiter != nil {
		submitLimit = middleware.RateLimit(deps.IntakeLimiter)
	}

	registerAuditRoutes(v1, services.Audit, services.Form, services.Export)
	registerFormRoutes(v1, services.Form)
	registerIntakeRoutes(v1, services.Intake, deps.Posthog, submitLimit)
	registerDirectoryRoutes(v1, services.Directory, services.Audit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerBindingValidations adds the custom tags used by request DTOs.
func registerBindingValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("auditstatus", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseAuditStatus(fl.Field().String())
			return ok
		})
	}
}
