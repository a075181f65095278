// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toolbox/backend/internal/integration/entrypoint/controller"
	"github.com/toolbox/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
// A nil controller leaves its routes unmounted.
type Controllers struct {
	Health     *controller.HealthController
	Auth       *controller.AuthController
	Category   *controller.CategoryController
	Tool       *controller.ToolController
	View       *controller.ViewController
	Preference *controller.PreferenceController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.Metrics())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.setupOperationalRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupOperationalRoutes configures health and metrics endpoints.
func (r *Router) setupOperationalRoutes() {
	if r.controllers.Health != nil {
		r.engine.GET("/health", r.controllers.Health.Check)
	}
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Public routes
	if view := r.controllers.View; view != nil {
		v1.GET("/catalog", view.Catalog)
		v1.GET("/palette", view.Palette)
	}

	if r.authMiddleware == nil {
		return
	}
	authenticate := r.authMiddleware.Authenticate()
	optional := r.authMiddleware.OptionalAuthenticate()

	if c := r.controllers.Auth; c != nil && r.loginRateLimiter != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), c.Login)
			auth.POST("/google", r.loginRateLimiter.Middleware(), c.GoogleLogin)
			auth.POST("/refresh", c.RefreshToken)
			auth.POST("/logout", optional, c.Logout)
			auth.POST("/forgot-password", c.ForgotPassword)
			auth.POST("/reset-password", c.ResetPassword)
			auth.GET("/session", authenticate, c.Session)
		}
	}

	if c := r.controllers.Category; c != nil {
		categories := v1.Group("/categories")
		categories.Use(authenticate)
		{
			categories.GET("", c.List)
			categories.POST("", c.Create)
			categories.PATCH("/:id", c.Update)
			categories.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.Tool; c != nil {
		tools := v1.Group("/tools")
		tools.Use(authenticate)
		{
			tools.GET("", c.List)
			tools.POST("", c.Create)
			tools.POST("/import", c.Import)
			tools.POST("/suggest-category", c.SuggestCategory)
			tools.PATCH("/:id", c.Update)
			tools.DELETE("/:id", c.Delete)
		}
	}

	if c := r.controllers.View; c != nil {
		v1.GET("/view", authenticate, c.View)
	}

	if c := r.controllers.Preference; c != nil {
		prefs := v1.Group("/preferences")
		prefs.Use(optional)
		{
			prefs.GET("/theme", c.GetTheme)
			prefs.PUT("/theme", c.SetTheme)
			prefs.POST("/theme/toggle", c.ToggleTheme)
			prefs.GET("/install-prompt", c.InstallPrompt)
			prefs.POST("/install-prompt/dismiss", c.DismissInstallPrompt)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
