// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/toolbox/backend/config"
	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/application/session"
	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/application/usecase/auth"
	"github.com/toolbox/backend/internal/application/usecase/category"
	"github.com/toolbox/backend/internal/application/usecase/preference"
	"github.com/toolbox/backend/internal/application/usecase/tool"
	"github.com/toolbox/backend/internal/application/usecase/view"
	"github.com/toolbox/backend/internal/infra/scheduler"
	"github.com/toolbox/backend/internal/infra/server/router"
	"github.com/toolbox/backend/internal/integration/adapters"
	"github.com/toolbox/backend/internal/integration/email"
	"github.com/toolbox/backend/internal/integration/email/templates"
	"github.com/toolbox/backend/internal/integration/entrypoint/controller"
	"github.com/toolbox/backend/internal/integration/entrypoint/middleware"
	"github.com/toolbox/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	Registry    *store.Registry
	Sessions    *session.Hub
	EmailSender adapter.EmailSender
	EmailWorker *email.Worker
	RateLimiter *middleware.RateLimiter
	Scheduler   *scheduler.Scheduler
}

// Options carries optional collaborators. Zero values select the configured defaults.
type Options struct {
	// HealthChecks override the database and cache probes of /health.
	DBHealth    controller.HealthChecker
	CacheHealth controller.HealthChecker
	// PasswordCost overrides the bcrypt cost.
	PasswordCost int
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, cache redis.UniversalClient, opts Options) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	toolRepo := persistence.NewToolRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	prefRepo := persistence.NewPreferenceRepository(cache, cfg.Redis.KeyPrefix)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	if opts.PasswordCost > 0 {
		passwordService = adapters.NewPasswordServiceWithCost(opts.PasswordCost)
	}
	tokenService := adapters.NewTokenService(adapters.TokenServiceConfig{
		Secret:          cfg.JWT.Secret,
		AccessDuration:  cfg.JWT.AccessTokenExpiry,
		RefreshDuration: cfg.JWT.RefreshTokenExpiry,
	}, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	verifier := adapters.NewGoogleIdentityVerifier(cfg.Google.ClientID)
	suggester := adapters.NewGeminiSuggester(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Email queue and delivery
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails are logged instead of sent")
		emailSender = email.NewMockEmailSender()
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Session observation and per-user stores
	sessions := session.NewHub()
	registry := store.NewRegistry(categoryRepo, toolRepo, sessions, nil)

	// Create auth use cases
	authUseCases := controller.AuthUseCases{
		Register:       auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService, sessions),
		Login:          auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, sessions),
		GoogleLogin:    auth.NewLoginWithGoogleUseCase(userRepo, verifier, tokenService, emailService, sessions),
		RefreshToken:   auth.NewRefreshTokenUseCase(userRepo, tokenService),
		Logout:         auth.NewLogoutUserUseCase(tokenService, sessions),
		ForgotPassword: auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL),
		ResetPassword:  auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService, sessions),
		Session:        auth.NewGetSessionUseCase(userRepo),
	}

	// Create controllers
	dbHealth := opts.DBHealth
	if dbHealth == nil {
		dbHealth = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}

	cacheHealth := opts.CacheHealth
	if cacheHealth == nil {
		cacheHealth = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return cache.Ping(ctx).Err() == nil
		}
	}

	controllers := router.Controllers{
		Health: controller.NewHealthController(dbHealth, cacheHealth),
		Auth:   controller.NewAuthController(authUseCases),
		Category: controller.NewCategoryController(
			category.NewListCategoriesUseCase(registry),
			category.NewCreateCategoryUseCase(registry),
			category.NewUpdateCategoryUseCase(registry),
			category.NewDeleteCategoryUseCase(registry),
		),
		Tool: controller.NewToolController(controller.ToolUseCases{
			List:    tool.NewListToolsUseCase(registry),
			Create:  tool.NewCreateToolUseCase(registry),
			Update:  tool.NewUpdateToolUseCase(registry),
			Delete:  tool.NewDeleteToolUseCase(registry),
			Import:  tool.NewImportLegacyToolsUseCase(registry),
			Suggest: tool.NewSuggestCategoryUseCase(registry, suggester),
		}),
		View: controller.NewViewController(
			view.NewGetViewUseCase(registry),
			view.NewGetCatalogUseCase(),
			view.NewGetPaletteUseCase(),
		),
		Preference: controller.NewPreferenceController(controller.PreferenceUseCases{
			GetTheme:      preference.NewGetThemeUseCase(prefRepo),
			SetTheme:      preference.NewSetThemeUseCase(prefRepo),
			ToggleTheme:   preference.NewToggleThemeUseCase(prefRepo),
			PromptStatus:  preference.NewInstallPromptStatusUseCase(prefRepo),
			DismissPrompt: preference.NewDismissInstallPromptUseCase(prefRepo),
		}),
	}

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Maintenance jobs
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs, err = scheduler.New(cfg.Scheduler, scheduler.Jobs{
			Tokens:  tokenRepo,
			Limiter: loginRateLimiter,
			Emails:  emailQueueRepo,
		})
		if err != nil {
			sessions.Close()
			registry.Close()
			return nil, err
		}
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      router.NewRouter(controllers, loginRateLimiter, authMiddleware),
		Registry:    registry,
		Sessions:    sessions,
		EmailSender: emailSender,
		EmailWorker: emailWorker,
		RateLimiter: loginRateLimiter,
		Scheduler:   jobs,
	}, nil
}

// Close stops background components started by the injector.
func (i *Injector) Close() {
	if i.Scheduler != nil {
		i.Scheduler.Stop()
	}
	i.Registry.Close()
	i.Sessions.Close()
}
