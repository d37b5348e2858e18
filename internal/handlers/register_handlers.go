package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/i18n"
	"github.com/insanmekan/journal_management_app/internal/middleware"
	"github.com/insanmekan/journal_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	resolver *i18n.Resolver,
) {
	r.Use(buildCORS(cfg))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, resolver)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	resolver *i18n.Resolver,
) {
	v1 := r.Group("/api/v1")

	gate := middleware.RequireSession(services.Session)
	adminGate := middleware.RequireAdmin(services.Session)

	registerAuthRoutes(v1, services.Session, buildLoginLimiter(cfg))
	registerSessionRoutes(v1, services.Session, gate)
	registerActiveJournalRoutes(v1, services.ActiveJournal, services.Journals, adminGate)
	registerJournalRoutes(v1, services.Journals, services.Users, gate)
	registerEntryRoutes(v1, services.Entries, gate)
	registerSearchRoutes(v1, services.Search)
	registerSettingsRoutes(v1, services.Settings, adminGate)
	registerI18nRoutes(v1, resolver)
}

// buildLoginLimiter throttles credential submissions per client IP.
func buildLoginLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("invalid login rate limit, using default", "value", cfg.LoginRateLimit, "error", err)
		rate = limiter.Rate{Period: time.Minute, Limit: 5}
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

func buildCORS(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
	} else {
		// Credentials cannot be combined with a wildcard origin.
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return cors.New(corsCfg)
}
