package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/resumes"
	"resume-portal/internal/services/health"
	"resume-portal/internal/shared/config"
	"resume-portal/internal/shared/metrics"
	"resume-portal/internal/shared/server/middleware"
	"resume-portal/internal/shared/server/respond"
	"resume-portal/internal/snapshots"
	"resume-portal/internal/students"
)

// RouterDeps holds handlers and collaborators for the HTTP API.
type RouterDeps struct {
	Config          config.Config
	Verifier        middleware.TokenVerifier
	Health          *health.Service
	StudentHandler  *students.Handler
	ResumeHandler   *resumes.Handler
	SnapshotHandler *snapshots.Handler
	// RateLimits overrides the per-group limits; nil uses DefaultRateLimits.
	RateLimits map[string]middleware.RateLimitRule
}

// DefaultRateLimits bounds PDF rendering per caller; other routes are unlimited.
func DefaultRateLimits() map[string]middleware.RateLimitRule {
	return map[string]middleware.RateLimitRule{
		middleware.RenderRateLimitGroup: {Rate: 2, Burst: 10},
	}
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	limits := deps.RateLimits
	if limits == nil {
		limits = DefaultRateLimits()
	}
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Verifier),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    limits,
			GroupFor: middleware.RenderGroup,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}
	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		report := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	registerMeRoutes(api)

	if deps.StudentHandler != nil {
		deps.StudentHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.SnapshotHandler != nil {
		deps.SnapshotHandler.RegisterRoutes(api)
	}
	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

// NewHTTPServer wraps handler with the timeouts used by cmd/api.
func NewHTTPServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              Addr(port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
