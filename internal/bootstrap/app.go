package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/resumes"
	"resume-portal/internal/services/health"
	"resume-portal/internal/shared/auth"
	"resume-portal/internal/shared/cache"
	"resume-portal/internal/shared/config"
	"resume-portal/internal/shared/server"
	"resume-portal/internal/shared/storage/db"
	"resume-portal/internal/shared/storage/object"
	localstore "resume-portal/internal/shared/storage/object/local"
	s3store "resume-portal/internal/shared/storage/object/s3"
	"resume-portal/internal/shared/telemetry"
	"resume-portal/internal/snapshots"
	"resume-portal/internal/students"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.Store
	PDFCache         cache.PDFCache
	JWT              *auth.JWT
	StudentsRepo     students.Repo
	ResumesRepo      resumes.Repo
	SnapshotsRepo    snapshots.Repo
	StudentsService  *students.Service
	ResumesService   *resumes.Service
	SnapshotsService *snapshots.Service
	Health           *health.Service

	closers []func() error
}

// Build prepares dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	app := &App{Config: cfg, Health: health.NewService()}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB != nil {
		app.DB = sqlDB
		app.closers = append(app.closers, sqlDB.Close)
		app.Health.Register("database", health.PingFunc(func(ctx context.Context) error {
			return db.Ping(ctx, sqlDB, cfg.DB.PingTimeout)
		}))
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Store = store

	app.PDFCache = cache.Nop{}
	if addr := strings.TrimSpace(cfg.RedisAddr); addr != "" {
		rc := cache.NewRedis(addr, cfg.RedisDB, cfg.PDFCacheTTL)
		app.PDFCache = rc
		app.closers = append(app.closers, rc.Close)
		app.Health.Register("redis", rc)
	}

	jwtAuth, err := auth.NewJWT(cfg.JWTSecret, cfg.Env)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.JWT = jwtAuth

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Verifier:        app.JWT,
		Health:          app.Health,
		StudentHandler:  students.NewHandler(app.StudentsService),
		ResumeHandler:   resumes.NewHandler(app.ResumesService, cfg.PublicBaseURL),
		SnapshotHandler: snapshots.NewHandler(app.SnapshotsService),
	})
	return app, nil
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromConfig(cfg.DB))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database unavailable", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.StudentsRepo = &students.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.SnapshotsRepo = &snapshots.PGRepo{DB: app.DB}
	} else {
		app.StudentsRepo = students.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.SnapshotsRepo = snapshots.NewMemoryRepo()
	}

	app.StudentsService = students.NewService(app.StudentsRepo)
	app.ResumesService = resumes.NewService(app.StudentsService, app.ResumesRepo, app.PDFCache, app.Config.ShareTokenTTL)
	app.SnapshotsService = &snapshots.Service{
		Repo:     app.SnapshotsRepo,
		Renderer: app.ResumesService,
		Store:    app.Store,
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
