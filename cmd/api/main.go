package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/arpitagupta-cpu/campus-connect-digital/api/swagger"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/handler"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/middleware"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/memstore"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/pgstore"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/cache"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/config"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/database"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/jobs"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/logger"
	corsmiddleware "github.com/arpitagupta-cpu/campus-connect-digital/pkg/middleware/cors"
	reqidmiddleware "github.com/arpitagupta-cpu/campus-connect-digital/pkg/middleware/requestid"
)

// @title Campus Connect API
// @version 1.0.0
// @description Student/admin academic portal back end
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	st, ready, err := buildStore(ctx, cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init entity store", "backend", cfg.Storage.Backend, "error", err)
	}

	sessions, err := buildSessions(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init session directory", "backend", cfg.Session.Backend, "error", err)
	}

	audit := middleware.NewAuditRecorder(st, logr, jobs.QueueConfig{
		Workers:    cfg.Audit.Workers,
		BufferSize: cfg.Audit.BufferSize,
	})
	audit.Start(ctx)
	defer audit.Stop()

	metrics := service.NewMetricsService()

	validate := validator.New()
	authSvc := service.NewAuthService(st, sessions, validate, logr)
	assignmentSvc := service.NewAssignmentService(st, validate, logr)
	submissionSvc := service.NewSubmissionService(st, validate, logr)
	resourceSvc := service.NewResourceService(st, validate, logr)
	noticeSvc := service.NewNoticeService(st, validate, logr)
	scheduleSvc := service.NewScheduleService(st, validate, logr)
	eventSvc := service.NewEventService(st, validate, logr)
	todoSvc := service.NewTodoService(st, validate, logr)
	messageSvc := service.NewMessageService(st, validate, logr)
	rosterSvc := service.NewRosterService(st, validate, logr)
	auditSvc := service.NewAuditService(st, logr)

	cookie := handler.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Session.CookieHTTPS,
	}

	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, cookie),
		Assignments: handler.NewAssignmentHandler(assignmentSvc),
		Submissions: handler.NewSubmissionHandler(submissionSvc),
		Resources:   handler.NewResourceHandler(resourceSvc),
		Notices:     handler.NewNoticeHandler(noticeSvc),
		Schedule:    handler.NewScheduleHandler(scheduleSvc),
		Events:      handler.NewEventHandler(eventSvc),
		Todos:       handler.NewTodoHandler(todoSvc),
		Messages:    handler.NewMessageHandler(messageSvc),
		Admin:       handler.NewAdminHandler(rosterSvc, auditSvc),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handlers, sessions, cfg.Session.CookieName, audit)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting",
		"addr", addr,
		"env", cfg.Env,
		"storage", cfg.Storage.Backend,
		"sessions", cfg.Session.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildStore selects the entity store backend. The readiness probe it
// returns reflects the backend's reachability.
func buildStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (store.Store, func(context.Context) error, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return pgstore.New(db), db.PingContext, nil

	case config.BackendMemory:
		st := memstore.New()
		if cfg.Storage.SeedDemo {
			if err := st.SeedDemoData(ctx); err != nil {
				return nil, nil, err
			}
			logr.Sugar().Infow("demo data seeded")
		}
		return st, func(context.Context) error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func buildSessions(cfg *config.Config) (session.Directory, error) {
	opts := session.Options{TTL: cfg.Session.TTL, Sliding: cfg.Session.Sliding}

	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return session.NewRedisDirectory(client, opts), nil

	case config.BackendMemory:
		return session.NewMemoryDirectory(opts), nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
