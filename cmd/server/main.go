package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uenr-dev/uenr-student-api/api/swagger"
	"github.com/uenr-dev/uenr-student-api/internal/bootstrap"
	"github.com/uenr-dev/uenr-student-api/internal/handler"
	"github.com/uenr-dev/uenr-student-api/internal/middleware"
	"github.com/uenr-dev/uenr-student-api/internal/repository"
	"github.com/uenr-dev/uenr-student-api/internal/router"
	"github.com/uenr-dev/uenr-student-api/internal/service"
	"github.com/uenr-dev/uenr-student-api/pkg/cache"
	"github.com/uenr-dev/uenr-student-api/pkg/config"
	"github.com/uenr-dev/uenr-student-api/pkg/database"
	"github.com/uenr-dev/uenr-student-api/pkg/logger"
	corsmiddleware "github.com/uenr-dev/uenr-student-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uenr-dev/uenr-student-api/pkg/middleware/requestid"
	"github.com/uenr-dev/uenr-student-api/web"
)

// @title UENR Student Records API
// @version 1.0.0
// @description Student records management for the University of Energy and Natural Resources
// @BasePath /api
// @schemes http

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

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bootstrap.Migrate(ctx, db); err != nil {
		cancel()
		logr.Sugar().Fatalw("failed to apply schema", "error", err)
	}
	if cfg.Seed.OnStart {
		if err := bootstrap.Seed(ctx, db, logr); err != nil {
			cancel()
			logr.Sugar().Fatalw("failed to seed database", "error", err)
		}
	}
	cancel()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr)

	limits := service.ListingLimits{
		DefaultPageSize: cfg.Listing.DefaultPageSize,
		MaxPageSize:     cfg.Listing.MaxPageSize,
	}

	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	studentSvc := service.NewStudentService(studentRepo, nil, cacheSvc, limits, logr)
	courseSvc := service.NewCourseService(courseRepo, nil, cacheSvc, limits, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, nil, cacheSvc, logr)
	gradeSvc := service.NewGradeService(gradeRepo, nil, logr)
	referenceSvc := service.NewReferenceService(referenceRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, studentRepo, courseRepo, cacheSvc, logr)
	exportSvc := service.NewExportService(studentRepo, gradeRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.Register(r, cfg.APIPrefix, router.Handlers{
		Students:    handler.NewStudentHandler(studentSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc),
		Grades:      handler.NewGradeHandler(gradeSvc),
		References:  handler.NewReferenceHandler(referenceSvc),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		Exports:     handler.NewExportHandler(exportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
