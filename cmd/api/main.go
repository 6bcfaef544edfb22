package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campus-ops/faculty-reporting-api/api/swagger"
	"github.com/campus-ops/faculty-reporting-api/pkg/cache"
	"github.com/campus-ops/faculty-reporting-api/pkg/config"
	"github.com/campus-ops/faculty-reporting-api/pkg/database"
	"github.com/campus-ops/faculty-reporting-api/pkg/logger"
	corsmiddleware "github.com/campus-ops/faculty-reporting-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campus-ops/faculty-reporting-api/pkg/middleware/requestid"

	"github.com/campus-ops/faculty-reporting-api/internal/handler"
	"github.com/campus-ops/faculty-reporting-api/internal/middleware"
	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/repository"
	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

// @title Faculty Reporting API
// @version 1.0.0
// @description Role-scoped academic administration and report review API
// @BasePath /
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Overview.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, overview caching disabled", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	classRepo := repository.NewClassRepository(db)
	reportRepo := repository.NewReportRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      "faculty-reporting-api",
	})
	userSvc := service.NewUserService(userRepo, logr)
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, validate, logr)
	reportSvc := service.NewReportService(reportRepo, validate, logr)
	ratingSvc := service.NewRatingService(ratingRepo, validate, logr)
	facultySvc := service.NewFacultyService(courseRepo, classRepo, reportRepo, redisClient, cfg.Overview.CacheTTL, logr)
	exportSvc := service.NewExportService(reportSvc, logr)
	metricsSvc := service.NewMetricsService()

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	classHandler := handler.NewClassHandler(classSvc)
	reportHandler := handler.NewReportHandler(reportSvc, exportSvc)
	ratingHandler := handler.NewRatingHandler(ratingSvc)
	facultyHandler := handler.NewFacultyHandler(facultySvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api := r.Group("/api", middleware.JWT(authSvc))
	{
		api.GET("/users", userHandler.List)

		api.GET("/courses", courseHandler.List)
		api.POST("/courses",
			middleware.RequireRoles("only program leaders can add courses", models.RoleProgramLeader),
			courseHandler.Create)

		api.POST("/classes",
			middleware.RequireRoles("only program leaders can add classes", models.RoleProgramLeader),
			classHandler.Create)
		api.GET("/my-classes",
			middleware.RequireRoles("only lecturers can access their classes", models.RoleLecturer),
			classHandler.MyClasses)

		api.GET("/reports", reportHandler.List)
		api.GET("/reports/export", reportHandler.Export)
		api.POST("/reports",
			middleware.RequireRoles("only lecturers can submit reports", models.RoleLecturer),
			reportHandler.Submit)
		api.POST("/reports/:id/feedback",
			middleware.RequireRoles("only prls can give feedback", models.RoleProgramReviewLead),
			reportHandler.Feedback)

		api.POST("/ratings", ratingHandler.Create)
		api.GET("/ratings/target/:id", ratingHandler.ListByTarget)

		api.GET("/faculty/:facultyName", facultyHandler.Overview)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
