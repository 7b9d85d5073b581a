package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/auth"
	"jobtrack/internal/config"
	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/storage"
)

// RegisterRoutes wires all v1 endpoints onto the router.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	authService *auth.Service,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
	clock model.Clock,
	cfg *config.Config,
) {
	jobRepo := repository.NewJobApplyRepository(db, clock)
	profileRepo := repository.NewMyProfileRepository(db, clock)
	prefRepo := repository.NewMyJobPreferenceRepository(db, clock)
	docRepo := repository.NewDocumentRepository(db, clock)

	authHandler := NewAuthHandler(
		db,
		authService,
		redisClient,
		logger,
		cfg.Auth.LoginRateLimitPerHour,
		cfg.Auth.LoginLockThreshold,
		time.Duration(cfg.Auth.LoginLockTTLMinutes)*time.Minute,
		cfg.Auth.CookieDomain,
	)
	jobHandler := NewJobApplyHandler(jobRepo, clock)
	profileHandler := NewProfileHandler(profileRepo, prefRepo, clock)
	prefHandler := NewPreferenceHandler(prefRepo, clock)
	dashboardHandler := NewDashboardHandler(jobRepo, clock)
	documentHandler := NewDocumentHandler(docRepo, storageClient, cfg.API.ClamdAddr)
	wsHandler := NewWsHandler(redisClient, authService, logger, cfg.API.WsOrigins())
	authMiddleware := middleware.AuthMiddleware(authService)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/change-password", authMiddleware, authHandler.ChangePassword)
		}

		jobGroup := v1.Group("/applications")
		jobGroup.Use(authMiddleware)
		{
			jobGroup.GET("", jobHandler.List)
			jobGroup.POST("", jobHandler.Create)
			jobGroup.GET("/:id", jobHandler.Get)
			jobGroup.PUT("/:id", jobHandler.Update)
			jobGroup.PATCH("/:id/status", jobHandler.UpdateStatus)
			jobGroup.DELETE("/:id", jobHandler.Delete)
		}

		profileGroup := v1.Group("/profile")
		profileGroup.Use(authMiddleware)
		{
			profileGroup.GET("", profileHandler.Get)
			profileGroup.POST("", profileHandler.Create)
			profileGroup.PUT("", profileHandler.Update)
			profileGroup.DELETE("", profileHandler.Delete)
		}

		prefGroup := v1.Group("/preferences")
		prefGroup.Use(authMiddleware)
		{
			prefGroup.GET("", prefHandler.List)
			prefGroup.POST("", prefHandler.Create)
			prefGroup.GET("/:id", prefHandler.Get)
			prefGroup.PUT("/:id", prefHandler.Update)
			prefGroup.DELETE("/:id", prefHandler.Delete)
		}

		v1.GET("/dashboard", authMiddleware, dashboardHandler.Get)

		docGroup := v1.Group("/documents")
		docGroup.Use(authMiddleware)
		{
			docGroup.POST("", documentHandler.Upload)
			docGroup.GET("", documentHandler.List)
			docGroup.GET("/:id/download-link", documentHandler.Download)
			docGroup.DELETE("/:id", documentHandler.Delete)
		}
	}
}
