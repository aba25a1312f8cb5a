package app

import (
	"context"
	"fmt"
	"time"

	"fittrack_backend/database"
	"fittrack_backend/internal/auth"
	"fittrack_backend/internal/config"
	"fittrack_backend/internal/handlers"
	"fittrack_backend/internal/logger"
	"fittrack_backend/internal/middleware"
	"fittrack_backend/internal/pkg/email"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/routes"
	"fittrack_backend/internal/services"
	"fittrack_backend/internal/validator"
	"fittrack_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError превращает нарушения уникальных индексов в gorm.ErrDuplicatedKey
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	revokedRepo := repositories.NewRevokedTokenRepository(gormDB)
	purgeWorker := workers.NewBlacklistWorker(revokedRepo,
		time.Duration(cfg.Auth.PurgeIntervalHours)*time.Hour)
	purgeWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полностью готовый gin.Engine.
// Вынесено отдельно, чтобы интеграционные тесты могли поднять
// приложение без реального сетевого слушателя.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret,
		time.Duration(cfg.JWT.SessionTTLHours)*time.Hour)
	if err != nil {
		logger.Fatal("Failed to initialize token manager", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, tokens)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	revokedRepo := repositories.NewRevokedTokenRepository(gormDB)
	authRequired := middleware.AuthMiddleware(tokens, revokedRepo)

	routes.RegisterRoutes(ginRouter, appHandlers, authRequired)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tokens *auth.TokenManager) *services.ServiceContainer {
	sender, err := email.NewSMTPSender(email.FromAppConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to initialize email sender", "error", err)
	}

	userRepo := repositories.NewUserRepository(gormDB)
	revokedRepo := repositories.NewRevokedTokenRepository(gormDB)
	activityRepo := repositories.NewActivityRepository(gormDB)
	exerciseRepo := repositories.NewExerciseRepository(gormDB)
	foodRepo := repositories.NewFoodRepository(gormDB)
	chatRepo := repositories.NewChatLogRepository(gormDB)

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	authCfg := services.AuthConfig{
		RegisterTokenTTL:   time.Duration(cfg.JWT.RegisterTTLHours) * time.Hour,
		VerificationTTL:    time.Duration(cfg.Auth.VerificationTTLHours) * time.Hour,
		TempPasswordTTL:    time.Duration(cfg.Auth.TempPasswordTTLHours) * time.Hour,
		BlacklistRetention: time.Duration(cfg.Auth.BlacklistRetainDays) * 24 * time.Hour,
	}

	authService := services.NewAuthService(userRepo, revokedRepo, hasher, tokens, sender, authCfg)
	userService := services.NewUserService(userRepo)
	activityService := services.NewActivityService(activityRepo)
	exerciseService := services.NewExerciseService(exerciseRepo)
	foodService := services.NewFoodService(foodRepo)
	chatLogService := services.NewChatLogService(chatRepo)

	return &services.ServiceContainer{
		AuthService:     authService,
		UserService:     userService,
		ActivityService: activityService,
		ExerciseService: exerciseService,
		FoodService:     foodService,
		ChatLogService:  chatLogService,
		EmailSender:     sender,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	return handlers.NewAppHandlers(sc, customValidator)
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	validator.RegisterGinRules()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
