// Package main is the entry point for the FinanTrack API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finantrack/backend/config"
	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/application/usecase/auth"
	"github.com/finantrack/backend/internal/application/usecase/category"
	"github.com/finantrack/backend/internal/application/usecase/goal"
	"github.com/finantrack/backend/internal/application/usecase/notification"
	"github.com/finantrack/backend/internal/application/usecase/report"
	"github.com/finantrack/backend/internal/application/usecase/transaction"
	"github.com/finantrack/backend/internal/infra/db"
	"github.com/finantrack/backend/internal/infra/server/router"
	"github.com/finantrack/backend/internal/integration/adapters"
	"github.com/finantrack/backend/internal/integration/cache"
	"github.com/finantrack/backend/internal/integration/email"
	"github.com/finantrack/backend/internal/integration/entrypoint/controller"
	"github.com/finantrack/backend/internal/integration/entrypoint/middleware"
	"github.com/finantrack/backend/internal/integration/persistence"
	"github.com/finantrack/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FinanTrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.GoalModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis for the notification cache. Redis being down degrades
	// to recomputing notifications on every request.
	var notificationCache adapter.NotificationCache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Warn("Redis connection failed, notification caching disabled", "error", err)
	} else {
		notificationCache = cache.NewNotificationCache(redisClient)
		slog.Info("Redis connection established", "addr", cfg.Redis.Addr)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	ledgerRepo := persistence.NewLedgerRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	clock := adapter.SystemClock()

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create goal use cases
	setGoalUseCase := goal.NewSetGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create report use cases
	summaryUseCase := report.NewGetSummaryUseCase(ledgerRepo, clock)
	monthlyReportUseCase := report.NewGetMonthlyReportUseCase(ledgerRepo)
	customReportUseCase := report.NewGetCustomPeriodReportUseCase(ledgerRepo)
	trendUseCase := report.NewGetMonthlyTrendUseCase(ledgerRepo, clock)
	budgetStatusUseCase := report.NewGetBudgetStatusUseCase(ledgerRepo)
	unusualExpensesUseCase := report.NewGetUnusualExpensesUseCase(ledgerRepo, cfg.Engine.AnomalyThreshold, cfg.Engine.AnomalyWindow)

	// Create notification use cases. The digest sender is only available when
	// a Resend API key is configured.
	getNotificationsUseCase := notification.NewGetNotificationsUseCase(
		ledgerRepo,
		notificationCache,
		clock,
		cfg.Engine.AnomalyThreshold,
		cfg.Engine.AnomalyWindow,
		cfg.Engine.CacheTTL,
	)

	var digestSender adapter.NotificationDigestSender
	if cfg.Email.ResendAPIKey != "" {
		resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		digestSender = email.NewDigestSender(resendClient)
	} else {
		slog.Warn("RESEND_API_KEY not set, notification digest emails disabled")
	}
	sendDigestUseCase := notification.NewSendDigestUseCase(userRepo, getNotificationsUseCase, digestSender)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	goalController := controller.NewGoalController(
		setGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)
	reportController := controller.NewReportController(
		summaryUseCase,
		monthlyReportUseCase,
		customReportUseCase,
		trendUseCase,
		budgetStatusUseCase,
		unusualExpensesUseCase,
	)
	notificationController := controller.NewNotificationController(getNotificationsUseCase, sendDigestUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		goalController,
		reportController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("Failed to close Redis connection", "error", err)
	}

	slog.Info("Server exited properly")
}
