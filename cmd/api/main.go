// Package main is the entry point for the Duitku API server.
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

	"github.com/duitku/backend/config"
	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/usecase/auth"
	"github.com/duitku/backend/internal/application/usecase/category"
	"github.com/duitku/backend/internal/application/usecase/export"
	"github.com/duitku/backend/internal/application/usecase/loan"
	"github.com/duitku/backend/internal/application/usecase/report"
	"github.com/duitku/backend/internal/application/usecase/settings"
	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/infra/db"
	"github.com/duitku/backend/internal/infra/server/router"
	"github.com/duitku/backend/internal/integration/adapters"
	"github.com/duitku/backend/internal/integration/entrypoint/controller"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
	"github.com/duitku/backend/internal/integration/persistence"
	"github.com/duitku/backend/internal/integration/persistence/model"
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

	slog.Info("Starting Duitku API",
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
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.LoanModel{},
		&model.UserSettingsModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Seed the shared default categories
	if err := database.SeedDefaultCategories(); err != nil {
		slog.Error("Failed to seed default categories", "error", err)
		os.Exit(1)
	}

	// Initialize the report cache. A missing Redis is not fatal; reports
	// fall back to computing from the database on every request.
	var reportCache adapter.ReportCache
	if redisOpts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, report caching disabled", "error", err)
	} else {
		reportCache = persistence.NewReportCache(redis.NewClient(redisOpts), cfg.Redis.CacheTTL)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	loanRepo := persistence.NewLoanRepository(database.DB())
	settingsRepo := persistence.NewSettingsRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, reportCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, reportCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reportCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, nil)

	// Create loan use cases
	createLoanUseCase := loan.NewCreateLoanUseCase(loanRepo)
	updateLoanUseCase := loan.NewUpdateLoanUseCase(loanRepo)
	deleteLoanUseCase := loan.NewDeleteLoanUseCase(loanRepo)
	listLoansUseCase := loan.NewListLoansUseCase(loanRepo)
	setLoanStatusUseCase := loan.NewSetLoanStatusUseCase(loanRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Create report and export use cases
	breakdownUseCase := report.NewGetCategoryBreakdownUseCase(transactionRepo, reportCache, nil)
	trendUseCase := report.NewGetDailyTrendUseCase(transactionRepo, reportCache, nil)
	balanceUseCase := report.NewGetBalanceOverviewUseCase(transactionRepo, reportCache, nil)
	exportUseCase := export.NewExportSpreadsheetUseCase(transactionRepo, settingsRepo, nil)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		listCategoriesUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)
	loanController := controller.NewLoanController(
		createLoanUseCase,
		updateLoanUseCase,
		deleteLoanUseCase,
		listLoansUseCase,
		setLoanStatusUseCase,
	)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	reportController := controller.NewReportController(breakdownUseCase, trendUseCase, balanceUseCase)
	exportController := controller.NewExportController(exportUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		loanController,
		settingsController,
		reportController,
		exportController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
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

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
