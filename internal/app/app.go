package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ppo-ops/internal/customers"
	internalhttp "ppo-ops/internal/http"
	"ppo-ops/internal/imports"
	"ppo-ops/internal/orders"
	"ppo-ops/internal/payments"
	"ppo-ops/internal/reports"
	"ppo-ops/internal/shared/configs"
	"ppo-ops/internal/shared/filestorages"
	"ppo-ops/internal/shared/loggers"
	"ppo-ops/internal/shared/validators"
	"ppo-ops/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "ppo-ops").
		Logger()

	// Initialize record storage
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	customerStore := stores.NewCustomerStore(fileStorage)
	orderStore := stores.NewOrderStore(fileStorage)

	validate := validators.New()
	classifier := payments.NewClassifier(
		config.Payments.DueSoonThresholdDays,
		config.Payments.StalePendingThresholdDays,
	)

	// Initialize services
	customerService := customers.NewCustomerService(customerStore, orderStore, validate)
	orderService := orders.NewOrderService(orderStore, customerStore, validate, classifier)
	reportService := reports.NewReportService(orderStore, customerStore, config.Reports.TopCustomersDefaultLimit)
	importService := imports.NewImportService(customerStore, orderService)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(customerService, orderService, reportService, importService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting ppo-ops service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
