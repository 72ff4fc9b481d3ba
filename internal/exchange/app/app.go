package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/astromitts/gifterator3000/internal/exchange/assign"
	httpapi "github.com/astromitts/gifterator3000/internal/exchange/http"
	"github.com/astromitts/gifterator3000/internal/exchange/service"
	"github.com/astromitts/gifterator3000/internal/exchange/store"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite"
	"github.com/astromitts/gifterator3000/pkg/slogx"
)

const (
	// ServiceName identifies the service in logs and traces.
	ServiceName = "giftexchange"
)

// setupTracing is swapped in tests to observe the tracer lifecycle.
var setupTracing = initTracing

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the gift exchange service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db             store.Store
	generator      *assign.Generator
	tracerShutdown func(context.Context) error

	// Services
	exchangeService    *service.ExchangeService
	participantService *service.ParticipantService
	assignmentService  *service.AssignmentService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: ServiceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	generator, err := assign.NewRandomGenerator(cfg.AssignMaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to seed assignment generator: %w", err)
	}
	app.generator = generator

	shutdown, err := setupTracing(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.tracerShutdown = shutdown

	if err := app.initDatabase(); err != nil {
		if serr := shutdown(context.Background()); serr != nil {
			err = errors.Join(err, fmt.Errorf("failed to shut down tracing: %w", serr))
		}
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.server.Handler
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("gift exchange service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"trace_exporter", app.cfg.TraceExporter,
		"assign_max_attempts", app.generator.MaxAttempts(),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down gift exchange service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Flush pending spans
	if err := app.tracerShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("gift exchange service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := app.cfg.DatabaseFile
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	}

	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.exchangeService = &service.ExchangeService{Store: app.db}
	app.participantService = &service.ParticipantService{Store: app.db}
	app.assignmentService = &service.AssignmentService{
		Store:     app.db,
		Generator: app.generator,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.ExchangeService = app.exchangeService
	router.ParticipantService = app.participantService
	router.AssignmentService = app.assignmentService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           otelhttp.NewHandler(router, ServiceName),
		ReadHeaderTimeout: 3 * time.Second,
	}
}
