package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/ballot/internal/voting/http"
	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/internal/voting/store/drivers/sqlite"
	"github.com/aussiebroadwan/ballot/pkg/cryptox"
	"github.com/aussiebroadwan/ballot/pkg/jwtx"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the ballot service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	pepper []byte
	roster *service.Roster
	keys   *jwtx.KeySet

	// Services
	identityService  *service.IdentityService
	tokenService     *service.TokenService
	candidateService *service.CandidateService
	ledgerService    *service.LedgerService
	tallyService     *service.TallyService
	receiptService   *service.ReceiptService
	ledgerAuditor    *service.LedgerAuditor

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg, os.Stdout),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSecrets(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

func newLogger(cfg Config, out io.Writer) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "ballot-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  out,
	})
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.ledgerAuditor.Start()

	app.logger.Info("ballot service starting", "port", app.cfg.Port, "version", BuildVersion)

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
		app.ledgerAuditor.Stop()
		_ = app.db.Close()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down ballot service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.ledgerAuditor.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("ballot service stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := openStore(app.cfg.DatabaseFile)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "path", app.cfg.DatabaseFile)
	return nil
}

func openStore(path string) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// initSecrets loads the pepper, the roster and the receipt key
func (app *Application) initSecrets() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.pepper = pepper

	roster, err := service.LoadRoster(app.cfg.CandidatesFile)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	app.roster = roster

	receipts, keys, err := InitReceiptKeys(app.cfg, app.db, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize receipt keys: %w", err)
	}
	app.receiptService = receipts
	app.keys = keys
	return nil
}

// initServices initializes all business logic services and seeds the roster
func (app *Application) initServices() error {
	app.tokenService = &service.TokenService{Store: app.db}
	app.identityService = &service.IdentityService{
		Store:  app.db,
		Tokens: app.tokenService,
		Pepper: app.pepper,
	}
	app.candidateService = &service.CandidateService{Store: app.db, Roster: app.roster}
	app.tallyService = &service.TallyService{Store: app.db}
	app.ledgerService = &service.LedgerService{
		Store:  app.db,
		Tokens: app.tokenService,
		Roster: app.roster,
		Tally:  app.tallyService,
	}

	app.ledgerAuditor = service.NewLedgerAuditor(
		app.ledgerService,
		app.logger,
		app.cfg.AuditInterval,
	)

	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.candidateService.Sync(ctx); err != nil {
		return fmt.Errorf("failed to seed candidates: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		BuildVersion,
		app.db,
		app.logger,
		httpapi.RouterOptions{
			CORSOrigin:     app.cfg.CORSOrigin,
			RequestTimeout: app.cfg.RequestTimeout,
		},
	)

	// Wire services to router
	router.IdentityService = app.identityService
	router.TokenService = app.tokenService
	router.CandidateService = app.candidateService
	router.LedgerService = app.ledgerService
	router.TallyService = app.tallyService
	router.ReceiptService = app.receiptService
	router.LedgerAuditor = app.ledgerAuditor
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
