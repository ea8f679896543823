package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dori/actionary/internal/config"
	"github.com/dori/actionary/internal/db"
	"github.com/dori/actionary/internal/jsonfile"
	"github.com/dori/actionary/internal/store"
	"github.com/gofrs/flock"
)

// App holds the application state and dependencies
type App struct {
	Config *config.Config
	Store  *store.Store
	Logger *log.Logger

	db       *db.DB
	lockFile *flock.Flock
}

// New creates a new application instance. logger may be nil.
func New(cfg *config.Config, logger *log.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	// Ensure the storage directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.StoragePath()), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Acquire lock to ensure a single writer
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	gw, err := app.openGateway()
	if err != nil {
		app.releaseLock()
		return nil, err
	}

	app.Store = store.New(gw, logger)
	app.Store.Open()
	logger.Debug("store opened", "backend", cfg.Backend, "path", cfg.StoragePath(), "count", app.Store.Len())

	return app, nil
}

func (a *App) openGateway() (store.Gateway, error) {
	switch a.Config.Backend {
	case config.BackendSQLite:
		database, err := db.Open(a.Config.DBPath, a.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.db = database
		return database, nil
	default:
		return jsonfile.New(a.Config.File), nil
	}
}

// acquireLock acquires an exclusive file lock to prevent two instances from
// overwriting each other's file
func (a *App) acquireLock() error {
	a.lockFile = flock.New(a.Config.LockPath())

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of actionary is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
