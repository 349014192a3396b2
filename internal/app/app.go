package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/tbsouza/projeta/internal/notify"
)

// App holds the application state and dependencies
type App struct {
	Logger   zerolog.Logger
	Notifier *notify.Notifier
	DataDir  string
	// OutDir is where generated documents are saved
	OutDir string
	// PreviewDir holds the working copy of the last rendered document.
	// It is wiped on Close.
	PreviewDir string

	lockFile *flock.Flock
	logFile  *os.File
}

// Config holds application configuration
type Config struct {
	DataDir string
	OutDir  string
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".projeta"
	}
	return filepath.Join(home, ".local", "share", "projeta")
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	dataDir := DefaultDataDir()
	return &Config{
		DataDir: dataDir,
		OutDir:  filepath.Join(dataDir, "documentos"),
	}
}

// New creates a new application instance
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.OutDir == "" {
		cfg.OutDir = filepath.Join(cfg.DataDir, "documentos")
	}

	app := &App{
		DataDir:    cfg.DataDir,
		OutDir:     cfg.OutDir,
		PreviewDir: filepath.Join(cfg.DataDir, "preview"),
		Notifier:   notify.NewNotifier(),
	}

	for _, dir := range []string{app.DataDir, app.OutDir, app.PreviewDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Acquire lock to ensure single instance
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	if err := app.openLogger(); err != nil {
		app.releaseLock()
		return nil, err
	}

	return app, nil
}

// openLogger sets up the file-backed logger. Logging to the terminal
// would corrupt the TUI, so everything goes to projeta.log in the data
// dir. PROJETA_DEBUG=1 enables debug level.
func (a *App) openLogger() error {
	path := filepath.Join(a.DataDir, "projeta.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f

	level := zerolog.InfoLevel
	if os.Getenv("PROJETA_DEBUG") == "1" {
		level = zerolog.DebugLevel
	}
	a.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()

	return nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "projeta.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of projeta is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources. Preview copies exist only for
// the session, so the preview dir is emptied here.
func (a *App) Close() error {
	var errs []error

	if entries, err := os.ReadDir(a.PreviewDir); err == nil {
		for _, entry := range entries {
			if err := os.Remove(filepath.Join(a.PreviewDir, entry.Name())); err != nil {
				errs = append(errs, fmt.Errorf("failed to remove preview file: %w", err))
			}
		}
	}

	a.releaseLock()

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file: %w", err))
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
