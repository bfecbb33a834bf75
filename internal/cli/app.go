package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/Loocist23/2ta-mobile-app/internal/account"
	"github.com/Loocist23/2ta-mobile-app/internal/catalog"
	"github.com/Loocist23/2ta-mobile-app/internal/config"
	"github.com/Loocist23/2ta-mobile-app/internal/storage"
	"github.com/Loocist23/2ta-mobile-app/internal/toast"
	pkglog "github.com/Loocist23/2ta-mobile-app/pkg/log"
)

// commandIO is the slice of *cobra.Command the wiring needs.
type commandIO interface {
	ErrOrStderr() io.Writer
	Context() context.Context
}

// App bundles the wired application: configuration, durable storage, the
// account store, the catalogs and the toast queue. One App is built per
// command invocation and closed when the command finishes.
type App struct {
	Config  *config.Config
	Store   *account.Store
	Catalog *catalog.Catalog
	Toasts  *toast.Queue

	closer func() error
}

// newApp wires the application from configuration. Toast notices print to
// the command's error stream as they display, so outcomes stay visible in
// a terminal.
func newApp(opts *RootOptions, cmd commandIO) (*App, error) {
	cfg := config.MustLoad()

	logger := pkglog.New(cfg.AppEnv, cfg.LogLevel)
	if !opts.Verbose {
		logger = logger.Level(zerolog.Disabled)
	}

	kv, closer, err := openStorage(cfg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "storage unavailable", err)
	}

	queue := toast.NewQueue(
		toast.WithDefaultDuration(cfg.ToastDuration),
		toast.WithSubscriber(func(ev toast.Event) {
			if ev.Phase == toast.PhaseEntering {
				fmt.Fprintf(cmd.ErrOrStderr(), "• %s\n", ev.Notice.Message)
			}
		}),
	)

	store := account.New(kv,
		account.WithLogger(logger),
		account.WithNotifier(queue),
	)
	store.Hydrate(cmd.Context())

	return &App{
		Config:  cfg,
		Store:   store,
		Catalog: catalog.MustLoad(),
		Toasts:  queue,
		closer:  closer,
	}, nil
}

// Close drains pending toast notices, stops the queue and releases the
// storage backend.
func (a *App) Close() error {
	a.drainToasts(5 * time.Second)
	a.Toasts.Close()
	if a.closer != nil {
		return a.closer()
	}
	return nil
}

// drainToasts waits until every enqueued notice has played out, bounded by
// the deadline. Notices run their full lifecycle; there is no skip.
func (a *App) drainToasts(limit time.Duration) {
	deadline := time.Now().Add(limit)
	for time.Now().Before(deadline) {
		if _, _, displaying := a.Toasts.Current(); !displaying && a.Toasts.Pending() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// openStorage selects the durable backend from configuration.
func openStorage(cfg *config.Config) (storage.Store, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case config.BackendMemory:
		return storage.NewMemStore(), nil, nil
	case config.BackendFile:
		return storage.NewFileStore(cfg.StoragePath), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
