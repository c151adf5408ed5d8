package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/config"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain/srs"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/metrics"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/notify"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/logger"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/service/review"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the final flush when a command ends.
const shutdownTimeout = 10 * time.Second

// application holds the shared dependencies of a command and ensures
// they are released in order.
type application struct {
	config *config.Config
	key    string
	logger *slog.Logger
	clock  func() time.Time

	kv store.KeyValueStore

	// Set by openStore.
	store   *store.AppStore
	bridge  *notify.Bridge
	metrics *metrics.Recorder
	reviews *review.Service
}

// newApplication loads configuration, sets up logging on logOut and opens
// the storage backend. The state store is opened separately so commands
// that only touch the raw blob do not rehydrate it.
func newApplication(ctx context.Context, opts *globalOptions, logOut io.Writer) (*application, error) {
	cfg, err := config.Load(config.Options{ConfigFile: opts.configFile, DotEnvFile: opts.envFile})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.SetupWithWriter(cfg.Log, logOut)

	clock, err := newClock(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	key := cfg.Storage.Key
	if opts.key != "" {
		key = opts.key
	}

	kv, err := openBackend(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}

	log.Debug("configuration loaded",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("path", cfg.Storage.Path),
		slog.String("key", key))

	return &application{
		config: cfg,
		key:    key,
		logger: log,
		clock:  clock,
		kv:     kv,
	}, nil
}

// openStore rehydrates the application state and wires the review
// service and notifications around it.
func (app *application) openStore(ctx context.Context) error {
	app.bridge = notify.NewBridge()
	app.bridge.SetDispatcher(notify.LogSink(app.logger))
	app.metrics = metrics.NewRecorder()

	deps := state.Deps{Clock: app.clock, Notifier: app.bridge}
	st, err := store.NewAppStore(ctx, app.key, app.kv, deps, store.Options{
		Logger:   app.logger,
		Observer: app.metrics,
	})
	if err != nil {
		return err
	}

	app.store = st
	app.reviews = review.NewService(st, srs.NewScheduler(srs.NewParams(app.config.SRS)), app.clock, app.logger)
	return nil
}

// close flushes the store and closes the backend.
func (app *application) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if app.store != nil {
		errs = append(errs, app.store.Close(ctx))
	}
	if app.bridge != nil {
		app.bridge.SetDispatcher(nil)
	}
	errs = append(errs, app.kv.Close())
	return errors.Join(errs...)
}

// newClock returns a clock in the configured zone, which decides where
// calendar days start for streaks.
func newClock(timezone string) (func() time.Time, error) {
	if timezone == "" {
		return time.Now, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}

// withBackend runs fn with the backend open but the state not loaded.
func withBackend(cmd *cobra.Command, opts *globalOptions, fn func(ctx context.Context, app *application) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := newApplication(ctx, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(ctx, app)
}

// withStore runs fn with the state loaded. Pending writes are flushed
// before it returns.
func withStore(cmd *cobra.Command, opts *globalOptions, fn func(ctx context.Context, app *application) error) error {
	return withBackend(cmd, opts, func(ctx context.Context, app *application) error {
		if err := app.openStore(ctx); err != nil {
			return err
		}
		return fn(ctx, app)
	})
}
