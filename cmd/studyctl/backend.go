package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/config"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/badgerkv"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/filekv"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/memkv"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/sqlitekv"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
)

// sqliteFile is the database file created under storage.path when it
// names a directory.
const sqliteFile = "state.db"

// openBackend opens the key/value store selected by cfg.
func openBackend(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (store.KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		if cfg.MaxBytes > 0 {
			return memkv.New(memkv.WithQuota(cfg.MaxBytes)), nil
		}
		return memkv.New(), nil

	case config.BackendFile:
		return filekv.Open(filekv.Config{
			Dir:           cfg.Path,
			SyncWrites:    cfg.SyncWrites,
			MaxValueBytes: cfg.MaxBytes,
		})

	case config.BackendBadger:
		bcfg := badgerkv.DefaultConfig(cfg.Path)
		bcfg.SyncWrites = cfg.SyncWrites
		bcfg.Logger = log
		return badgerkv.Open(bcfg)

	case config.BackendSQLite:
		path := cfg.Path
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, sqliteFile)
		}
		return sqlitekv.Open(ctx, sqlitekv.Config{
			Path:          path,
			MaxValueBytes: cfg.MaxBytes,
			Logger:        log,
		})

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
