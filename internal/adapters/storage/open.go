// Package storage selects a project store implementation by driver name.
// The server and the ganttctl tool both open stores through it.
package storage

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage/file"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/config"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

// Open returns the store for cfg.Driver at cfg.Path. OnLoadError is the
// caller's concern and is ignored here.
func Open(ctx context.Context, cfg config.StoreConfig) (ports.ProjectStore, error) {
	switch cfg.Driver {
	case config.StoreDriverFile:
		return file.New(cfg.Path), nil
	case config.StoreDriverSQLite:
		return sqlite.Open(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store driver %q (want %s or %s)",
			cfg.Driver, config.StoreDriverFile, config.StoreDriverSQLite)
	}
}
