package ports

import (
	"context"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
)

// ProjectStore persists the whole project collection at once. There are no
// partial updates: every Save replaces everything that was stored before.
// Implemented by the storage adapters; called by the application layer.
type ProjectStore interface {
	HealthChecker

	// Load returns every persisted project keyed by name. An empty, non-nil
	// map is returned when nothing has been persisted yet.
	// Returns an error matching domain.ErrStorage when persisted data exists
	// but cannot be read or decoded.
	Load(ctx context.Context) (map[string]project.Project, error)

	// Save atomically replaces the persisted collection with projects.
	// Returns an error matching domain.ErrStorage on failure. Save never retries.
	Save(ctx context.Context, projects map[string]project.Project) error

	// Close releases any resources held by the store.
	Close() error
}
