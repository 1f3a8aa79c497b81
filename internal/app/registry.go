// Package app provides the application service that owns the dashboard's
// state: the project collection, the current selection, and the rule that
// every mutation is persisted before it becomes visible.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

// Compile-time check that ProjectRegistry implements ports.DashboardService.
var _ ports.DashboardService = (*ProjectRegistry)(nil)

// LoadPolicy decides what happens when the store holds unreadable data at startup.
type LoadPolicy string

const (
	// LoadFail aborts startup.
	LoadFail LoadPolicy = "fail"
	// LoadEmpty logs the failure and starts with an empty collection. The
	// broken data is overwritten by the next mutation.
	LoadEmpty LoadPolicy = "empty"
)

// ProjectRegistry is the single application-state object of the dashboard.
// It holds the in-memory project collection and the selected project name.
//
// Actions are serialized: each one validates, mutates a copy of the
// collection, saves that copy, and only then swaps it in. A failed save
// therefore leaves the registry exactly as it was, matching what is on disk.
type ProjectRegistry struct {
	mu       sync.Mutex
	projects map[string]project.Project
	selected string

	store   ports.ProjectStore
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewProjectRegistry loads the collection from store and returns a registry
// with no project selected. With LoadEmpty, a store failure is logged and the
// registry starts empty; with LoadFail (or any other policy) it is returned.
// The logger and metrics may be nil.
func NewProjectRegistry(
	ctx context.Context,
	store ports.ProjectStore,
	policy LoadPolicy,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) (*ProjectRegistry, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	projects, err := store.Load(ctx)
	if err != nil {
		if policy != LoadEmpty {
			return nil, fmt.Errorf("loading projects: %w", err)
		}
		logger.WarnContext(ctx, "starting with empty project collection",
			slog.String("operation", "NewProjectRegistry"),
			slog.String("store", store.Name()),
			slog.Any("error", err),
		)
		projects = nil
	}
	if projects == nil {
		projects = make(map[string]project.Project)
	}

	logger.InfoContext(ctx, "project registry loaded",
		slog.String("store", store.Name()),
		slog.Int("projects", len(projects)),
	)

	return &ProjectRegistry{
		projects: projects,
		store:    store,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// ListProjects returns all project names, sorted.
func (r *ProjectRegistry) ListProjects(_ context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Sorted(maps.Keys(r.projects))
}

// GetProject returns a copy of the named project.
func (r *ProjectRegistry) GetProject(_ context.Context, name string) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[name]
	if !ok {
		return nil, fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
	}
	c := p.Clone()
	return &c, nil
}

// CreateProject creates a project with the default stages, persists, and
// selects it.
func (r *ProjectRegistry) CreateProject(ctx context.Context, name string) (*project.Project, error) {
	r.logger.InfoContext(ctx, "creating project", slog.String("project", name))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[name]; exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateName, name)
	}

	p, err := project.New(name)
	if err != nil {
		return nil, err
	}

	next := r.snapshot()
	next[name] = *p
	if err := r.commit(ctx, "CreateProject", next); err != nil {
		return nil, err
	}

	r.selected = name
	c := p.Clone()
	return &c, nil
}

// DeleteProject removes the named project and persists. Deleting an absent
// project is a no-op and does not touch the store.
func (r *ProjectRegistry) DeleteProject(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.deleteLocked(ctx, name)
}

// DeleteCurrentProject deletes the selected project, if any.
func (r *ProjectRegistry) DeleteCurrentProject(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.selected == "" {
		return nil
	}
	return r.deleteLocked(ctx, r.selected)
}

func (r *ProjectRegistry) deleteLocked(ctx context.Context, name string) error {
	if _, exists := r.projects[name]; !exists {
		return nil
	}

	r.logger.InfoContext(ctx, "deleting project", slog.String("project", name))

	next := r.snapshot()
	delete(next, name)
	if err := r.commit(ctx, "DeleteProject", next); err != nil {
		return err
	}

	if r.selected == name {
		r.selected = ""
	}
	return nil
}

// SelectProject sets the current project. An empty name clears the selection.
func (r *ProjectRegistry) SelectProject(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		r.selected = ""
		return nil
	}
	if _, ok := r.projects[name]; !ok {
		return fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
	}
	r.selected = name
	return nil
}

// Selected returns the selected project name, or "" if none.
func (r *ProjectRegistry) Selected(_ context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.selected
}

// CurrentProject returns a copy of the selected project.
func (r *ProjectRegistry) CurrentProject(_ context.Context) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.currentLocked()
	if err != nil {
		return nil, err
	}
	c := p.Clone()
	return &c, nil
}

func (r *ProjectRegistry) currentLocked() (project.Project, error) {
	if r.selected == "" {
		return project.Project{}, domain.ErrNoProjectSelected
	}
	p, ok := r.projects[r.selected]
	if !ok {
		return project.Project{}, fmt.Errorf("project %q: %w", r.selected, domain.ErrNotFound)
	}
	return p, nil
}

// snapshot returns a copy of the collection that can be mutated freely.
// Projects are copied by value; callers replace entries with clones rather
// than mutating shared slices.
func (r *ProjectRegistry) snapshot() map[string]project.Project {
	return maps.Clone(r.projects)
}

// commit saves next and, on success, makes it the live collection.
// Must be called with r.mu held.
func (r *ProjectRegistry) commit(ctx context.Context, op string, next map[string]project.Project) error {
	start := time.Now()
	err := r.store.Save(ctx, next)
	r.recordMutation(ctx, op, start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "failed to persist projects",
			slog.String("operation", op),
			slog.String("store", r.store.Name()),
			slog.Any("error", err),
		)
		if !errors.Is(err, domain.ErrStorage) {
			err = &domain.StorageError{Op: "save", Err: err}
		}
		return err
	}

	r.projects = next
	return nil
}

// recordMutation records the mutation counter and save latency. Nil-safe.
func (r *ProjectRegistry) recordMutation(ctx context.Context, op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	r.metrics.MutationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
	r.metrics.StoreSaveDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrStore.String(r.store.Name()),
		telemetry.AttrResult.String(result),
	))
}
