package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
)

// DashboardService defines the service port for the single-session project
// dashboard. It owns the project collection and the currently selected
// project. Task and stage operations act on the selected project.
// Implemented by the application layer; called by inbound adapters (JSON
// handlers and the HTML UI).
type DashboardService interface {
	// ListProjects returns all project names, sorted.
	ListProjects(ctx context.Context) []string

	// GetProject returns a copy of the named project.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, name string) (*project.Project, error)

	// CreateProject creates a project with the default stages, persists the
	// collection, and selects the new project.
	// Returns domain.ErrDuplicateName if the name is taken.
	CreateProject(ctx context.Context, name string) (*project.Project, error)

	// DeleteProject removes the named project and persists. Clears the
	// selection if that project was selected. No-op if the name is absent.
	DeleteProject(ctx context.Context, name string) error

	// DeleteCurrentProject deletes the selected project. No-op without one.
	DeleteCurrentProject(ctx context.Context) error

	// SelectProject makes name the current project. An empty name clears
	// the selection. Returns domain.ErrNotFound if the project does not exist.
	SelectProject(ctx context.Context, name string) error

	// Selected returns the selected project name, or "" if none.
	Selected(ctx context.Context) string

	// CurrentProject returns a copy of the selected project.
	// Returns domain.ErrNoProjectSelected if nothing is selected.
	CurrentProject(ctx context.Context) (*project.Project, error)

	// AddTask appends a task to the selected project and persists.
	// Returns domain.ErrInvalidRange if finish is not after start, and
	// domain.ErrUnknownStage if the stage does not exist in the project.
	AddTask(ctx context.Context, name, stage string, start, finish time.Time) (project.Task, error)

	// AddStage inserts or overwrites a stage color in the selected project
	// and persists.
	AddStage(ctx context.Context, name, color string) error

	// RemoveStage is not supported. It always returns domain.ErrUnsupported.
	RemoveStage(ctx context.Context, name string) error

	// Timeline returns the chart projection of the selected project.
	Timeline(ctx context.Context) (timeline.Chart, error)
}
