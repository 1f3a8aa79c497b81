package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
)

// AddTask appends a task to the selected project and persists. The task's
// color is copied from the stage's current color.
func (r *ProjectRegistry) AddTask(
	ctx context.Context, name, stage string, start, finish time.Time,
) (project.Task, error) {
	r.logger.InfoContext(ctx, "adding task",
		slog.String("task", name),
		slog.String("stage", stage),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.currentLocked()
	if err != nil {
		return project.Task{}, err
	}

	p := cur.Clone()
	task, err := p.AddTask(name, stage, start, finish)
	if err != nil {
		return project.Task{}, err
	}

	next := r.snapshot()
	next[p.Name] = p
	if err := r.commit(ctx, "AddTask", next); err != nil {
		return project.Task{}, err
	}
	return task, nil
}

// AddStage inserts a stage or overwrites an existing stage's color in the
// selected project, then persists. Last write wins.
func (r *ProjectRegistry) AddStage(ctx context.Context, name, color string) error {
	r.logger.InfoContext(ctx, "adding stage",
		slog.String("stage", name),
		slog.String("color", color),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.currentLocked()
	if err != nil {
		return err
	}

	p := cur.Clone()
	if _, exists := p.Stages.Color(name); exists {
		r.logger.WarnContext(ctx, "overwriting stage color",
			slog.String("project", p.Name),
			slog.String("stage", name),
		)
	}
	if err := p.AddStage(name, color); err != nil {
		return err
	}

	next := r.snapshot()
	next[p.Name] = p
	return r.commit(ctx, "AddStage", next)
}

// RemoveStage always fails with ErrUnsupported. Tasks referencing a removed
// stage have no defined fate yet.
func (r *ProjectRegistry) RemoveStage(_ context.Context, name string) error {
	return fmt.Errorf("removing stage %q: %w", name, domain.ErrUnsupported)
}

// Timeline returns the chart projection of the selected project.
func (r *ProjectRegistry) Timeline(ctx context.Context) (timeline.Chart, error) {
	p, err := r.CurrentProject(ctx)
	if err != nil {
		return timeline.Chart{}, err
	}
	return timeline.Build(p), nil
}
