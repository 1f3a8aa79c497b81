package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
)

// --- AddTask ---

func TestProjectRegistry_AddTask(t *testing.T) {
	t.Parallel()

	t.Run("Solar Roof scenario", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
		mustCreate(t, r, "Solar Roof")

		task, err := r.AddTask(context.Background(), "Survey", "Planning", day(2024, 1, 1), day(2024, 1, 10))
		require.NoError(t, err)
		if task.Color != "#FF6B6B" {
			t.Errorf("task.Color = %q, want #FF6B6B", task.Color)
		}

		p, err := r.CurrentProject(context.Background())
		require.NoError(t, err)
		if len(p.Tasks) != 1 {
			t.Fatalf("len(Tasks) = %d, want 1", len(p.Tasks))
		}
		if p.Tasks[0].Color != "#FF6B6B" {
			t.Errorf("Tasks[0].Color = %q, want #FF6B6B", p.Tasks[0].Color)
		}
	})

	t.Run("persists the appended task", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		mustCreate(t, r, "Solar Roof")

		var saved map[string]project.Project
		store.EXPECT().Save(mock.Anything, mock.Anything).
			Run(func(_ context.Context, projects map[string]project.Project) { saved = projects }).
			Return(nil).Once()

		_, err := r.AddTask(context.Background(), "Survey", "Planning", day(2024, 1, 1), day(2024, 1, 10))
		require.NoError(t, err)
		if got := saved["Solar Roof"].Tasks; len(got) != 1 || got[0].Name != "Survey" {
			t.Errorf("saved tasks = %+v, want [Survey]", got)
		}
	})

	t.Run("invalid range never mutates or saves", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		mustCreate(t, r, "Solar Roof")

		_, err := r.AddTask(context.Background(), "Bad", "Planning", day(2024, 2, 1), day(2024, 1, 1))
		if !errors.Is(err, domain.ErrInvalidRange) {
			t.Fatalf("AddTask() error = %v, want ErrInvalidRange", err)
		}

		p, err := r.CurrentProject(context.Background())
		require.NoError(t, err)
		if len(p.Tasks) != 0 {
			t.Errorf("len(Tasks) = %d, want 0", len(p.Tasks))
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		mustCreate(t, r, "Solar Roof")

		_, err := r.AddTask(context.Background(), "Ghost", "Nope", day(2024, 1, 1), day(2024, 1, 2))
		if !errors.Is(err, domain.ErrUnknownStage) {
			t.Errorf("AddTask() error = %v, want ErrUnknownStage", err)
		}
	})

	t.Run("requires a selection", func(t *testing.T) {
		t.Parallel()
		r, _ := newRegistry(t)

		_, err := r.AddTask(context.Background(), "Survey", "Planning", day(2024, 1, 1), day(2024, 1, 10))
		if !errors.Is(err, domain.ErrNoProjectSelected) {
			t.Errorf("AddTask() error = %v, want ErrNoProjectSelected", err)
		}
	})

	t.Run("failed save leaves task list unchanged", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(errDiskFull).Once()
		mustCreate(t, r, "Solar Roof")

		_, err := r.AddTask(context.Background(), "Survey", "Planning", day(2024, 1, 1), day(2024, 1, 10))
		if !errors.Is(err, domain.ErrStorage) {
			t.Fatalf("AddTask() error = %v, want ErrStorage", err)
		}

		p, err := r.CurrentProject(context.Background())
		require.NoError(t, err)
		if len(p.Tasks) != 0 {
			t.Errorf("len(Tasks) = %d, want 0", len(p.Tasks))
		}
	})
}

// --- AddStage ---

func TestProjectRegistry_AddStage(t *testing.T) {
	t.Parallel()

	t.Run("Review scenario", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(3)
		mustCreate(t, r, "Solar Roof")

		require.NoError(t, r.AddStage(context.Background(), "Review", "#123456"))
		task, err := r.AddTask(context.Background(), "Check", "Review", day(2024, 3, 1), day(2024, 3, 2))
		require.NoError(t, err)
		if task.Color != "#123456" {
			t.Errorf("task.Color = %q, want #123456", task.Color)
		}
	})

	t.Run("overwrite is last write wins", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(3)
		mustCreate(t, r, "Solar Roof")

		require.NoError(t, r.AddStage(context.Background(), "Testing", "#111111"))
		require.NoError(t, r.AddStage(context.Background(), "Testing", "#222222"))

		p, err := r.CurrentProject(context.Background())
		require.NoError(t, err)
		if color, _ := p.Stages.Color("Testing"); color != "#222222" {
			t.Errorf("Testing color = %q, want #222222", color)
		}
		if len(p.Stages) != 4 {
			t.Errorf("len(Stages) = %d, want 4", len(p.Stages))
		}
	})

	t.Run("invalid color is rejected without save", func(t *testing.T) {
		t.Parallel()
		r, store := newRegistry(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		mustCreate(t, r, "Solar Roof")

		err := r.AddStage(context.Background(), "Review", "blue")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("AddStage() error = %v, want ErrValidation", err)
		}
	})

	t.Run("requires a selection", func(t *testing.T) {
		t.Parallel()
		r, _ := newRegistry(t)

		err := r.AddStage(context.Background(), "Review", "#123456")
		if !errors.Is(err, domain.ErrNoProjectSelected) {
			t.Errorf("AddStage() error = %v, want ErrNoProjectSelected", err)
		}
	})
}

func TestProjectRegistry_RemoveStageUnsupported(t *testing.T) {
	t.Parallel()

	r, store := newRegistry(t)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	mustCreate(t, r, "Solar Roof")

	err := r.RemoveStage(context.Background(), "Planning")
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Fatalf("RemoveStage() error = %v, want ErrUnsupported", err)
	}

	p, err := r.CurrentProject(context.Background())
	require.NoError(t, err)
	if _, ok := p.Stages.Color("Planning"); !ok {
		t.Error("Planning stage removed, want it kept")
	}
}

func TestProjectRegistry_Timeline(t *testing.T) {
	t.Parallel()

	r, store := newRegistry(t)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)

	if _, err := r.Timeline(context.Background()); !errors.Is(err, domain.ErrNoProjectSelected) {
		t.Errorf("Timeline() without selection error = %v, want ErrNoProjectSelected", err)
	}

	mustCreate(t, r, "Solar Roof")
	chart, err := r.Timeline(context.Background())
	require.NoError(t, err)
	if !chart.Empty() {
		t.Errorf("Timeline().Empty() = false, want true for new project")
	}

	_, err = r.AddTask(context.Background(), "Survey", "Planning", day(2024, 1, 1), day(2024, 1, 10))
	require.NoError(t, err)

	chart, err = r.Timeline(context.Background())
	require.NoError(t, err)
	if len(chart.Rows) != 1 || chart.Rows[0].Task != "Survey" {
		t.Errorf("Timeline().Rows = %+v, want [Survey]", chart.Rows)
	}
}
