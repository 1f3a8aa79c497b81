package project_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := project.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error: %v", s, err)
	}
	return d
}

func newProject(t *testing.T, name string) *project.Project {
	t.Helper()
	p, err := project.New(name)
	if err != nil {
		t.Fatalf("New(%q) error: %v", name, err)
	}
	return p
}

func TestNew_DefaultStages(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Solar Roof")

	want := []project.Stage{
		{Name: "Planning", Color: "#FF6B6B"},
		{Name: "Development", Color: "#4ECDC4"},
		{Name: "Testing", Color: "#45B7D1"},
		{Name: "Deployment", Color: "#96CEB4"},
	}
	if len(p.Stages) != len(want) {
		t.Fatalf("len(Stages) = %d, want %d", len(p.Stages), len(want))
	}
	for i, st := range want {
		if p.Stages[i] != st {
			t.Errorf("Stages[%d] = %+v, want %+v", i, p.Stages[i], st)
		}
	}
	if len(p.Tasks) != 0 {
		t.Errorf("len(Tasks) = %d, want 0", len(p.Tasks))
	}
}

func TestNew_BlankName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   "} {
		_, err := project.New(name)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("New(%q) error = %v, want ErrValidation", name, err)
		}
	}
}

func TestAddTask(t *testing.T) {
	t.Parallel()

	t.Run("copies stage color", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Solar Roof")

		task, err := p.AddTask("Survey", "Planning", date(t, "2024-01-01"), date(t, "2024-01-10"))
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task.Color != "#FF6B6B" {
			t.Errorf("Color = %q, want %q", task.Color, "#FF6B6B")
		}
		if len(p.Tasks) != 1 || p.Tasks[0] != task {
			t.Errorf("Tasks = %+v, want exactly the returned task", p.Tasks)
		}
	})

	t.Run("rejects inverted and empty ranges", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Solar Roof")

		cases := []struct{ start, finish string }{
			{"2024-02-01", "2024-01-01"},
			{"2024-01-01", "2024-01-01"},
		}
		for _, tc := range cases {
			_, err := p.AddTask("Bad", "Planning", date(t, tc.start), date(t, tc.finish))
			if !errors.Is(err, domain.ErrInvalidRange) {
				t.Errorf("AddTask(%s..%s) error = %v, want ErrInvalidRange", tc.start, tc.finish, err)
			}
		}
		if len(p.Tasks) != 0 {
			t.Errorf("len(Tasks) = %d, want 0", len(p.Tasks))
		}
	})

	t.Run("same day with later clock time is still empty", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Solar Roof")

		start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		finish := time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)
		if _, err := p.AddTask("Bad", "Planning", start, finish); !errors.Is(err, domain.ErrInvalidRange) {
			t.Errorf("AddTask() error = %v, want ErrInvalidRange", err)
		}
	})

	t.Run("rejects unknown stage", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Solar Roof")

		_, err := p.AddTask("Ghost", "Nope", date(t, "2024-01-01"), date(t, "2024-01-02"))
		if !errors.Is(err, domain.ErrUnknownStage) {
			t.Errorf("AddTask() error = %v, want ErrUnknownStage", err)
		}
		if len(p.Tasks) != 0 {
			t.Errorf("len(Tasks) = %d, want 0", len(p.Tasks))
		}
	})
}

func TestAddStage(t *testing.T) {
	t.Parallel()

	t.Run("new stage is usable by tasks", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Solar Roof")

		if err := p.AddStage("Review", "#123456"); err != nil {
			t.Fatalf("AddStage() error = %v", err)
		}
		task, err := p.AddTask("Check", "Review", date(t, "2024-03-01"), date(t, "2024-03-05"))
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task.Color != "#123456" {
			t.Errorf("Color = %q, want %q", task.Color, "#123456")
		}
		if got := p.Stages.Names(); got[len(got)-1] != "Review" {
			t.Errorf("last stage = %q, want Review", got[len(got)-1])
		}
	})

	t.Run("overwrite keeps position and task snapshots", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Solar Roof")

		if _, err := p.AddTask("Survey", "Planning", date(t, "2024-01-01"), date(t, "2024-01-10")); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if err := p.AddStage("Planning", "#000000"); err != nil {
			t.Fatalf("AddStage() error = %v", err)
		}

		if p.Stages[0].Name != "Planning" || p.Stages[0].Color != "#000000" {
			t.Errorf("Stages[0] = %+v, want Planning/#000000", p.Stages[0])
		}
		if len(p.Stages) != 4 {
			t.Errorf("len(Stages) = %d, want 4", len(p.Stages))
		}
		if p.Tasks[0].Color != "#FF6B6B" {
			t.Errorf("task color = %q, want snapshot #FF6B6B", p.Tasks[0].Color)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		p := newProject(t, "Solar Roof")

		cases := []struct{ name, color string }{
			{"", "#123456"},
			{"Review", "red"},
			{"Review", "#12345"},
		}
		for _, tc := range cases {
			if err := p.AddStage(tc.name, tc.color); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("AddStage(%q, %q) error = %v, want ErrValidation", tc.name, tc.color, err)
			}
		}
		if len(p.Stages) != 4 {
			t.Errorf("len(Stages) = %d, want 4", len(p.Stages))
		}
	})
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	p := newProject(t, "Solar Roof")
	c := p.Clone()

	if _, err := c.AddTask("Survey", "Planning", date(t, "2024-01-01"), date(t, "2024-01-10")); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if err := c.AddStage("Planning", "#000000"); err != nil {
		t.Fatalf("AddStage() error = %v", err)
	}

	if len(p.Tasks) != 0 {
		t.Errorf("original Tasks mutated: %+v", p.Tasks)
	}
	if p.Stages[0].Color != "#FF6B6B" {
		t.Errorf("original stage color mutated: %q", p.Stages[0].Color)
	}
}
