package record

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
)

// ToDomain converts a persisted collection to domain projects.
// Returns an error naming the project and task when a date does not parse.
func ToDomain(c Collection) (map[string]project.Project, error) {
	out := make(map[string]project.Project, len(c))
	for name, rec := range c {
		p, err := toDomainProject(name, rec)
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}

func toDomainProject(name string, rec Project) (project.Project, error) {
	p := project.Project{
		Name:   name,
		Tasks:  make([]project.Task, 0, len(rec.Tasks)),
		Stages: make(project.Stages, 0, len(rec.Stages)),
	}

	for i, t := range rec.Tasks {
		start, err := project.ParseDate(t.Start)
		if err != nil {
			return project.Project{}, fmt.Errorf("project %q task %d: start: %w", name, i, err)
		}
		finish, err := project.ParseDate(t.Finish)
		if err != nil {
			return project.Project{}, fmt.Errorf("project %q task %d: finish: %w", name, i, err)
		}
		p.Tasks = append(p.Tasks, project.Task{
			Name:   t.Task,
			Start:  start,
			Finish: finish,
			Stage:  t.Stage,
			Color:  t.Color,
		})
	}

	for _, s := range rec.Stages {
		p.Stages = append(p.Stages, project.Stage{Name: s.Name, Color: s.Color})
	}

	return p, nil
}

// FromDomain converts domain projects to their persisted form.
func FromDomain(projects map[string]project.Project) Collection {
	c := make(Collection, len(projects))
	for _, name := range slices.Sorted(maps.Keys(projects)) {
		p := projects[name]
		rec := Project{
			Tasks:  make([]Task, len(p.Tasks)),
			Stages: make(StageMap, len(p.Stages)),
		}
		for i, t := range p.Tasks {
			rec.Tasks[i] = Task{
				Task:   t.Name,
				Start:  t.Start.Format(project.DateLayout),
				Finish: t.Finish.Format(project.DateLayout),
				Stage:  t.Stage,
				Color:  t.Color,
			}
		}
		for i, s := range p.Stages {
			rec.Stages[i] = StageEntry{Name: s.Name, Color: s.Color}
		}
		c[name] = rec
	}
	return c
}
