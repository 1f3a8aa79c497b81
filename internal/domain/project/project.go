// Package project defines the Project aggregate: a named container of tasks
// and stage definitions, plus the rules for appending to it.
package project

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
)

// Project is a named container of tasks and stage definitions.
// Tasks are kept in insertion order, which is also display order.
type Project struct {
	Name   string
	Tasks  []Task
	Stages Stages
}

// New returns a project with the default stages and no tasks.
// Returns a *domain.ValidationError if the name is blank.
func New(name string) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return &Project{
		Name:   name,
		Tasks:  []Task{},
		Stages: DefaultStages(),
	}, nil
}

// AddTask appends a task whose color is copied from the referenced stage.
// The project is left untouched when the range is empty or inverted
// (domain.ErrInvalidRange) or the stage does not exist (domain.ErrUnknownStage).
func (p *Project) AddTask(name, stage string, start, finish time.Time) (Task, error) {
	start, finish = Day(start), Day(finish)
	if !finish.After(start) {
		return Task{}, domain.ErrInvalidRange
	}

	color, ok := p.Stages.Color(stage)
	if !ok {
		return Task{}, fmt.Errorf("%w: %q", domain.ErrUnknownStage, stage)
	}

	t := Task{
		Name:   name,
		Start:  start,
		Finish: finish,
		Stage:  stage,
		Color:  color,
	}
	p.Tasks = append(p.Tasks, t)
	return t, nil
}

// AddStage inserts a stage or overwrites the color of an existing one.
// Existing tasks keep their snapshotted colors.
func (p *Project) AddStage(name, color string) error {
	s := Stage{Name: name, Color: color}
	if err := s.Validate(); err != nil {
		return err
	}
	p.Stages = p.Stages.Set(s)
	return nil
}

// Clone returns a deep copy so that callers can mutate it without affecting p.
func (p *Project) Clone() Project {
	return Project{
		Name:   p.Name,
		Tasks:  slices.Clone(p.Tasks),
		Stages: slices.Clone(p.Stages),
	}
}
