package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
)

const msgDateFormat = "must be a date in YYYY-MM-DD format"

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// SelectProjectRequest represents the JSON body for changing the selection.
// An empty name clears it.
type SelectProjectRequest struct {
	Name string `json:"name"`
}

// Validate always succeeds; an empty name is a valid request.
func (r *SelectProjectRequest) Validate() error {
	return nil
}

// AddTaskRequest represents the JSON body for adding a task to the
// selected project.
type AddTaskRequest struct {
	Name   string `json:"name"`
	Stage  string `json:"stage"`
	Start  string `json:"start"`
	Finish string `json:"finish"`
}

// Validate checks date formats. Range and stage checks belong to the domain.
func (r *AddTaskRequest) Validate() error {
	fields := make(map[string]string)

	if _, err := project.ParseDate(r.Start); err != nil {
		fields["start"] = msgDateFormat
	}
	if _, err := project.ParseDate(r.Finish); err != nil {
		fields["finish"] = msgDateFormat
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Dates returns the parsed start and finish. Call after Validate.
func (r *AddTaskRequest) Dates() (start, finish time.Time) {
	start, _ = project.ParseDate(r.Start)
	finish, _ = project.ParseDate(r.Finish)
	return start, finish
}

// AddStageRequest represents the JSON body for adding or recoloring a stage.
type AddStageRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate defers to the domain stage rules.
func (r *AddStageRequest) Validate() error {
	return project.Stage{Name: r.Name, Color: r.Color}.Validate()
}
