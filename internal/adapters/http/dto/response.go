// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
)

// StageResponse represents one stage and its color.
type StageResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	Name   string `json:"name"`
	Start  string `json:"start"`
	Finish string `json:"finish"`
	Stage  string `json:"stage"`
	Color  string `json:"color"`
}

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	Name   string          `json:"name"`
	Tasks  []TaskResponse  `json:"tasks"`
	Stages []StageResponse `json:"stages"`
}

// ProjectListResponse lists project names alongside the current selection.
type ProjectListResponse struct {
	Projects []string `json:"projects"`
	Count    int      `json:"count"`
	Selected string   `json:"selected"`
}

// SessionResponse reports the selected project name, empty when none.
type SessionResponse struct {
	Selected string `json:"selected"`
}

// TimelineResponse is the chart projection of one project.
// Start and End are omitted when there are no rows.
type TimelineResponse struct {
	Project string          `json:"project"`
	Rows    []TaskResponse  `json:"rows"`
	Legend  []StageResponse `json:"legend"`
	Start   string          `json:"start,omitempty"`
	End     string          `json:"end,omitempty"`
	Empty   bool            `json:"empty"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *project.Task) TaskResponse {
	return TaskResponse{
		Name:   t.Name,
		Start:  t.Start.Format(project.DateLayout),
		Finish: t.Finish.Format(project.DateLayout),
		Stage:  t.Stage,
		Color:  t.Color,
	}
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	resp := ProjectResponse{
		Name:   p.Name,
		Tasks:  make([]TaskResponse, len(p.Tasks)),
		Stages: make([]StageResponse, len(p.Stages)),
	}
	for i := range p.Tasks {
		resp.Tasks[i] = ToTaskResponse(&p.Tasks[i])
	}
	for i, s := range p.Stages {
		resp.Stages[i] = StageResponse{Name: s.Name, Color: s.Color}
	}
	return resp
}

// ToProjectListResponse builds the list response from sorted names.
func ToProjectListResponse(names []string, selected string) ProjectListResponse {
	if names == nil {
		names = []string{}
	}
	return ProjectListResponse{
		Projects: names,
		Count:    len(names),
		Selected: selected,
	}
}

// ToTimelineResponse converts a chart to an HTTP response DTO.
func ToTimelineResponse(name string, c timeline.Chart) TimelineResponse {
	resp := TimelineResponse{
		Project: name,
		Rows:    make([]TaskResponse, len(c.Rows)),
		Legend:  make([]StageResponse, len(c.Legend)),
		Empty:   c.Empty(),
	}
	for i, r := range c.Rows {
		resp.Rows[i] = TaskResponse{
			Name:   r.Task,
			Start:  r.Start.Format(project.DateLayout),
			Finish: r.Finish.Format(project.DateLayout),
			Stage:  r.Stage,
			Color:  r.Color,
		}
	}
	for i, l := range c.Legend {
		resp.Legend[i] = StageResponse{Name: l.Stage, Color: l.Color}
	}
	if !c.Empty() {
		resp.Start = c.Start.Format(project.DateLayout)
		resp.End = c.End.Format(project.DateLayout)
	}
	return resp
}

// Health statuses reported by the probe endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of /health/live and /health/ready. Checks maps
// each store component to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse folds check results into a readiness response and reports
// whether every check passed.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !healthy {
		resp.Status = HealthNotReady
	}
	return resp, healthy
}
