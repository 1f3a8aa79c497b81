// Package handlers provides HTTP request handlers for the dashboard's JSON API.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

// DashboardHandler handles the JSON API for projects, the session
// selection, and task and stage operations on the selected project.
type DashboardHandler struct {
	svc ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given service port.
func NewDashboardHandler(svc ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects.
func (h *DashboardHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	names := h.svc.ListProjects(r.Context())
	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(names, h.svc.Selected(r.Context())))
}

// CreateProject handles POST /api/v1/projects. The new project becomes the
// selection.
func (h *DashboardHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.Name)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{name}.
func (h *DashboardHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r, "name")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), name)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(p))
}

// DeleteProject handles DELETE /api/v1/projects/{name}.
func (h *DashboardHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r, "name")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), name); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ProjectTimeline handles GET /api/v1/projects/{name}/timeline.
func (h *DashboardHandler) ProjectTimeline(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r, "name")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), name)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTimelineResponse(p.Name, timeline.Build(p)))
}

// GetSession handles GET /api/v1/session.
func (h *DashboardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.SessionResponse{Selected: h.svc.Selected(r.Context())})
}

// SelectProject handles PUT /api/v1/session. An empty name clears the selection.
func (h *DashboardHandler) SelectProject(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.SelectProject(r.Context(), req.Name); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SessionResponse{Selected: h.svc.Selected(r.Context())})
}

// DeleteCurrentProject handles DELETE /api/v1/session/project.
func (h *DashboardHandler) DeleteCurrentProject(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCurrentProject(r.Context()); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddTask handles POST /api/v1/tasks.
func (h *DashboardHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	start, finish := req.Dates()
	task, err := h.svc.AddTask(r.Context(), req.Name, req.Stage, start, finish)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(&task))
}

// AddStage handles POST /api/v1/stages. An existing stage is recolored.
func (h *DashboardHandler) AddStage(w http.ResponseWriter, r *http.Request) {
	var req dto.AddStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AddStage(r.Context(), req.Name, req.Color); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StageResponse{Name: req.Name, Color: req.Color})
}

// RemoveStage handles DELETE /api/v1/stages/{name}.
func (h *DashboardHandler) RemoveStage(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r, "name")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	if err := h.svc.RemoveStage(r.Context(), name); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Timeline handles GET /api/v1/timeline for the selected project.
func (h *DashboardHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	chart, err := h.svc.Timeline(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTimelineResponse(h.svc.Selected(r.Context()), chart))
}
