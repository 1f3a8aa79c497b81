// Package web serves the server-rendered dashboard: a sidebar to create,
// load and delete projects, forms to add tasks and stages to the selected
// project, and the project's Gantt chart.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// Messages shown inline on the dashboard.
const (
	MsgNoSelection   = "Please create or load a project from the sidebar"
	MsgNoTasks       = "No tasks added yet. Add tasks using the left panel."
	MsgEnterName     = "Please enter a project name"
	MsgDuplicateName = "Project name already exists!"
	MsgInvalidRange  = "End date must be after start date"
	MsgDateFormat    = "Dates must be in YYYY-MM-DD format"
)

const maxFormBytes = 64 << 10

// Handler renders the dashboard and handles its form posts. Every post
// redirects back to the dashboard with a notice or error query parameter.
type Handler struct {
	svc   ports.DashboardService
	title string
	tmpl  *template.Template
	now   func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock overrides the clock used for default form dates.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

// NewHandler parses the embedded templates and returns a Handler.
func NewHandler(svc ports.DashboardService, title string, opts ...Option) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	h := &Handler{svc: svc, title: title, tmpl: tmpl, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

type page struct {
	Title    string
	Notice   string
	Error    string
	Projects []string
	Selected string
	Project  *projectView

	MsgNoSelection string
	MsgNoTasks     string
}

type projectView struct {
	Name          string
	Stages        []project.Stage
	Tasks         []taskRow
	Chart         chartView
	DefaultStart  string
	DefaultFinish string
}

type taskRow struct {
	Name   string
	Start  string
	Finish string
	Stage  string
	Color  string
}

// Dashboard handles GET /.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	p := page{
		Title:          h.title,
		Notice:         q.Get("notice"),
		Error:          q.Get("error"),
		Projects:       h.svc.ListProjects(ctx),
		Selected:       h.svc.Selected(ctx),
		MsgNoSelection: MsgNoSelection,
		MsgNoTasks:     MsgNoTasks,
	}

	if p.Selected != "" {
		current, err := h.svc.CurrentProject(ctx)
		if err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "selected project unavailable",
				slog.String("project", p.Selected),
				slog.Any("error", err),
			)
			p.Selected = ""
		} else {
			p.Project = h.viewProject(current)
		}
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "dashboard.html", p); err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "rendering dashboard", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) viewProject(p *project.Project) *projectView {
	today := project.Day(h.now())
	v := &projectView{
		Name:          p.Name,
		Stages:        p.Stages,
		Tasks:         make([]taskRow, len(p.Tasks)),
		Chart:         layoutChart(timeline.Build(p)),
		DefaultStart:  today.Format(project.DateLayout),
		DefaultFinish: today.AddDate(0, 0, 1).Format(project.DateLayout),
	}
	for i, t := range p.Tasks {
		v.Tasks[i] = taskRow{
			Name:   t.Name,
			Start:  t.Start.Format(project.DateLayout),
			Finish: t.Finish.Format(project.DateLayout),
			Stage:  t.Stage,
			Color:  t.Color,
		}
	}
	return v
}

// CreateProject handles POST /ui/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	name := r.PostFormValue("name")

	created, err := h.svc.CreateProject(r.Context(), name)
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		h.fail(w, r, "create_project", MsgDuplicateName, err)
	case errors.Is(err, domain.ErrValidation):
		h.fail(w, r, "create_project", MsgEnterName, err)
	case err != nil:
		h.fail(w, r, "create_project", err.Error(), err)
	default:
		redirect(w, r, "notice", "Created project "+created.Name)
	}
}

// SelectProject handles POST /ui/select. An empty name clears the selection.
func (h *Handler) SelectProject(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	name := r.PostFormValue("name")

	if err := h.svc.SelectProject(r.Context(), name); err != nil {
		h.fail(w, r, "select_project", err.Error(), err)
		return
	}
	if name == "" {
		redirect(w, r, "", "")
		return
	}
	redirect(w, r, "notice", "Loaded project "+name)
}

// DeleteProject handles POST /ui/delete and removes the selected project.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	name := h.svc.Selected(r.Context())
	if err := h.svc.DeleteCurrentProject(r.Context()); err != nil {
		h.fail(w, r, "delete_project", err.Error(), err)
		return
	}
	if name == "" {
		redirect(w, r, "", "")
		return
	}
	redirect(w, r, "notice", "Deleted project "+name)
}

// AddTask handles POST /ui/tasks.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	name := r.PostFormValue("name")

	start, err := project.ParseDate(r.PostFormValue("start"))
	if err != nil {
		h.fail(w, r, "add_task", MsgDateFormat, err)
		return
	}
	finish, err := project.ParseDate(r.PostFormValue("finish"))
	if err != nil {
		h.fail(w, r, "add_task", MsgDateFormat, err)
		return
	}

	if _, err := h.svc.AddTask(r.Context(), name, r.PostFormValue("stage"), start, finish); err != nil {
		msg := err.Error()
		if errors.Is(err, domain.ErrInvalidRange) {
			msg = MsgInvalidRange
		}
		h.fail(w, r, "add_task", msg, err)
		return
	}
	redirect(w, r, "notice", "Added task "+name)
}

// AddStage handles POST /ui/stages.
func (h *Handler) AddStage(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	name := r.PostFormValue("name")

	if err := h.svc.AddStage(r.Context(), name, r.PostFormValue("color")); err != nil {
		h.fail(w, r, "add_stage", err.Error(), err)
		return
	}
	redirect(w, r, "notice", "Saved stage "+name)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelWarn
	if errors.Is(err, domain.ErrStorage) {
		level = slog.LevelError
	}
	logging.FromContext(ctx).Log(ctx, level, "dashboard action failed",
		slog.String("operation", op),
		slog.Any("error", err),
	)
	redirect(w, r, "error", msg)
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		redirect(w, r, "error", "Could not read form")
		return false
	}
	return true
}

func redirect(w http.ResponseWriter, r *http.Request, key, msg string) {
	target := "/"
	if key != "" {
		target += "?" + url.Values{key: {msg}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
