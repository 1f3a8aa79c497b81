package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
)

const problemContentType = "application/problem+json"

// Problem is an RFC 9457 Problem Details body.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []FieldProblem `json:"errors,omitempty"`
}

// FieldProblem is one entry of Problem.Errors, e.g. location "body.start".
type FieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnsupported, http.StatusNotImplemented},
}

// StatusFor maps an error from the domain or app layer to an HTTP status.
// Storage failures and anything unrecognized are 500.
func StatusFor(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewProblem builds the problem body for err. Validation errors carry one
// FieldProblem per field, sorted by location.
func NewProblem(r *http.Request, err error) Problem {
	p := newProblem(r, StatusFor(err), err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			p.Errors = append(p.Errors, FieldProblem{Location: "body." + field, Message: msg})
		}
		slices.SortFunc(p.Errors, func(a, b FieldProblem) int {
			return strings.Compare(a.Location, b.Location)
		})
	}
	return p
}

// WriteError writes the problem response for err.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewProblem(r, err))
}

// WriteProblem writes a problem with an explicit status, for failures raised
// by the transport rather than the domain (panics, deadlines).
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, newProblem(r, status, detail))
}

func newProblem(r *http.Request, status int, detail string) Problem {
	return Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode problem response",
			slog.Any("error", err),
		)
	}
}
