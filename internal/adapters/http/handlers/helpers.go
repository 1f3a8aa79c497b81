package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MB.
const maxJSONBodyBytes = 1 << 20

// pathName returns the decoded {param} segment. Project and stage names may
// contain spaces and other characters that arrive percent-encoded.
func pathName(r *http.Request, param string) (string, error) {
	name := chi.URLParam(r, param)
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return "", &domain.ValidationError{Fields: map[string]string{param: "must be a valid path segment"}}
		}
		name = decoded
	}
	if strings.TrimSpace(name) == "" {
		return "", &domain.ValidationError{Fields: map[string]string{param: domain.MsgRequired}}
	}
	return name, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("route", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate reads a JSON body into dst and runs its Validate. On
// failure the problem response has already been written and it returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteError(w, r, &domain.ValidationError{Fields: map[string]string{"body": "invalid JSON"}})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteError(w, r, err)
		return false
	}
	return true
}
