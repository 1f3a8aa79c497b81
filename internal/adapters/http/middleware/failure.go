package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/dto"
)

const failurePage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>%d %s</title></head>
<body><p>%[2]s.</p><p><a href="/">Back to the dashboard</a></p></body></html>
`

// wantsHTML reports whether a failure should be rendered as a page. API and
// health routes always get problem details.
func wantsHTML(r *http.Request) bool {
	p := r.URL.Path
	if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/health/") {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// writeFailure writes a transport-level failure in the form the caller can
// read: a short HTML page for browsers on the dashboard, RFC 9457 otherwise.
func writeFailure(w http.ResponseWriter, r *http.Request, status int, detail string) {
	if !wantsHTML(r) {
		dto.WriteProblem(w, r, status, detail)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, failurePage, status, http.StatusText(status))
}
