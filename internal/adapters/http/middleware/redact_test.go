package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Authorization":   {"Bearer secret-token"},
		"Cookie":          {"session=abc123"},
		"X-Api-Key":       {"my-api-key-value"},
		"Content-Type":    {"application/x-www-form-urlencoded"},
		"Accept-Encoding": {"gzip", "deflate"},
	}

	attrs := middleware.RedactHeaders(headers)

	want := []struct{ key, value string }{
		{"Accept-Encoding", "gzip,deflate"},
		{"Authorization", "[REDACTED]"},
		{"Content-Type", "application/x-www-form-urlencoded"},
		{"Cookie", "[REDACTED]"},
		{"X-Api-Key", "[REDACTED]"},
	}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, w := range want {
		if attrs[i].Key != w.key || attrs[i].Value.String() != w.value {
			t.Errorf("attrs[%d] = %s=%q, want %s=%q", i, attrs[i].Key, attrs[i].Value.String(), w.key, w.value)
		}
	}
}

func TestRedactHeaders_EmptyHeaders(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}
