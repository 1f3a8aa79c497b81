package middleware

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that gives each request a deadline. The handler
// runs in its own goroutine and writes into a buffer; the real response is
// sent once the handler returns. On deadline the client gets a 504 (an HTML
// page for the dashboard, problem details for the API) and any later handler
// write fails with http.ErrHandlerTimeout. A cancelled client gets nothing.
// A handler panic is re-raised on the serving goroutine for Recovery.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				buf.mu.Lock()
				defer buf.mu.Unlock()
				buf.copyTo(w)
			case <-ctx.Done():
				buf.mu.Lock()
				defer buf.mu.Unlock()
				buf.expired = true
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					writeFailure(w, r, http.StatusGatewayTimeout, "request timed out")
				}
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides who
// answers. status is 0 until the handler commits one.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.expired && b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// copyTo sends the buffered response. Caller holds mu.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
