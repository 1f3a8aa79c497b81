package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		serve         func(w http.ResponseWriter)
		wantStatus    int
		wantCommitted bool
		wantBytes     int64
	}{
		{
			name:       "nothing written",
			serve:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:          "form redirect",
			serve:         func(w http.ResponseWriter) { w.WriteHeader(http.StatusSeeOther) },
			wantStatus:    http.StatusSeeOther,
			wantCommitted: true,
		},
		{
			name: "first status wins",
			serve: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:    http.StatusCreated,
			wantCommitted: true,
		},
		{
			name: "body without header counts bytes",
			serve: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("Project: "))
				_, _ = w.Write([]byte("Solar Roof"))
			},
			wantStatus:    http.StatusOK,
			wantCommitted: true,
			wantBytes:     19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := recordStatus(rec)
			tt.serve(sr)

			assert.Equal(t, tt.wantStatus, sr.status)
			assert.Equal(t, tt.wantCommitted, sr.committed)
			assert.Equal(t, tt.wantBytes, sr.bytes)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := recordStatus(rec)

	assert.Same(t, rec, sr.Unwrap())
	assert.NoError(t, http.NewResponseController(sr).Flush())
	assert.True(t, rec.Flushed)
}
