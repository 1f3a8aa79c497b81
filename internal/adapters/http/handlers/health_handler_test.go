package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gantt-dashboard/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.HealthResponse](t, rec)
	assert.Equal(t, dto.HealthOK, resp.Status)
	assert.Empty(t, resp.Checks)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "file store healthy",
			results:    map[string]error{"file": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{"file": "ok"},
		},
		{
			name:       "store unreachable",
			results:    map[string]error{"file": errors.New("directory missing"), "sqlite": nil},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.HealthNotReady,
			wantChecks: map[string]string{"file": "directory missing", "sqlite": "ok"},
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[dto.HealthResponse](t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantChecks != nil {
				assert.Equal(t, tt.wantChecks, resp.Checks)
			}
		})
	}
}
