package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateProjectRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.CreateProjectRequest
		wantErr bool
	}{
		{name: "valid", req: dto.CreateProjectRequest{Name: "Solar Roof"}},
		{name: "empty name", req: dto.CreateProjectRequest{Name: ""}, wantErr: true},
		{name: "whitespace name", req: dto.CreateProjectRequest{Name: "  \t"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "name")
		})
	}
}

func TestSelectProjectRequest_EmptyNameIsValid(t *testing.T) {
	t.Parallel()

	req := dto.SelectProjectRequest{}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestAddTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.AddTaskRequest
		wantField string
	}{
		{
			name: "valid",
			req:  dto.AddTaskRequest{Name: "Survey", Stage: "Planning", Start: "2024-01-01", Finish: "2024-01-10"},
		},
		{
			name:      "bad start",
			req:       dto.AddTaskRequest{Name: "Survey", Stage: "Planning", Start: "01/01/2024", Finish: "2024-01-10"},
			wantField: "start",
		},
		{
			name:      "missing finish",
			req:       dto.AddTaskRequest{Name: "Survey", Stage: "Planning", Start: "2024-01-01"},
			wantField: "finish",
		},
		{
			// Ordering is a domain rule, not a request shape rule.
			name: "inverted range passes",
			req:  dto.AddTaskRequest{Name: "Bad", Stage: "Planning", Start: "2024-02-01", Finish: "2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestAddTaskRequest_Dates(t *testing.T) {
	t.Parallel()

	req := dto.AddTaskRequest{Start: "2024-01-01", Finish: "2024-01-10"}
	start, finish := req.Dates()

	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC); !finish.Equal(want) {
		t.Errorf("finish = %v, want %v", finish, want)
	}
}

func TestAddStageRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.AddStageRequest{Name: "Review", Color: "#123456"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.AddStageRequest{Name: "", Color: "#123456"}).Validate(), "name")
	requireValidationField(t, (&dto.AddStageRequest{Name: "Review", Color: "teal"}).Validate(), "color")
}
