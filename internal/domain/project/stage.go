package project

import (
	"regexp"
	"strings"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
)

// colorPattern accepts 6-digit hex colors as produced by an HTML color input.
var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Stage is a named category with an associated color.
type Stage struct {
	Name  string
	Color string
}

// Validate checks that the stage has a name and a #RRGGBB color.
func (s Stage) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !colorPattern.MatchString(s.Color) {
		fields["color"] = "must be a hex color like #1A2B3C"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Stages is an insertion-ordered set of stages keyed by name.
type Stages []Stage

// DefaultStages returns the stages every new project starts with.
func DefaultStages() Stages {
	return Stages{
		{Name: "Planning", Color: "#FF6B6B"},
		{Name: "Development", Color: "#4ECDC4"},
		{Name: "Testing", Color: "#45B7D1"},
		{Name: "Deployment", Color: "#96CEB4"},
	}
}

// Color returns the color of the named stage.
func (s Stages) Color(name string) (string, bool) {
	for _, st := range s {
		if st.Name == name {
			return st.Color, true
		}
	}
	return "", false
}

// Set returns the stages with st inserted at the end, or with the color of an
// existing stage of the same name replaced in place.
func (s Stages) Set(st Stage) Stages {
	for i := range s {
		if s[i].Name == st.Name {
			s[i].Color = st.Color
			return s
		}
	}
	return append(s, st)
}

// Names returns stage names in order.
func (s Stages) Names() []string {
	names := make([]string, len(s))
	for i, st := range s {
		names[i] = st.Name
	}
	return names
}
