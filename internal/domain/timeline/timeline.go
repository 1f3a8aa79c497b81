// Package timeline projects a project's tasks into the shape a Gantt chart
// needs: one row per task, a stage color legend, and the overall time span.
package timeline

import (
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
)

// Row is one bar of the chart.
type Row struct {
	Task   string
	Start  time.Time
	Finish time.Time
	Stage  string
	Color  string
}

// LegendEntry maps a stage to its current color.
type LegendEntry struct {
	Stage string
	Color string
}

// Chart is everything a renderer needs to draw a project's timeline.
// Rows are in insertion order and are drawn top to bottom, so the first task
// added sits at the top. Start and End are zero when there are no rows.
type Chart struct {
	Rows   []Row
	Legend []LegendEntry
	Start  time.Time
	End    time.Time
}

// Empty reports whether there is nothing to plot.
func (c Chart) Empty() bool {
	return len(c.Rows) == 0
}

// Rows returns one row per task in insertion order. The row color is the
// task's snapshotted color, not the stage's current color.
func Rows(p *project.Project) []Row {
	rows := make([]Row, len(p.Tasks))
	for i, t := range p.Tasks {
		rows[i] = Row{
			Task:   t.Name,
			Start:  t.Start,
			Finish: t.Finish,
			Stage:  t.Stage,
			Color:  t.Color,
		}
	}
	return rows
}

// Legend returns the project's current stage colors in stage order.
// It can disagree with row colors once a stage color has been overwritten.
func Legend(p *project.Project) []LegendEntry {
	legend := make([]LegendEntry, len(p.Stages))
	for i, s := range p.Stages {
		legend[i] = LegendEntry{Stage: s.Name, Color: s.Color}
	}
	return legend
}

// Build assembles rows, legend, and the overall span of p.
func Build(p *project.Project) Chart {
	c := Chart{
		Rows:   Rows(p),
		Legend: Legend(p),
	}
	for i, r := range c.Rows {
		if i == 0 || r.Start.Before(c.Start) {
			c.Start = r.Start
		}
		if i == 0 || r.Finish.After(c.End) {
			c.End = r.Finish
		}
	}
	return c
}
