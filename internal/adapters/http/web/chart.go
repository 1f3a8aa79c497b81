package web

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
)

const (
	minBarWidth = 0.5 // percent; keeps zero-length bars from loaded data visible
	tickCount   = 5
)

// chartView is the chart geometry rendered by the template. Bars and ticks
// are positioned as percentages of the overall span.
type chartView struct {
	Empty  bool
	Bars   []bar
	Legend []timeline.LegendEntry
	Ticks  []tick
}

type bar struct {
	Task   string
	Stage  string
	Color  string
	Start  string
	Finish string
	Left   string
	Width  string
}

type tick struct {
	Label string
	Left  string
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// layoutChart turns a chart into bar positions. Rows keep their order, so the
// first task is drawn at the top.
func layoutChart(c timeline.Chart) chartView {
	view := chartView{
		Empty:  c.Empty(),
		Legend: c.Legend,
	}
	if view.Empty {
		return view
	}

	span := c.End.Sub(c.Start)
	if span <= 0 {
		span = 24 * time.Hour
	}
	offset := func(t time.Time) float64 {
		return float64(t.Sub(c.Start)) / float64(span) * 100
	}

	view.Bars = make([]bar, len(c.Rows))
	for i, r := range c.Rows {
		left := offset(r.Start)
		width := max(offset(r.Finish)-left, minBarWidth)
		if left+width > 100 {
			width = 100 - left
		}
		view.Bars[i] = bar{
			Task:   r.Task,
			Stage:  r.Stage,
			Color:  r.Color,
			Start:  r.Start.Format(project.DateLayout),
			Finish: r.Finish.Format(project.DateLayout),
			Left:   percent(left),
			Width:  percent(width),
		}
	}

	view.Ticks = make([]tick, tickCount)
	for i := range tickCount {
		frac := float64(i) / float64(tickCount-1)
		at := project.Day(c.Start.Add(time.Duration(frac * float64(span))))
		view.Ticks[i] = tick{
			Label: at.Format(project.DateLayout),
			Left:  percent(frac * 100),
		}
	}

	return view
}
