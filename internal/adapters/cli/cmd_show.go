package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
)

type rowJSON struct {
	Task   string `json:"task"`
	Start  string `json:"start"`
	Finish string `json:"finish"`
	Stage  string `json:"stage"`
	Color  string `json:"color"`
}

type legendJSON struct {
	Stage string `json:"stage"`
	Color string `json:"color"`
}

type chartJSON struct {
	Project string       `json:"project"`
	Rows    []rowJSON    `json:"rows"`
	Legend  []legendJSON `json:"legend"`
}

func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Draw a project's timeline",
		Long: `Draw a project's tasks as a Gantt chart in the terminal.

Bars use each task's own color; the legend below shows the current stage colors.

Example:
  ganttctl show "Solar Roof"
  ganttctl show "Solar Roof" --width 120 --no-color`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := o.openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			projects, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load projects: %w", err)
			}

			p, ok := projects[args[0]]
			if !ok {
				return fmt.Errorf("project %q: %w", args[0], domain.ErrNotFound)
			}
			chart := timeline.Build(&p)

			out := cmd.OutOrStdout()
			if o.jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(toChartJSON(p.Name, chart))
			}

			r := ganttRenderer{width: o.chartWidth(out), color: o.colorEnabled(out)}
			_, err = fmt.Fprint(out, r.render(p.Name, chart))
			return err
		},
	}
}

func toChartJSON(name string, c timeline.Chart) chartJSON {
	out := chartJSON{
		Project: name,
		Rows:    make([]rowJSON, len(c.Rows)),
		Legend:  make([]legendJSON, len(c.Legend)),
	}
	for i, r := range c.Rows {
		out.Rows[i] = rowJSON{
			Task:   r.Task,
			Start:  r.Start.Format(project.DateLayout),
			Finish: r.Finish.Format(project.DateLayout),
			Stage:  r.Stage,
			Color:  r.Color,
		}
	}
	for i, l := range c.Legend {
		out.Legend[i] = legendJSON(l)
	}
	return out
}
