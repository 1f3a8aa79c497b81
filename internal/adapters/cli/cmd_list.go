package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
)

type projectSummary struct {
	Name   string `json:"name"`
	Tasks  int    `json:"tasks"`
	Stages int    `json:"stages"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

func summarize(p *project.Project) projectSummary {
	s := projectSummary{Name: p.Name, Tasks: len(p.Tasks), Stages: len(p.Stages)}
	if c := timeline.Build(p); !c.Empty() {
		s.Start = c.Start.Format(project.DateLayout)
		s.End = c.End.Format(project.DateLayout)
	}
	return s
}

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Long: `List every project in the store with its task and stage counts.

Example:
  ganttctl list
  ganttctl list --driver sqlite --path projects.db --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := o.openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			projects, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load projects: %w", err)
			}

			names := make([]string, 0, len(projects))
			for name := range projects {
				names = append(names, name)
			}
			slices.Sort(names)

			summaries := make([]projectSummary, 0, len(names))
			for _, name := range names {
				p := projects[name]
				summaries = append(summaries, summarize(&p))
			}

			out := cmd.OutOrStdout()
			if o.jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			if len(summaries) == 0 {
				fmt.Fprintln(out, "No projects found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTASKS\tSTAGES\tSPAN")
			fmt.Fprintln(w, "────\t─────\t──────\t────")
			for _, s := range summaries {
				span := "-"
				if s.Start != "" {
					span = s.Start + " → " + s.End
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", truncate(s.Name, 40), s.Tasks, s.Stages, span)
			}
			return w.Flush()
		},
	}
}
