// Package cli implements the ganttctl command-line interface: an offline
// companion to the dashboard server that reads and writes the same stores.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/config"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

const defaultWidth = 80

// options are the persistent flags shared by every subcommand.
type options struct {
	profile   string
	configDir string
	driver    string
	path      string
	jsonOut   bool
	noColor   bool
	width     int
}

// NewRootCmd builds the ganttctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "ganttctl",
		Short: "Inspect and maintain Gantt dashboard project stores",
		Long: `ganttctl works directly on the project store used by the dashboard server.

Quick start:
  ganttctl list                          List projects in ./projects.json
  ganttctl show "Solar Roof"             Draw a project's timeline
  ganttctl copy --to-driver sqlite --to-path projects.db
  ganttctl validate 'data/**/*.json'     Check project files against the schema`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.profile, "profile", "", "load store settings from this config profile")
	pf.StringVar(&o.configDir, "config-dir", "configs", "directory holding the config profiles")
	pf.StringVar(&o.driver, "driver", config.StoreDriverFile, "store driver (file or sqlite)")
	pf.StringVar(&o.path, "path", "projects.json", "store location")
	pf.BoolVar(&o.jsonOut, "json", false, "output as JSON")
	pf.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	pf.IntVar(&o.width, "width", 0, "chart width in columns (0 detects the terminal)")

	root.AddCommand(newListCmd(o))
	root.AddCommand(newShowCmd(o))
	root.AddCommand(newCopyCmd(o))
	root.AddCommand(newValidateCmd())

	return root
}

// Execute runs the command tree against the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// storeConfig resolves the source store. Explicit --driver and --path flags
// win over values from --profile.
func (o *options) storeConfig(cmd *cobra.Command) (config.StoreConfig, error) {
	sc := config.StoreConfig{Driver: o.driver, Path: o.path}
	if o.profile == "" {
		return sc, nil
	}

	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return config.StoreConfig{}, fmt.Errorf("load config: %w", err)
	}
	sc = cfg.Store
	if cmd.Flags().Changed("driver") {
		sc.Driver = o.driver
	}
	if cmd.Flags().Changed("path") {
		sc.Path = o.path
	}
	return sc, nil
}

func (o *options) openStore(cmd *cobra.Command) (ports.ProjectStore, error) {
	sc, err := o.storeConfig(cmd)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cmd.Context(), sc)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// colorEnabled reports whether bars should be styled. Only terminals get
// color, and --no-color always wins.
func (o *options) colorEnabled(w io.Writer) bool {
	if o.noColor || o.jsonOut {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// chartWidth is --width when set, else the terminal width, else 80.
func (o *options) chartWidth(w io.Writer) int {
	if o.width > 0 {
		return o.width
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultWidth
}
