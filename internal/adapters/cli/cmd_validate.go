package cli

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage/file"
)

var errValidationFailed = errors.New("validation failed")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <glob>...",
		Short: "Check project files",
		Long: `Decode every matching project file and report the ones that cannot be loaded.

JSON files are also checked against the project schema. Patterns support **.

Example:
  ganttctl validate projects.json
  ganttctl validate 'backups/**/*.{json,yaml}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			checked, failed := 0, 0

			for _, pattern := range args {
				matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
				if err != nil {
					return fmt.Errorf("bad pattern %q: %w", pattern, err)
				}
				if len(matches) == 0 {
					fmt.Fprintf(out, "✗ %s: no files match\n", pattern)
					failed++
					continue
				}

				for _, path := range matches {
					checked++
					projects, err := file.New(path).Load(cmd.Context())
					if err != nil {
						fmt.Fprintf(out, "✗ %s: %v\n", path, err)
						failed++
						continue
					}
					fmt.Fprintf(out, "✓ %s (%d projects)\n", path, len(projects))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d failed, %d files checked", errValidationFailed, failed, checked)
			}
			return nil
		},
	}
}
