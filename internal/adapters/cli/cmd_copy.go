package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/config"
)

func newCopyCmd(o *options) *cobra.Command {
	var (
		toDriver string
		toPath   string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy every project into another store",
		Long: `Copy the whole project collection from the source store into a destination store.

The destination is replaced as a whole. A destination that already holds
projects is left alone unless --force is given.

Example:
  ganttctl copy --to-driver sqlite --to-path projects.db
  ganttctl copy --driver sqlite --path projects.db --to-path backup.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if toPath == "" {
				return fmt.Errorf("--to-path is required")
			}
			ctx := cmd.Context()

			src, err := o.openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = src.Close() }()

			dst, err := storage.Open(ctx, config.StoreConfig{Driver: toDriver, Path: toPath})
			if err != nil {
				return fmt.Errorf("open destination: %w", err)
			}
			defer func() { _ = dst.Close() }()

			projects, err := src.Load(ctx)
			if err != nil {
				return fmt.Errorf("load source: %w", err)
			}

			if !force {
				existing, err := dst.Load(ctx)
				if err != nil {
					return fmt.Errorf("load destination: %w", err)
				}
				if len(existing) > 0 {
					return fmt.Errorf("destination %s already holds %d projects (use --force to replace)", toPath, len(existing))
				}
			}

			if err := dst.Save(ctx, projects); err != nil {
				return fmt.Errorf("save destination: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d projects to %s (%s)\n", len(projects), toPath, dst.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&toDriver, "to-driver", config.StoreDriverFile, "destination store driver (file or sqlite)")
	cmd.Flags().StringVar(&toPath, "to-path", "", "destination store location")
	cmd.Flags().BoolVar(&force, "force", false, "replace a non-empty destination")

	return cmd
}
