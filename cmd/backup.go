package cmd

import (
	"fmt"
	"time"

	"github.com/foomo/readmeq/pkg/result"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func NewBackupCommand(root *viper.Viper, startedAt time.Time) *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "backup <file>...",
		Short: "Copy files into the backups root",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := defaultOptions(root, startedAt)
			if err != nil {
				return err
			}
			m := newManager(zap.L().Named("backup"), defaults.BackupOptions)

			// every file is handled by a single sequential call, only distinct files run in parallel
			results := make([]result.Result[string], len(args))
			var g errgroup.Group
			g.SetLimit(max(concurrencyFlag(v), 1))
			for i, file := range args {
				i, file := i, file
				g.Go(func() error {
					results[i] = m.Backup(cmd.Context(), file)
					return nil
				})
			}
			_ = g.Wait()

			var errs error
			for i, res := range results {
				if err := writeResult(cmd.OutOrStdout(), outputFlag(root), "backup", args[i], res, func(location string) string {
					return fmt.Sprintf("backed up %s to %s", args[i], location)
				}); err != nil {
					return err
				}
				errs = multierr.Append(errs, res.Err())
			}
			return errs
		},
	}

	addConcurrencyFlag(cmd.Flags(), v)

	return cmd
}
