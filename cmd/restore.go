package cmd

import (
	"fmt"
	"time"

	"github.com/foomo/readmeq/pkg/result"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewRestoreCommand(root *viper.Viper, startedAt time.Time) *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a file from its latest or a given backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := defaultOptions(root, startedAt)
			if err != nil {
				return err
			}

			m := newManager(zap.L().Named("restore"), defaults.BackupOptions)

			var res result.Result[bool]
			if from := fromFlag(v); from != "" {
				res = m.RestoreFromPath(cmd.Context(), args[0], from, !noBackupFlag(v))
			} else {
				res = m.RestoreLatest(cmd.Context(), args[0], !noBackupFlag(v))
			}

			if err := writeResult(cmd.OutOrStdout(), outputFlag(root), "restore", args[0], res, func(bool) string {
				return fmt.Sprintf("restored %s", args[0])
			}); err != nil {
				return err
			}
			return res.Err()
		},
	}

	flags := cmd.Flags()
	addFromFlag(flags, v)
	addNoBackupFlag(flags, v)

	return cmd
}
