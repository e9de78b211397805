package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/foomo/readmeq/pkg/backup"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewListCommand(root *viper.Viper, startedAt time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the backups of a file, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := defaultOptions(root, startedAt)
			if err != nil {
				return err
			}

			m := newManager(zap.L().Named("list"), defaults.BackupOptions)
			res := m.List(cmd.Context(), args[0])
			if err := writeResult(cmd.OutOrStdout(), outputFlag(root), "list", args[0], res, func(entries []backup.Entry) string {
				lines := make([]string, 0, len(entries))
				for _, entry := range entries {
					lines = append(lines, fmt.Sprintf("%d\t%s", entry.Version, entry.Location))
				}
				return strings.Join(lines, "\n")
			}); err != nil {
				return err
			}
			return res.Err()
		},
	}
	return cmd
}
