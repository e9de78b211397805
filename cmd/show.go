package cmd

import (
	"time"

	"github.com/foomo/readmeq/pkg/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewShowCommand(root *viper.Viper, startedAt time.Time) *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Print the content of a marked section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := defaultOptions(root, startedAt)
			if err != nil {
				return err
			}

			e := newEditor(zap.L().Named("show"), defaults)
			res := e.ReadSection(cmd.Context(), args[0],
				options.WithFilePath(fileFlag(v)),
				options.WithSectionStart(sectionStartFlag(v)),
				options.WithSectionEnd(sectionEndFlag(v)),
			)
			if err := writeResult(cmd.OutOrStdout(), outputFlag(root), "show", args[0], res, func(body string) string {
				return body
			}); err != nil {
				return err
			}
			return res.Err()
		},
	}

	flags := cmd.Flags()
	addFileFlag(flags, v)
	addSectionStartFlag(flags, v)
	addSectionEndFlag(flags, v)

	return cmd
}
