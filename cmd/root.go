package cmd

import (
	"strings"
	"time"

	"github.com/foomo/keel/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewRootCommand represents the base command when called without any subcommands
func NewRootCommand() *cobra.Command {
	// backups taken by this process share one suffix
	startedAt := time.Now()

	v := newViper()
	cmd := &cobra.Command{
		Use:           "readmeq",
		Short:         "Rewrites marked sections of text documents and keeps backups of them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zap.ReplaceGlobals(log.NewLogger(
				logLevelFlag(v),
				logFormatFlag(v),
			).With(zap.String("run_id", uuid.New().String())))
		},
	}

	flags := cmd.PersistentFlags()
	addLogLevelFlag(flags, v)
	addLogFormatFlag(flags, v)
	addOutputFlag(flags, v)
	addBasePathFlag(flags, v)
	addBackupsPathFlag(flags, v)
	addBackupSuffixFlag(flags, v)
	addBackupSuffixMatchFlag(flags, v)

	cmd.AddCommand(NewEditCommand(v, startedAt))
	cmd.AddCommand(NewShowCommand(v, startedAt))
	cmd.AddCommand(NewBackupCommand(v, startedAt))
	cmd.AddCommand(NewListCommand(v, startedAt))
	cmd.AddCommand(NewRestoreCommand(v, startedAt))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Logger().Fatal("failed to run command", zap.Error(err))
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("readmeq")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}
