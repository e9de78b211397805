package cmd

import (
	"os"
	"time"

	"github.com/foomo/readmeq/pkg/backup"
	"github.com/foomo/readmeq/pkg/options"
	"github.com/foomo/readmeq/pkg/section"
	"github.com/foomo/readmeq/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// defaultOptions builds the options every call of this process starts from.
func defaultOptions(v *viper.Viper, startedAt time.Time) (options.ModifyOptions, error) {
	basePath := basePathFlag(v)
	if basePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return options.ModifyOptions{}, errors.Wrap(err, "failed to get working directory")
		}
		basePath = wd
	}

	var opts []options.BackupOption
	if value := backupsPathFlag(v); value != "" {
		opts = append(opts, options.WithBackupsPath(value))
	}
	if value := backupSuffixFlag(v); value != "" {
		opts = append(opts, options.WithBackupSuffix(value))
	}
	if value := backupSuffixMatchFlag(v); value != "" {
		opts = append(opts, options.WithBackupSuffixMatch(value))
	}

	return options.Defaults(basePath, startedAt).With(options.WithBackupOptions(opts...)), nil
}

func newManager(l *zap.Logger, defaults options.BackupOptions) *backup.Manager {
	if root := defaults.BackupsPath; utils.IsBlobURL(root) {
		l.Info("using blob storage",
			zap.String("bucket", root),
			zap.String("provider", utils.BlobProvider(root)),
		)
	}
	return backup.NewManager(l.Named("backup"), defaults)
}

func newEditor(l *zap.Logger, defaults options.ModifyOptions) *section.Editor {
	return section.NewEditor(l.Named("section"), newManager(l, defaults.BackupOptions), defaults)
}
