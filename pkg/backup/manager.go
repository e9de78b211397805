package backup

import (
	"context"
	"io/fs"
	"os"
	"time"

	"github.com/foomo/readmeq/pkg/metrics"
	"github.com/foomo/readmeq/pkg/options"
	"github.com/foomo/readmeq/pkg/result"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrNoBackup = errors.New("no backup found")

type (
	// Manager copies files into a versioned backup store and restores them.
	Manager struct {
		l        *zap.Logger
		defaults options.BackupOptions
		open     StorageOpener
	}
	Option func(*Manager)
)

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithStorageOpener(v StorageOpener) Option {
	return func(o *Manager) {
		o.open = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewManager(l *zap.Logger, defaults options.BackupOptions, opts ...Option) *Manager {
	inst := &Manager{
		l:        l,
		defaults: defaults,
		open:     OpenStorage,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Defaults returns the backup options every call starts from.
func (m *Manager) Defaults() options.BackupOptions {
	return m.defaults
}

// Backup copies filePath into the backup store and returns the location of the copy.
// A previous backup carrying the same suffix is overwritten.
func (m *Manager) Backup(ctx context.Context, filePath string, opts ...options.BackupOption) result.Result[string] {
	start := time.Now()
	o := m.defaults.With(opts...)

	location, err := withStorage(ctx, m.open, o.BackupsPath, func(s Storage) (string, error) {
		t, err := resolveTarget(filePath, o)
		if err != nil {
			return "", err
		}
		return m.backup(ctx, s, t, o)
	})

	metrics.BackupCounter.WithLabelValues(metrics.Status(err)).Inc()
	metrics.Observe("backup", start, err)
	if err != nil {
		m.l.Debug("backup failed", zap.String("file", filePath), zap.Error(err))
		return result.Err[string](err)
	}
	return result.Ok(location)
}

// List returns all backups of filePath, newest first.
func (m *Manager) List(ctx context.Context, filePath string, opts ...options.BackupOption) result.Result[[]Entry] {
	o := m.defaults.With(opts...)

	entries, err := withStorage(ctx, m.open, o.BackupsPath, func(s Storage) ([]Entry, error) {
		t, err := resolveTarget(filePath, o)
		if err != nil {
			return nil, err
		}
		entries, err := m.entries(ctx, s, t, o)
		if err != nil {
			return nil, err
		}
		sortNewestFirst(entries)
		return entries, nil
	})
	if err != nil {
		return result.Err[[]Entry](err)
	}
	return result.Ok(entries)
}

// RestoreLatest overwrites filePath with its backup carrying the highest version.
// With backupBeforeRestore the current content is backed up first, a failing backup aborts the restore.
func (m *Manager) RestoreLatest(ctx context.Context, filePath string, backupBeforeRestore bool, opts ...options.BackupOption) result.Result[bool] {
	start := time.Now()
	o := m.defaults.With(opts...)

	_, err := withStorage(ctx, m.open, o.BackupsPath, func(s Storage) (bool, error) {
		t, err := resolveTarget(filePath, o)
		if err != nil {
			return false, err
		}

		entries, err := m.entries(ctx, s, t, o)
		if err != nil {
			return false, err
		}
		entry, ok := latest(entries)
		if !ok {
			return false, errors.Wrapf(ErrNoBackup, "backup of '%s' not found", filePath)
		}

		// read before the pre-restore backup, which may reuse the same name
		data, err := s.Read(ctx, entry.Key)
		if err != nil {
			return false, errors.Wrapf(err, "failed to read backup %s", entry.Location)
		}

		if backupBeforeRestore {
			if _, err := m.backup(ctx, s, t, o); err != nil {
				return false, errors.Wrap(err, "failed to backup before restore")
			}
		}

		m.l.Info("restoring latest backup",
			zap.String("file", t.path),
			zap.String("backup", entry.Location),
			zap.Int64("version", entry.Version),
		)
		return true, t.write(data)
	})

	m.observeRestore(metrics.SourceLatest, start, filePath, err)
	if err != nil {
		return result.Err[bool](err)
	}
	return result.Ok(true)
}

// RestoreFromPath overwrites filePath with the content of backupFilePath.
func (m *Manager) RestoreFromPath(ctx context.Context, filePath, backupFilePath string, backupBeforeRestore bool, opts ...options.BackupOption) result.Result[bool] {
	start := time.Now()
	o := m.defaults.With(opts...)

	err := func() error {
		t, err := resolveTarget(filePath, o)
		if err != nil {
			return err
		}
		source, err := canonicalPath(backupFilePath)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(source)
		if err != nil {
			return errors.Wrap(err, "failed to read backup")
		}

		if backupBeforeRestore {
			_, err := withStorage(ctx, m.open, o.BackupsPath, func(s Storage) (string, error) {
				return m.backup(ctx, s, t, o)
			})
			if err != nil {
				return errors.Wrap(err, "failed to backup before restore")
			}
		}

		m.l.Info("restoring backup",
			zap.String("file", t.path),
			zap.String("backup", source),
		)
		return t.write(data)
	}()

	m.observeRestore(metrics.SourcePath, start, filePath, err)
	if err != nil {
		return result.Err[bool](err)
	}
	return result.Ok(true)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (m *Manager) backup(ctx context.Context, s Storage, t target, o options.BackupOptions) (string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read file")
	}

	key := t.backupKey(o.BackupSuffix)
	if err := s.Write(ctx, key, data); err != nil {
		return "", errors.Wrapf(err, "failed to write backup %s", s.Location(key))
	}

	m.l.Debug("wrote backup",
		zap.String("file", t.path),
		zap.String("backup", s.Location(key)),
	)
	return s.Location(key), nil
}

func (m *Manager) entries(ctx context.Context, s Storage, t target, o options.BackupOptions) ([]Entry, error) {
	re, err := versionPattern(t.stem, t.ext, o.BackupSuffixMatch)
	if err != nil {
		return nil, err
	}

	names, err := s.List(ctx, t.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNoBackup, "backup directory of '%s' does not exist", t.path)
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to list backups")
	}

	return matchEntries(names, re, func(name string) (string, string) {
		key := joinKey(t.dir, name)
		return key, s.Location(key)
	}), nil
}

func (m *Manager) observeRestore(source string, start time.Time, filePath string, err error) {
	metrics.RestoreCounter.WithLabelValues(metrics.Status(err), source).Inc()
	metrics.Observe("restore_"+source, start, err)
	if err != nil {
		m.l.Debug("restore failed", zap.String("file", filePath), zap.Error(err))
	}
}

// withStorage opens the storage at root for the duration of fn.
func withStorage[T any](ctx context.Context, open StorageOpener, root string, fn func(Storage) (T, error)) (ret T, err error) {
	s, err := open(ctx, root)
	if err != nil {
		return ret, errors.Wrapf(err, "failed to open backup storage %s", root)
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	return fn(s)
}
