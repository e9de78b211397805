package section

import (
	"context"
	"os"
	"time"

	"github.com/foomo/readmeq/pkg/metrics"
	"github.com/foomo/readmeq/pkg/options"
	"github.com/foomo/readmeq/pkg/result"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// Backuper snapshots a file before it is edited.
	Backuper interface {
		Backup(ctx context.Context, filePath string, opts ...options.BackupOption) result.Result[string]
	}
	// Editor rewrites keyed sections of text documents.
	Editor struct {
		l        *zap.Logger
		backuper Backuper
		defaults options.ModifyOptions
	}
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewEditor(l *zap.Logger, backuper Backuper, defaults options.ModifyOptions) *Editor {
	return &Editor{
		l:        l,
		backuper: backuper,
		defaults: defaults,
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Defaults returns the modify options every call starts from.
func (e *Editor) Defaults() options.ModifyOptions {
	return e.defaults
}

// EditSection replaces the body of the section identified by key with newContent.
// A requested backup is taken before the file is touched and its failure aborts the edit.
func (e *Editor) EditSection(ctx context.Context, key, newContent string, opts ...options.ModifyOption) result.Result[bool] {
	start := time.Now()
	o := e.defaults.With(opts...)
	l := e.l.With(zap.String("file", o.FilePath), zap.String("key", key))

	err := e.edit(ctx, l, key, newContent, o)

	metrics.SectionEditCounter.WithLabelValues(metrics.Status(err)).Inc()
	metrics.Observe("edit", start, err)
	if err != nil {
		l.Debug("edit failed", zap.Error(err))
		return result.Err[bool](err)
	}
	return result.Ok(true)
}

// ReadSection returns the current body of the section identified by key.
func (e *Editor) ReadSection(_ context.Context, key string, opts ...options.ModifyOption) result.Result[string] {
	o := e.defaults.With(opts...)

	data, err := os.ReadFile(o.FilePath)
	if err != nil {
		return result.Err[string](errors.Wrap(err, "failed to read file"))
	}
	body, err := Body(string(data), key, markers(o))
	if err != nil {
		return result.Err[string](err)
	}
	return result.Ok(body)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (e *Editor) edit(ctx context.Context, l *zap.Logger, key, newContent string, o options.ModifyOptions) error {
	info, err := os.Stat(o.FilePath)
	if err != nil {
		return errors.Wrap(err, "failed to read file")
	}
	data, err := os.ReadFile(o.FilePath)
	if err != nil {
		return errors.Wrap(err, "failed to read file")
	}

	if o.Backup {
		if e.backuper == nil {
			return errors.New("backup requested but no backuper configured")
		}
		res := e.backuper.Backup(ctx, o.FilePath, options.FromBackupOptions(o.BackupOptions))
		if err := res.Err(); err != nil {
			return errors.Wrap(err, "failed to backup before edit")
		}
		l.Debug("backed up", zap.String("backup", res.Value()))
	}

	text, err := Replace(string(data), key, newContent, markers(o), o.Newline)
	if err != nil {
		return err
	}

	if err := os.WriteFile(o.FilePath, []byte(text), info.Mode().Perm()); err != nil {
		return errors.Wrap(err, "failed to write file")
	}

	l.Info("edited section")
	return nil
}

func markers(o options.ModifyOptions) Markers {
	return Markers{Start: o.SectionStart, End: o.SectionEnd}
}
