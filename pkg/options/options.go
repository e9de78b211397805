package options

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	// KeyPlaceholder is substituted with the section key in marker templates.
	KeyPlaceholder = "KEY_VALUE"

	DefaultFilePath          = "./README.md"
	DefaultSectionStart      = "<!--READMEQ:" + KeyPlaceholder + "-->"
	DefaultSectionEnd        = "<!--/READMEQ:" + KeyPlaceholder + "-->"
	DefaultBackupsDir        = ".readmeqBackups"
	DefaultBackupSuffixMatch = "_backup([0-9]+)"
)

type (
	// BackupOptions configures where and under which name backups are stored.
	BackupOptions struct {
		// BasePath is the project root, backups mirror paths relative to it.
		BasePath string
		// BackupsPath is the backups root, a directory or a bucket URL.
		BackupsPath string
		// BackupSuffix is inserted between file stem and extension.
		BackupSuffix string
		// BackupSuffixMatch recognises backup names, its single group is the integer version.
		BackupSuffixMatch string
	}
	BackupOption func(*BackupOptions)

	// ModifyOptions configures a section edit.
	ModifyOptions struct {
		FilePath     string
		SectionStart string
		SectionEnd   string
		// Newline wraps the inserted content in leading and trailing newlines.
		Newline bool
		// Backup snapshots the file before it is modified.
		Backup        bool
		BackupOptions BackupOptions
	}
	ModifyOption func(*ModifyOptions)
)

// ------------------------------------------------------------------------------------------------
// ~ Defaults
// ------------------------------------------------------------------------------------------------

// BackupSuffix returns the suffix for backups taken by a process started at t.
func BackupSuffix(t time.Time) string {
	return fmt.Sprintf("_backup%d", t.UnixMilli())
}

// DefaultBackupOptions derives the backup defaults from the project root and the process start time.
func DefaultBackupOptions(basePath string, startedAt time.Time) BackupOptions {
	return BackupOptions{
		BasePath:          basePath,
		BackupsPath:       filepath.Join(basePath, DefaultBackupsDir),
		BackupSuffix:      BackupSuffix(startedAt),
		BackupSuffixMatch: DefaultBackupSuffixMatch,
	}
}

// Defaults builds the modify defaults. It is meant to be called once at startup.
func Defaults(basePath string, startedAt time.Time) ModifyOptions {
	return ModifyOptions{
		FilePath:      DefaultFilePath,
		SectionStart:  DefaultSectionStart,
		SectionEnd:    DefaultSectionEnd,
		BackupOptions: DefaultBackupOptions(basePath, startedAt),
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Merge
// ------------------------------------------------------------------------------------------------

// With returns a copy of o with opts applied in order, o itself is left untouched.
func (o BackupOptions) With(opts ...BackupOption) BackupOptions {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// With returns a copy of o with opts applied in order, o itself is left untouched.
func (o ModifyOptions) With(opts ...ModifyOption) ModifyOptions {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ------------------------------------------------------------------------------------------------
// ~ Backup options
// ------------------------------------------------------------------------------------------------

// FromBackupOptions replaces all backup options with v.
func FromBackupOptions(v BackupOptions) BackupOption {
	return func(o *BackupOptions) {
		*o = v
	}
}

func WithBasePath(v string) BackupOption {
	return func(o *BackupOptions) {
		o.BasePath = v
	}
}

func WithBackupsPath(v string) BackupOption {
	return func(o *BackupOptions) {
		o.BackupsPath = v
	}
}

func WithBackupSuffix(v string) BackupOption {
	return func(o *BackupOptions) {
		o.BackupSuffix = v
	}
}

func WithBackupSuffixMatch(v string) BackupOption {
	return func(o *BackupOptions) {
		o.BackupSuffixMatch = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Modify options
// ------------------------------------------------------------------------------------------------

func WithFilePath(v string) ModifyOption {
	return func(o *ModifyOptions) {
		o.FilePath = v
	}
}

func WithSectionStart(v string) ModifyOption {
	return func(o *ModifyOptions) {
		o.SectionStart = v
	}
}

func WithSectionEnd(v string) ModifyOption {
	return func(o *ModifyOptions) {
		o.SectionEnd = v
	}
}

func WithNewline(v bool) ModifyOption {
	return func(o *ModifyOptions) {
		o.Newline = v
	}
}

func WithBackup(v bool) ModifyOption {
	return func(o *ModifyOptions) {
		o.Backup = v
	}
}

// WithBackupOptions merges opts over the nested backup options.
func WithBackupOptions(opts ...BackupOption) ModifyOption {
	return func(o *ModifyOptions) {
		o.BackupOptions = o.BackupOptions.With(opts...)
	}
}
