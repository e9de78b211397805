package backup

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/foomo/readmeq/pkg/options"
	"github.com/pkg/errors"
)

var ErrInvalidPattern = errors.New("invalid backup suffix pattern")

type (
	// Entry is a single backup of a file.
	Entry struct {
		Name     string `json:"name"`
		Key      string `json:"key"`
		Location string `json:"location"`
		// Version is the integer captured from the backup suffix.
		Version int64 `json:"version"`
	}

	// target is a file resolved for backup and restore operations.
	target struct {
		path string
		mode os.FileMode
		// dir is the backup directory key, mirroring the file's directory below the base path
		dir  string
		stem string
		ext  string
	}
)

// canonicalPath returns the absolute path of p with symlinks evaluated.
func canonicalPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", p)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", p)
	}
	return resolved, nil
}

func resolveTarget(filePath string, o options.BackupOptions) (target, error) {
	fullPath, err := canonicalPath(filePath)
	if err != nil {
		return target{}, err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		return target{}, errors.Wrapf(err, "failed to stat %s", fullPath)
	}

	stem, ext := splitName(filepath.Base(fullPath))
	return target{
		path: fullPath,
		mode: info.Mode().Perm(),
		dir:  relativeDir(filepath.Dir(fullPath), o.BasePath),
		stem: stem,
		ext:  ext,
	}, nil
}

// relativeDir strips basePath from dir. A dir outside of basePath is kept as is
// and thus mirrored with its absolute path below the backups root.
func relativeDir(dir, basePath string) string {
	if basePath != "" {
		if resolved, err := canonicalPath(basePath); err == nil {
			basePath = resolved
		}
		dir = strings.TrimPrefix(dir, basePath)
	}
	return strings.Trim(filepath.ToSlash(dir), "/")
}

// splitName splits a file name into stem and extension, "README.md" => "README", ".md".
func splitName(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == name {
		ext = ""
	}
	return strings.TrimSuffix(name, ext), ext
}

func joinKey(dir, name string) string {
	if dir == "" {
		return name
	}
	return path.Join(dir, name)
}

func (t target) backupKey(suffix string) string {
	return joinKey(t.dir, t.stem+suffix+t.ext)
}

func (t target) write(data []byte) error {
	if err := os.WriteFile(t.path, data, t.mode); err != nil {
		return errors.Wrapf(err, "failed to write %s", t.path)
	}
	return nil
}

// versionPattern matches the backup names of stem+ext, suffixMatch must hold exactly one capturing group.
func versionPattern(stem, ext, suffixMatch string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^" + regexp.QuoteMeta(stem) + suffixMatch + regexp.QuoteMeta(ext) + "$")
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPattern, "%q: %s", suffixMatch, err)
	}
	if re.NumSubexp() != 1 {
		return nil, errors.Wrapf(ErrInvalidPattern, "%q must contain exactly one capturing group", suffixMatch)
	}
	return re, nil
}

// matchEntries keeps the names matching re whose group is an integer, in listing order.
func matchEntries(names []string, re *regexp.Regexp, locate func(name string) (key, location string)) []Entry {
	var entries []Entry
	for _, name := range names {
		match := re.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		version, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}
		key, location := locate(name)
		entries = append(entries, Entry{
			Name:     name,
			Key:      key,
			Location: location,
			Version:  version,
		})
	}
	return entries
}

// latest returns the entry with the strictly greatest version, the first one seen wins ties.
func latest(entries []Entry) (Entry, bool) {
	var (
		ret   Entry
		found bool
	)
	for _, entry := range entries {
		if !found || entry.Version > ret.Version {
			ret = entry
			found = true
		}
	}
	return ret, found
}

func sortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Version > entries[j].Version
	})
}
