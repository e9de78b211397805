package backup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitName(t *testing.T) {
	for name, want := range map[string][2]string{
		"README.md":      {"README", ".md"},
		"archive.tar.gz": {"archive.tar", ".gz"},
		"LICENSE":        {"LICENSE", ""},
		".bashrc":        {".bashrc", ""},
	} {
		stem, ext := splitName(name)
		assert.Equal(t, want, [2]string{stem, ext}, name)
	}
}

func TestRelativeDir(t *testing.T) {
	base := t.TempDir()
	canonical, err := filepath.EvalSymlinks(base)
	require.NoError(t, err)

	assert.Equal(t, "", relativeDir(canonical, base))
	assert.Equal(t, "docs/api", relativeDir(filepath.Join(canonical, "docs", "api"), base))
	// outside of the base path the absolute directory is kept
	assert.Equal(t, "opt/project/docs", relativeDir("/opt/project/docs", base))
	assert.Equal(t, "opt/project", relativeDir("/opt/project", ""))
}

func TestVersionPattern(t *testing.T) {
	re, err := versionPattern("README", ".md", "_backup([0-9]+)")
	require.NoError(t, err)

	assert.Equal(t, []string{"README_backup42.md", "42"}, re.FindStringSubmatch("README_backup42.md"))
	assert.Nil(t, re.FindStringSubmatch("README_backup42.md.bak"))
	assert.Nil(t, re.FindStringSubmatch("OLD_README_backup42.md"))
	assert.Nil(t, re.FindStringSubmatch("READMExmd"))

	// stem and extension are matched literally
	re, err = versionPattern("a.b", ".md", "_backup([0-9]+)")
	require.NoError(t, err)
	assert.Nil(t, re.FindStringSubmatch("aXb_backup1.md"))
	assert.NotNil(t, re.FindStringSubmatch("a.b_backup1.md"))

	_, err = versionPattern("README", ".md", "_backup([0-9]+)(x)?")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestMatchEntries(t *testing.T) {
	re, err := versionPattern("README", ".md", "_backup([0-9]+)")
	require.NoError(t, err)

	entries := matchEntries([]string{
		"README_backup77.md",
		"README_backup99999999999999999999.md",
		"README.md",
		"README_backup205.md",
	}, re, func(name string) (string, string) {
		return "docs/" + name, "/backups/docs/" + name
	})

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{
		Name:     "README_backup77.md",
		Key:      "docs/README_backup77.md",
		Location: "/backups/docs/README_backup77.md",
		Version:  77,
	}, entries[0])
	assert.Equal(t, int64(205), entries[1].Version)
}

func TestLatest(t *testing.T) {
	_, ok := latest(nil)
	assert.False(t, ok)

	entry, ok := latest([]Entry{
		{Name: "a", Version: 100},
		{Name: "b", Version: 205},
		{Name: "c", Version: 77},
		{Name: "d", Version: 205},
	})
	require.True(t, ok)
	assert.Equal(t, "b", entry.Name)

	entry, ok = latest([]Entry{{Name: "zero", Version: 0}})
	require.True(t, ok)
	assert.Equal(t, "zero", entry.Name)
}

func TestSortNewestFirst(t *testing.T) {
	entries := []Entry{{Version: 100}, {Version: 205}, {Version: 77}}
	sortNewestFirst(entries)
	assert.Equal(t, []Entry{{Version: 205}, {Version: 100}, {Version: 77}}, entries)
}
