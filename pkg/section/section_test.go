package section

import (
	"testing"

	"github.com/foomo/readmeq/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultMarkers = Markers{Start: options.DefaultSectionStart, End: options.DefaultSectionEnd}

func TestMarkers_Bind(t *testing.T) {
	start, end, err := defaultMarkers.Bind("singleKey")
	require.NoError(t, err)
	assert.Equal(t, "<!--READMEQ:singleKey-->", start)
	assert.Equal(t, "<!--/READMEQ:singleKey-->", end)

	// only the first placeholder is substituted
	start, _, err = Markers{Start: "[KEY_VALUE:KEY_VALUE]", End: "[/KEY_VALUE]"}.Bind("k")
	require.NoError(t, err)
	assert.Equal(t, "[k:KEY_VALUE]", start)
}

func TestMarkers_Bind_Invalid(t *testing.T) {
	_, _, err := defaultMarkers.Bind("")
	require.ErrorIs(t, err, ErrInvalidTemplate)

	_, _, err = Markers{Start: "<!--START-->", End: options.DefaultSectionEnd}.Bind("k")
	require.ErrorIs(t, err, ErrInvalidTemplate)

	_, _, err = Markers{Start: options.DefaultSectionStart, End: "<!--END-->"}.Bind("k")
	require.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestFind(t *testing.T) {
	text := "head <a>one\ntwo</a> middle <a>three</a> tail"

	span, ok := Find(text, "<a>", "</a>")
	require.True(t, ok)
	assert.Equal(t, "<a>one\ntwo</a>", text[span.Start:span.End])
	assert.Equal(t, "one\ntwo", text[span.BodyStart:span.BodyEnd])

	_, ok = Find(text, "<b>", "</b>")
	assert.False(t, ok)

	// an end marker before the start marker does not count
	_, ok = Find("</a> <a>", "<a>", "</a>")
	assert.False(t, ok)

	// markers are literal
	span, ok = Find("x (.*) y [end] z", "(.*)", "[end]")
	require.True(t, ok)
	assert.Equal(t, " y ", "x (.*) y [end] z"[span.BodyStart:span.BodyEnd])
}

func TestFind_EmptyBody(t *testing.T) {
	span, ok := Find("<a></a>", "<a>", "</a>")
	require.True(t, ok)
	assert.Equal(t, span.BodyStart, span.BodyEnd)
}

func TestReplace(t *testing.T) {
	text := "<!--READMEQ:singleKey-->\nsingleKey data\n<!--/READMEQ:singleKey-->"

	out, err := Replace(text, "singleKey", "singleKey data MODIFIED", defaultMarkers, true)
	require.NoError(t, err)
	assert.Equal(t, "<!--READMEQ:singleKey-->\nsingleKey data MODIFIED\n<!--/READMEQ:singleKey-->", out)

	out, err = Replace(text, "singleKey", "inline", defaultMarkers, false)
	require.NoError(t, err)
	assert.Equal(t, "<!--READMEQ:singleKey-->inline<!--/READMEQ:singleKey-->", out)

	out, err = Replace(text, "singleKey", "", defaultMarkers, false)
	require.NoError(t, err)
	assert.Equal(t, "<!--READMEQ:singleKey--><!--/READMEQ:singleKey-->", out)
}

func TestReplace_KeepsSurroundingBytes(t *testing.T) {
	prefix := "# title\r\n\n  <!--READMEQ:other-->x<!--/READMEQ:other-->\n"
	suffix := "\n\ttrailing <!--READMEQ:k-->second<!--/READMEQ:k--> ü\n  "
	text := prefix + "<!--READMEQ:k-->first<!--/READMEQ:k-->" + suffix

	out, err := Replace(text, "k", "new", defaultMarkers, false)
	require.NoError(t, err)
	// only the first section of the key is replaced
	assert.Equal(t, prefix+"<!--READMEQ:k-->new<!--/READMEQ:k-->"+suffix, out)
}

func TestReplace_ContentContainsSpan(t *testing.T) {
	span := "<!--READMEQ:k-->old<!--/READMEQ:k-->"
	text := "a " + span + " b"

	out, err := Replace(text, "k", span, defaultMarkers, false)
	require.NoError(t, err)
	assert.Equal(t, "a <!--READMEQ:k-->"+span+"<!--/READMEQ:k--> b", out)
}

func TestReplace_Idempotent(t *testing.T) {
	text := "intro\n<!--READMEQ:k-->\nold\n<!--/READMEQ:k-->\noutro"
	for _, newline := range []bool{true, false} {
		once, err := Replace(text, "k", "new", defaultMarkers, newline)
		require.NoError(t, err)
		twice, err := Replace(once, "k", "new", defaultMarkers, newline)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestReplace_NotFound(t *testing.T) {
	_, err := Replace("no markers here", "missing", "x", defaultMarkers, false)
	require.ErrorIs(t, err, ErrSectionNotFound)
	assert.EqualError(t, err, "single key 'missing' not found: section not found")
}

func TestBody(t *testing.T) {
	body, err := Body("a<!--READMEQ:k-->\nb\n<!--/READMEQ:k-->c", "k", defaultMarkers)
	require.NoError(t, err)
	assert.Equal(t, "\nb\n", body)

	_, err = Body("a", "k", defaultMarkers)
	require.ErrorIs(t, err, ErrSectionNotFound)
}
