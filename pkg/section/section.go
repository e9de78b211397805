package section

import (
	"strings"

	"github.com/foomo/readmeq/pkg/options"
	"github.com/pkg/errors"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidTemplate = errors.New("invalid section template")
)

type (
	// Markers holds the start and end templates of a section.
	Markers struct {
		Start string
		End   string
	}
	// Span is the byte range of a section including both markers.
	Span struct {
		Start int
		End   int
		// Body is the range between the markers.
		BodyStart int
		BodyEnd   int
	}
)

// Bind substitutes key into both templates.
func (m Markers) Bind(key string) (string, string, error) {
	if key == "" {
		return "", "", errors.Wrap(ErrInvalidTemplate, "empty key")
	}
	if !strings.Contains(m.Start, options.KeyPlaceholder) {
		return "", "", errors.Wrapf(ErrInvalidTemplate, "start %q misses %s", m.Start, options.KeyPlaceholder)
	}
	if !strings.Contains(m.End, options.KeyPlaceholder) {
		return "", "", errors.Wrapf(ErrInvalidTemplate, "end %q misses %s", m.End, options.KeyPlaceholder)
	}
	return strings.Replace(m.Start, options.KeyPlaceholder, key, 1),
		strings.Replace(m.End, options.KeyPlaceholder, key, 1),
		nil
}

// Find locates the first start marker followed by an end marker, which may be on a later line.
func Find(text, start, end string) (Span, bool) {
	i := strings.Index(text, start)
	if i < 0 {
		return Span{}, false
	}
	bodyStart := i + len(start)
	j := strings.Index(text[bodyStart:], end)
	if j < 0 {
		return Span{}, false
	}
	bodyEnd := bodyStart + j
	return Span{
		Start:     i,
		End:       bodyEnd + len(end),
		BodyStart: bodyStart,
		BodyEnd:   bodyEnd,
	}, true
}

// Replace swaps the body of the key's section in text for content.
// With newline the content is wrapped in "\n". Bytes outside the section are kept.
func Replace(text, key, content string, markers Markers, newline bool) (string, error) {
	start, end, err := markers.Bind(key)
	if err != nil {
		return "", err
	}
	span, ok := Find(text, start, end)
	if !ok {
		return "", errors.Wrapf(ErrSectionNotFound, "single key '%s' not found", key)
	}
	if newline {
		content = "\n" + content + "\n"
	}
	return text[:span.Start] + start + content + end + text[span.End:], nil
}

// Body returns the content between the markers of the key's section.
func Body(text, key string, markers Markers) (string, error) {
	start, end, err := markers.Bind(key)
	if err != nil {
		return "", err
	}
	span, ok := Find(text, start, end)
	if !ok {
		return "", errors.Wrapf(ErrSectionNotFound, "single key '%s' not found", key)
	}
	return text[span.BodyStart:span.BodyEnd], nil
}
