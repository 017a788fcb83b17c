// Package template renders text with interpolated and HTML-escaped
// references to data. Only property paths such as `user.name` can be
// referenced; arbitrary code blocks are not supported.
package template

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/on-the-ground/lowdash_go/logging"
	"github.com/on-the-ground/lowdash_go/object"
	"go.uber.org/zap"
)

var (
	ErrUndefinedReference    = errors.New("undefined reference")
	ErrUnsupportedExpression = errors.New("unsupported template expression")
)

var (
	identifier = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	path       = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[\w$]+)*$`)
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

type segment struct {
	literal string
	path    []string // nil for literal segments
	escape  bool
}

// Template is a compiled template. It is safe for concurrent use.
type Template struct {
	segments []segment
	settings Settings
}

// Compile parses text using the delimiters in settings. Zero-valued
// delimiters fall back to the defaults.
func Compile(text string, settings Settings) (*Template, error) {
	settings = settings.withDefaults()
	interpolate, escape, err := settings.compile()
	if err != nil {
		return nil, err
	}

	var segments []segment
	for pos := 0; pos < len(text); {
		loc, escaped := nextBlock(text[pos:], interpolate, escape)
		if loc == nil {
			segments = append(segments, segment{literal: text[pos:]})
			break
		}
		if loc[0] == loc[1] {
			return nil, fmt.Errorf("%w: delimiter matches the empty string", ErrInvalidSettings)
		}
		if loc[0] > 0 {
			segments = append(segments, segment{literal: text[pos : pos+loc[0]]})
		}
		var expr string
		if loc[2] >= 0 {
			expr = strings.TrimSpace(text[pos+loc[2] : pos+loc[3]])
		}
		if !path.MatchString(expr) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedExpression, expr)
		}
		segments = append(segments, segment{path: strings.Split(expr, "."), escape: escaped})
		pos += loc[1]
	}

	logging.Logger().Debug("compiled template", zap.Int("segments", len(segments)))
	return &Template{segments: segments, settings: settings}, nil
}

// nextBlock finds the leftmost delimiter block in s. Escape blocks win ties.
func nextBlock(s string, interpolate, escape *regexp.Regexp) ([]int, bool) {
	i := interpolate.FindStringSubmatchIndex(s)
	e := escape.FindStringSubmatchIndex(s)
	switch {
	case e != nil && (i == nil || e[0] <= i[0]):
		return e, true
	case i != nil:
		return i, false
	}
	return nil, false
}

// Execute renders the template against data. Nil values render as the
// empty string, as do missing final properties of a path. A missing root
// name or a missing intermediate property fails with ErrUndefinedReference.
func (t *Template) Execute(data any) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.path == nil {
			b.WriteString(seg.literal)
			continue
		}
		v, err := t.resolve(seg.path, data)
		if err != nil {
			return "", err
		}
		if v == nil {
			continue
		}
		s := fmt.Sprint(v)
		if seg.escape {
			s = htmlEscaper.Replace(s)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func (t *Template) resolve(names []string, data any) (any, error) {
	ref := strings.Join(names, ".")
	root, rest := names[0], names[1:]

	var v any
	if imported, ok := t.settings.Imports[root]; ok {
		v = imported
	} else if t.settings.Variable != "" {
		if root != t.settings.Variable {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedReference, ref)
		}
		v = data
	} else {
		var ok bool
		if v, ok = object.Property(data, root); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedReference, ref)
		}
	}

	for i, name := range rest {
		next, ok := object.Property(v, name)
		if !ok {
			if i == len(rest)-1 && v != nil {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %s", ErrUndefinedReference, ref)
		}
		v = next
	}
	return v, nil
}

// Render compiles text and executes it against data in one step.
func Render(text string, data any, settings Settings) (string, error) {
	t, err := Compile(text, settings)
	if err != nil {
		return "", err
	}
	return t.Execute(data)
}
