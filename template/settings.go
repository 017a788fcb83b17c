package template

import (
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("invalid template settings")

const (
	DefaultInterpolate = `<%=([\s\S]+?)%>`
	DefaultEscape      = `<%-([\s\S]+?)%>`
)

// Settings configures the delimiters a template is compiled with.
// Delimiters are regular expressions whose first capture group is the
// referenced expression.
type Settings struct {
	// Interpolate matches blocks whose value is inserted as is.
	Interpolate string `yaml:"interpolate,omitempty"`

	// Escape matches blocks whose value is HTML-escaped before insertion.
	Escape string `yaml:"escape,omitempty"`

	// Variable, when set, is the only name data is reachable under:
	// `<%= data.name %>` with Variable "data".
	Variable string `yaml:"variable,omitempty"`

	// Imports are names resolved before data.
	Imports map[string]any `yaml:"imports,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Interpolate: DefaultInterpolate,
		Escape:      DefaultEscape,
	}
}

// ParseSettings decodes YAML settings. Omitted delimiters keep their
// defaults.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	s = s.withDefaults()
	if _, _, err := s.compile(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) withDefaults() Settings {
	if s.Interpolate == "" {
		s.Interpolate = DefaultInterpolate
	}
	if s.Escape == "" {
		s.Escape = DefaultEscape
	}
	return s
}

func (s Settings) compile() (interpolate, escape *regexp.Regexp, err error) {
	if interpolate, err = compileDelimiter("interpolate", s.Interpolate); err != nil {
		return nil, nil, err
	}
	if escape, err = compileDelimiter("escape", s.Escape); err != nil {
		return nil, nil, err
	}
	if s.Variable != "" && !identifier.MatchString(s.Variable) {
		return nil, nil, fmt.Errorf("%w: variable %q is not an identifier", ErrInvalidSettings, s.Variable)
	}
	return interpolate, escape, nil
}

func compileDelimiter(name, expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, name, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%w: %s %q has no capture group", ErrInvalidSettings, name, expr)
	}
	return re, nil
}
