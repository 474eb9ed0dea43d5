package ships

import (
	"fmt"
	"maps"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/shipyard/pkg/errors"
)

// Metadata is the parsed content of a ship.yaml file. The well-known keys
// are exposed as fields; Fields keeps the whole mapping, including keys this
// package does not know about.
type Metadata struct {
	Name        string
	Description string
	Tags        []string
	Author      string
	Version     Scalar
	GameVersion Scalar
	Fields      map[string]any
}

// Scalar is a YAML scalar kept as written. A version of 1.0 stays "1.0"
// instead of becoming the float 1.
type Scalar struct {
	text string
}

// NewScalar returns a Scalar holding text.
func NewScalar(text string) Scalar {
	return Scalar{text: text}
}

// String returns the scalar's source text, or "" when absent.
func (s Scalar) String() string {
	return s.text
}

// IsZero reports whether the scalar was absent or null.
func (s Scalar) IsZero() bool {
	return s.text == ""
}

// MarshalText implements encoding.TextMarshaler.
func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(s.text), nil
}

// UnmarshalYAML implements yaml.BytesUnmarshaler. Quoted and block strings
// are decoded; plain numbers and booleans keep their raw token text.
func (s *Scalar) UnmarshalYAML(data []byte) error {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		s.text = ""
	case string:
		s.text = val
	case map[string]any, []any:
		s.text = fmt.Sprint(val)
	default:
		text := strings.TrimSpace(string(data))
		if i := strings.Index(text, " #"); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		s.text = text
	}
	return nil
}

// tagList accepts either a YAML sequence or a single scalar.
type tagList []string

func (t *tagList) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*t = nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		*t = out
	default:
		*t = []string{fmt.Sprint(val)}
	}
	return nil
}

// text decodes any scalar into its string form.
type text string

func (s *text) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	if v == nil {
		*s = ""
		return nil
	}
	*s = text(fmt.Sprint(v))
	return nil
}

type rawMetadata struct {
	Name        text    `yaml:"name"`
	Description text    `yaml:"description"`
	Tags        tagList `yaml:"tags"`
	Author      text    `yaml:"author"`
	Version     Scalar  `yaml:"version"`
	GameVersion Scalar  `yaml:"game_version"`
}

// ParseMetadata parses a ship.yaml document. The document must be a
// non-empty mapping.
func ParseMetadata(data []byte) (*Metadata, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, errors.WrapParse("yaml", "ship.yaml", err)
	}
	if fields == nil {
		return nil, errors.NewParseError("yaml", "ship.yaml", "empty document", nil)
	}

	var raw rawMetadata
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", "ship.yaml", err)
	}

	return &Metadata{
		Name:        string(raw.Name),
		Description: string(raw.Description),
		Tags:        []string(raw.Tags),
		Author:      string(raw.Author),
		Version:     raw.Version,
		GameVersion: raw.GameVersion,
		Fields:      fields,
	}, nil
}

func (m Metadata) clone() Metadata {
	m.Tags = append([]string(nil), m.Tags...)
	m.Fields = maps.Clone(m.Fields)
	return m
}
