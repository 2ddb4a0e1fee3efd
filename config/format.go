package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding used when printing conversion results.
type Format byte

const (
	FormatPlain Format = iota
	FormatJSON
	FormatYAML
)

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "p", "plain", "text":
		return FormatPlain, nil
	case "j", "json":
		return FormatJSON, nil
	case "y", "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatPlain, fmt.Errorf("unknown format %q", s)
}

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) MarshalYAML() (any, error) {
	return f.String(), nil
}

// Set implements [github.com/spf13/pflag.Value].
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string {
	return "format"
}
