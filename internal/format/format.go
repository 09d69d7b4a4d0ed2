// Package format encodes resolved path sets for CLI output.
package format

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Supported output formats.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
	TOML = "toml"
)

// Marshal encodes v in the requested structured format. Text rendering is
// the caller's concern.
func Marshal(v interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case JSON:
		return sonic.MarshalIndent(v, "", "  ")
	case YAML:
		return yaml.Marshal(v)
	case TOML:
		return toml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Valid reports whether format names a supported output format.
func Valid(format string) bool {
	switch strings.ToLower(format) {
	case Text, JSON, YAML, TOML:
		return true
	}
	return false
}
