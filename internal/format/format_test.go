package format_test

import (
	"testing"

	"github.com/GriffinCanCode/apppath/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	DataDir string `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
}

func TestMarshalJSON(t *testing.T) {
	out, err := format.Marshal(sample{DataDir: "/home/u/.local/share/demo"}, format.JSON)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"data_dir"`)
	assert.Contains(t, string(out), "/home/u/.local/share/demo")
}

func TestMarshalYAML(t *testing.T) {
	out, err := format.Marshal(sample{DataDir: "/home/u/.local/share/demo"}, format.YAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "data_dir:")
}

func TestMarshalTOML(t *testing.T) {
	out, err := format.Marshal(sample{DataDir: "/home/u/.local/share/demo"}, format.TOML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "data_dir =")
}

func TestMarshalCaseInsensitive(t *testing.T) {
	_, err := format.Marshal(sample{}, "JSON")
	assert.NoError(t, err)
}

func TestMarshalUnsupported(t *testing.T) {
	_, err := format.Marshal(sample{}, "xml")
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, format.Valid("text"))
	assert.True(t, format.Valid("TOML"))
	assert.False(t, format.Valid("csv"))
}
