package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jsonq.mleku.dev/config/keyvalue"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "jsonq", c.AppName)
	require.Equal(t, byte('"'), c.Delim())
	require.Equal(t, "info", c.LogLevel)
	require.False(t, c.Hex)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("JSONQ_DELIMITER", "'")
	t.Setenv("JSONQ_HEX", "true")
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, byte('\''), c.Delim())
	require.True(t, c.Hex)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("JSONQ_DELIMITER", `""`)
	_, err := Load("")
	require.Error(t, err)

	t.Setenv("JSONQ_DELIMITER", `"`)
	t.Setenv("JSONQ_LOG_LEVEL", "loud")
	_, err = Load("")
	require.Error(t, err)
}

func TestEnvFileRoundTrip(t *testing.T) {
	want := C{AppName: "jsonq", Delimiter: "'", LogLevel: "debug", Hex: true}
	var buf bytes.Buffer
	keyvalue.PrintEnv(want, &buf)
	path := filepath.Join(t.TempDir(), "jsonq.env")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	t.Setenv(EnvFileKey, path)
	c, err := New()
	require.NoError(t, err)
	require.Equal(t, want, *c)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&C{}, &buf)
	require.True(t, strings.Contains(buf.String(), "JSONQ_DELIMITER"))
}
