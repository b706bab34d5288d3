package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azhovan/kvconf"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	rootCmd := newRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGet(t *testing.T) {
	path := writeFile(t, "port=8080\nratio=0.25\nenabled=true\nname=demo app\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"string default", []string{"--file", path, "get", "name"}, "demo app\n"},
		{"uint", []string{"-f", path, "get", "port", "--type", "uint"}, "8080\n"},
		{"double", []string{"-f", path, "get", "ratio", "-t", "double"}, "0.25\n"},
		{"bool", []string{"-f", path, "get", "enabled", "-t", "bool"}, "true\n"},
		{"from args", []string{"get", "host", "host=localhost"}, "localhost\n"},
		{"file overrides args", []string{"-f", path, "get", "port", "port=1"}, "8080\n"},
		{"lenient uint", []string{"get", "n", "-t", "uint", "n=12abc"}, "12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGet_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, _, err := execute(t, "get", "nope")
		assert.ErrorIs(t, err, kvconf.ErrKeyNotFound)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, _, err := execute(t, "get", "a", "not-a-pair")
		assert.ErrorIs(t, err, kvconf.ErrSyntax)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "--file", filepath.Join(t.TempDir(), "nope.conf"), "get", "a")
		var fe *kvconf.FileAccessError
		assert.True(t, errors.As(err, &fe))
	})

	t.Run("unknown type", func(t *testing.T) {
		_, _, err := execute(t, "get", "a", "-t", "complex", "a=1")
		assert.ErrorContains(t, err, "unknown type")
	})

	t.Run("no key", func(t *testing.T) {
		_, _, err := execute(t, "get")
		assert.Error(t, err)
	})
}

func TestAllowFlags(t *testing.T) {
	_, _, err := execute(t, "--allow", "host,port", "get", "host", "host=a", "colour=red")
	assert.ErrorIs(t, err, kvconf.ErrInvalidKey)

	out, _, err := execute(t, "--allow", "host", "--allow-option", "debug", "get", "host", "host=a", "--", "--debug")
	require.NoError(t, err)
	assert.Equal(t, "a\n", out)

	_, _, err = execute(t, "--allow", "host", "get", "host", "host=a", "--", "--debug")
	assert.ErrorIs(t, err, kvconf.ErrInvalidKey)
}

func TestSeq(t *testing.T) {
	out, _, err := execute(t, "seq", "s", "s=5:-1:1")
	require.NoError(t, err)
	assert.Equal(t, "5\n4\n3\n2\n1\n", out)

	out, _, err = execute(t, "seq", "s", "--type", "double", "s=2*2:20")
	require.NoError(t, err)
	assert.Equal(t, "2\n4\n8\n16\n", out)

	_, _, err = execute(t, "seq", "s", "s=5:1:1")
	assert.ErrorContains(t, err, "not a valid uint sequence")
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list", "l", "-t", "int", "l={5,4,3}")
	require.NoError(t, err)
	assert.Equal(t, "5\n4\n3\n", out)

	path := writeFile(t, "names={alpha, beta gamma}\n")
	out, _, err = execute(t, "-f", path, "list", "names")
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta gamma\n", out)

	out, _, err = execute(t, "list", "l", "l={}")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = execute(t, "list", "l", "l=5,4,3")
	assert.ErrorContains(t, err, "not a list")
}

func TestDump(t *testing.T) {
	path := writeFile(t, "host=db\n")

	out, _, err := execute(t, "-f", path, "dump", "port=80", "--", "--debug")
	require.NoError(t, err)
	assert.Equal(t, "--debug\nhost=db\nport=80\n", out)

	out, _, err = execute(t, "-f", path, "dump", "--format", "json", "--sources")
	require.NoError(t, err)
	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "db", got["host"]["value"])
	assert.Equal(t, "file:app.conf:1", got["host"]["source"])

	for _, format := range []string{"yaml", "toml"} {
		out, _, err = execute(t, "-f", path, "dump", "--format", format)
		require.NoError(t, err, format)
		assert.Contains(t, out, "host", format)
	}

	_, _, err = execute(t, "dump", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestVerboseLogging(t *testing.T) {
	path := writeFile(t, "a=1\n")

	_, stderr, err := execute(t, "-v", "-f", path, "get", "a")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config entry set")
	assert.Contains(t, stderr, "config file loaded")

	_, stderr, err = execute(t, "-f", path, "get", "a")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
