package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/rpm-diff/internal/app"
	apperrors "github.com/olusolaa/rpm-diff/internal/errors"
)

type cli struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (c *cli) exec(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd(viper.New(), app.Streams{Stdout: &c.stdout, Stderr: &c.stderr})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return run(context.Background(), cmd, &c.stderr)
}

func writeLists(t *testing.T) (dir, a, b string) {
	t.Helper()
	dir = t.TempDir()
	a = filepath.Join(dir, "a.txt")
	b = filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("foo-1.0-1.x86_64\nmy-tool-1.2-3.noarch\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("foo-2.0-1.x86_64\n"), 0o644))
	return dir, a, b
}

func TestRoot_ConsoleMode(t *testing.T) {
	_, a, b := writeLists(t)
	var c cli

	require.NoError(t, c.exec(t, "--no-color", a, b))

	out := c.stdout.String()
	assert.Contains(t, out, "Loaded 2 packages from "+a+"\n")
	assert.Contains(t, out, "Loaded 1 packages from "+b+"\n")
	assert.Contains(t, out, "foo-1.0-1.x86_64\t|\tfoo-2.0-1.x86_64\n")
	assert.Contains(t, out, "my-tool-1.2-3.noarch\t<\t\n")
	assert.Empty(t, c.stderr.String())
}

func TestRoot_XLSXMode(t *testing.T) {
	dir, a, b := writeLists(t)
	out := filepath.Join(dir, "custom.csv")
	var c cli

	require.NoError(t, c.exec(t, "--xlsx", out, a, b))

	assert.Contains(t, c.stdout.String(), "Results saved to "+out+"\n")
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Package A,Status,Package B\n"+
		`"foo-1.0-1.x86_64","|","foo-2.0-1.x86_64"`+"\n"+
		`"my-tool-1.2-3.noarch","<",""`+"\n", string(content))
}

func TestRoot_XLSXDefaultPath(t *testing.T) {
	dir, a, b := writeLists(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	var c cli
	require.NoError(t, c.exec(t, "--xlsx", a, b))
	assert.FileExists(t, filepath.Join(dir, "rpm_diff_result.csv"))
	assert.Contains(t, c.stdout.String(), "Results saved to rpm_diff_result.csv\n")
}

func TestRoot_UsageErrors(t *testing.T) {
	_, a, b := writeLists(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"one file", []string{a}},
		{"three files without xlsx", []string{a, b, b}},
		{"xlsx with one file", []string{"--xlsx", a}},
		{"xlsx with four args", []string{"--xlsx", "out.csv", a, b, b}},
		{"unknown flag", []string{"--pdf", a, b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c cli
			err := c.exec(t, tt.args...)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CodeUsage))
			assert.Contains(t, c.stderr.String(), "ERROR: ")
			assert.Contains(t, c.stderr.String(), "Usage:")
			assert.Empty(t, c.stdout.String())
		})
	}
}

func TestRoot_MissingInputFile(t *testing.T) {
	dir, a, _ := writeLists(t)
	missing := filepath.Join(dir, "missing.txt")
	var c cli

	err := c.exec(t, a, missing)
	require.Error(t, err)
	assert.Contains(t, c.stderr.String(), "ERROR: cannot open file "+missing+"\n")
	assert.NotContains(t, c.stderr.String(), "Usage:")
}

func TestRoot_ConfigFile(t *testing.T) {
	dir, a, b := writeLists(t)
	cfg := filepath.Join(dir, "rpmdiff.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("settings:\n  reporter: json\n  matcher: indexed\n"), 0o644))
	var c cli

	require.NoError(t, c.exec(t, "--config", cfg, a, b))
	assert.Contains(t, c.stdout.String(), `"differs": 1`)

	var bad cli
	err := bad.exec(t, "--config", filepath.Join(dir, "nope.yaml"), a, b)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigReadError))
}

func TestRoot_MatcherFlagValidation(t *testing.T) {
	_, a, b := writeLists(t)
	var c cli

	err := c.exec(t, "--matcher", "fuzzy", a, b)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
	assert.Contains(t, c.stderr.String(), "Configuration validation failed")
}
