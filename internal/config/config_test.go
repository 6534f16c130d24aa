package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/olusolaa/rpm-diff/internal/errors"
	"github.com/olusolaa/rpm-diff/internal/log"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())
	}
	return v
}

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, Validate(context.Background(), DefaultConfig()))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(context.Background(), newViper(t, `
settings:
  log_level: DEBUG
  log_format: Json
  matcher: indexed
  reporter: json
  loader:
    max_line_length: 0
  reporter_config:
    text:
      no_color: true
    csv:
      default_path: diff.csv
`))
	require.NoError(t, err)

	s := cfg.Settings
	assert.Equal(t, log.LevelDebug, s.LogLevel)
	assert.Equal(t, log.FormatJSON, s.LogFormat)
	assert.Equal(t, "indexed", s.MatcherType)
	assert.Equal(t, "json", s.ReporterType)
	assert.Equal(t, 0, s.Loader.MaxLineLength)
	assert.True(t, s.Reporter.Text.NoColor)
	assert.Equal(t, "diff.csv", s.Reporter.CSV.DefaultPath)
	assert.Equal(t, log.Config{Level: log.LevelDebug, Format: log.FormatJSON}, cfg.LogConfig())
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("RPMDIFF_SETTINGS_MATCHER", "indexed")
	t.Setenv("RPMDIFF_SETTINGS_LOADER_MAX_LINE_LENGTH", "1024")

	v := newViper(t, "")
	v.SetEnvPrefix("RPMDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := Load(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, "indexed", cfg.Settings.MatcherType)
	assert.Equal(t, 1024, cfg.Settings.Loader.MaxLineLength)
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := Load(context.Background(), newViper(t, `
settings:
  matcher: fuzzy
  loader:
    max_line_length: -1
`))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeConfigValidation, appErr.Code)
	assert.True(t, appErr.IsUserFacing)
	assert.Contains(t, appErr.Message, "Config.Settings.MatcherType")
	assert.Contains(t, appErr.Message, "Config.Settings.Loader.MaxLineLength")
}

func TestLoad_DecodeFailure(t *testing.T) {
	_, err := Load(context.Background(), newViper(t, `
settings:
  loader:
    max_line_length: [1, 2]
`))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigParseError))
}
