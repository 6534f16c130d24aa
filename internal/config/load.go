package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/rpm-diff/internal/errors"
)

// Keys bound to command-line flags.
const (
	KeyLogLevel  = "settings.log_level"
	KeyLogFormat = "settings.log_format"
	KeyMatcher   = "settings.matcher"
	KeyReporter  = "settings.reporter"
	KeyNoColor   = "settings.reporter_config.text.no_color"
	KeyCSVPath   = "settings.reporter_config.csv.default_path"
	KeyMaxLine   = "settings.loader.max_line_length"
)

// SetDefaults registers every key of DefaultConfig so that environment
// variables are picked up by Unmarshal and unset flags do not shadow them.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig().Settings
	v.SetDefault(KeyLogLevel, string(d.LogLevel))
	v.SetDefault(KeyLogFormat, string(d.LogFormat))
	v.SetDefault(KeyMatcher, d.MatcherType)
	v.SetDefault(KeyReporter, d.ReporterType)
	v.SetDefault(KeyNoColor, d.Reporter.Text.NoColor)
	v.SetDefault(KeyCSVPath, d.Reporter.CSV.DefaultPath)
	v.SetDefault(KeyMaxLine, d.Loader.MaxLineLength)
}

// Load decodes v on top of DefaultConfig and validates the result.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to decode configuration", "Check the types of the values in your configuration file.")
	}
	cfg.Settings.MatcherType = strings.ToLower(strings.TrimSpace(cfg.Settings.MatcherType))
	cfg.Settings.ReporterType = strings.ToLower(strings.TrimSpace(cfg.Settings.ReporterType))

	if err := Validate(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(ctx context.Context, cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}

	var errorDetails strings.Builder
	errorDetails.WriteString("Configuration validation failed:")
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			errorDetails.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	} else {
		errorDetails.WriteString(" " + err.Error())
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, errorDetails.String(), "Please check your configuration file, environment or flags.")
}
