package config

import (
	"github.com/olusolaa/rpm-diff/internal/adapters/matching/linear"
	"github.com/olusolaa/rpm-diff/internal/adapters/rpmname"
	"github.com/olusolaa/rpm-diff/internal/log"
	"github.com/olusolaa/rpm-diff/internal/reporting/csv"
	"github.com/olusolaa/rpm-diff/internal/reporting/text"
)

type Config struct {
	Settings SettingsConfig `yaml:"settings" mapstructure:"settings"`
}

type SettingsConfig struct {
	LogLevel     log.Level       `yaml:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    log.Format      `yaml:"log_format" mapstructure:"log_format" validate:"oneof=text json"`
	MatcherType  string          `yaml:"matcher" mapstructure:"matcher" validate:"oneof=linear indexed"`
	ReporterType string          `yaml:"reporter" mapstructure:"reporter" validate:"oneof=text json"`
	Loader       rpmname.Config  `yaml:"loader" mapstructure:"loader"`
	Reporter     ReporterConfigs `yaml:"reporter_config" mapstructure:"reporter_config"`
}

type ReporterConfigs struct {
	Text text.Config `yaml:"text" mapstructure:"text"`
	CSV  csv.Config  `yaml:"csv" mapstructure:"csv"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     log.LevelWarn,
			LogFormat:    log.FormatText,
			MatcherType:  linear.MatcherTypeLinear,
			ReporterType: text.ReporterTypeText,
			Loader:       rpmname.Config{MaxLineLength: rpmname.DefaultMaxLineLength},
			Reporter: ReporterConfigs{
				Text: text.Config{NoColor: false},
				CSV:  csv.Config{DefaultPath: csv.DefaultPath},
			},
		},
	}
}

func (c *Config) LogConfig() log.Config {
	return log.Config{Level: c.Settings.LogLevel, Format: c.Settings.LogFormat}
}
