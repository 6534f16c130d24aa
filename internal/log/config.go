package log

import (
	"io"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// UnmarshalText accepts any casing and surrounding spaces; the value is
// validated later together with the rest of the configuration.
func (l *Level) UnmarshalText(text []byte) error {
	*l = Level(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func (f *Format) UnmarshalText(text []byte) error {
	*f = Format(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

type Config struct {
	Level  Level  `yaml:"level"`
	Format Format `yaml:"format"`
	// Output defaults to stderr; stdout is reserved for the report.
	Output io.Writer `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
	}
}
