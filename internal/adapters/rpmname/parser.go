// Package rpmname splits installed-package lines of the form
// name-version-release.arch into their parts.
package rpmname

import (
	"strings"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/errors"
)

// DefaultMaxLineLength is the longest line kept verbatim; longer lines are
// truncated before splitting.
const DefaultMaxLineLength = 511

type Config struct {
	// MaxLineLength of 0 disables truncation.
	MaxLineLength int `yaml:"max_line_length" mapstructure:"max_line_length" validate:"gte=0"`
}

type Parser struct {
	maxLineLength int
}

func NewParser(cfg Config) *Parser {
	return &Parser{maxLineLength: cfg.MaxLineLength}
}

var defaultParser = NewParser(Config{MaxLineLength: DefaultMaxLineLength})

// Parse uses DefaultMaxLineLength.
func Parse(line string) (domain.PackageIdentifier, error) {
	return defaultParser.Parse(line)
}

// Normalize strips the line terminator and applies the length limit. The
// result is what ends up in PackageIdentifier.RawLine.
func (p *Parser) Normalize(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if p.maxLineLength > 0 && len(line) > p.maxLineLength {
		line = line[:p.maxLineLength]
	}
	return line
}

func (p *Parser) Parse(line string) (domain.PackageIdentifier, error) {
	raw := p.Normalize(line)

	lastDot := strings.LastIndexByte(raw, '.')
	if lastDot < 0 {
		return domain.PackageIdentifier{}, errors.New(errors.CodeIdentifierParse, "no .arch suffix")
	}
	arch := raw[lastDot+1:]
	nvr := raw[:lastDot]

	lastHyphen := strings.LastIndexByte(nvr, '-')
	if lastHyphen < 0 {
		return domain.PackageIdentifier{}, errors.New(errors.CodeIdentifierParse, "no release separator")
	}

	// Hyphens inside the name come first, so the split point is the last
	// hyphen found walking forward that still precedes the release one.
	split := -1
	for i := 0; i < lastHyphen; i++ {
		if nvr[i] == '-' {
			split = i
		}
	}
	if split < 0 {
		return domain.PackageIdentifier{}, errors.New(errors.CodeIdentifierParse, "no version separator")
	}
	if split == 0 {
		return domain.PackageIdentifier{}, errors.New(errors.CodeIdentifierParse, "empty package name")
	}

	return domain.PackageIdentifier{
		Name:    nvr[:split],
		Version: nvr[split+1:],
		Arch:    arch,
		RawLine: raw,
	}, nil
}
