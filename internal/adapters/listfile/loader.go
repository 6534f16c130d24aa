// Package listfile loads plain-text package lists, one identifier per line.
package listfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olusolaa/rpm-diff/internal/adapters/rpmname"
	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
	"github.com/olusolaa/rpm-diff/internal/errors"
)

const LoaderTypeListFile = "listfile"

type Loader struct {
	parser *rpmname.Parser
	logger ports.Logger
}

func NewLoader(cfg rpmname.Config, logger ports.Logger) *Loader {
	return &Loader{
		parser: rpmname.NewParser(cfg),
		logger: logger.WithFields(map[string]any{"component": "loader", "type": LoaderTypeListFile}),
	}
}

func (l *Loader) Load(ctx context.Context, path string) (domain.PackageList, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.PackageList{}, errors.WrapUserFacing(err, errors.CodeFileOpen,
			fmt.Sprintf("cannot open file %s", path), "Check that the package list exists and is readable.")
	}
	defer f.Close()

	list, err := l.read(ctx, path, f)
	if err != nil {
		return domain.PackageList{}, err
	}

	l.logger.Debugf(ctx, "Loaded %d packages from %s (%d blank, %d malformed lines skipped)",
		list.Loaded(), path, list.Blank, list.Malformed)
	return list, nil
}

func (l *Loader) read(ctx context.Context, path string, r io.Reader) (domain.PackageList, error) {
	list := domain.PackageList{Source: path, Packages: make([]domain.PackageIdentifier, 0)}
	br := bufio.NewReader(r)
	lineNo := 0

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return domain.PackageList{}, errors.WrapUserFacing(readErr, errors.CodeFileRead,
				fmt.Sprintf("failed to read packages from %s", path), "")
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNo++

		if l.parser.Normalize(line) == "" {
			list.Blank++
		} else if pkg, err := l.parser.Parse(line); err != nil {
			list.Malformed++
			l.logger.Debugf(ctx, "Skipping %s:%d: %v", path, lineNo, err)
		} else {
			list.Packages = append(list.Packages, pkg)
		}

		if readErr == io.EOF {
			break
		}
	}

	return list, nil
}
