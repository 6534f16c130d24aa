package app

import (
	"fmt"

	"github.com/olusolaa/rpm-diff/internal/errors"
)

// RunOptions is the parsed form of `[--xlsx [output_path]] <file_A> <file_B>`.
type RunOptions struct {
	PathA      string
	PathB      string
	WriteCSV   bool
	OutputPath string // empty means the configured default
}

// ParseInvocation maps the positional arguments onto RunOptions. Plain mode
// takes exactly two arguments; CSV mode takes two, or three with the
// output path first.
func ParseInvocation(writeCSV bool, args []string) (RunOptions, error) {
	switch {
	case !writeCSV && len(args) == 2:
		return RunOptions{PathA: args[0], PathB: args[1]}, nil
	case writeCSV && len(args) == 2:
		return RunOptions{PathA: args[0], PathB: args[1], WriteCSV: true}, nil
	case writeCSV && len(args) == 3:
		return RunOptions{OutputPath: args[0], PathA: args[1], PathB: args[2], WriteCSV: true}, nil
	}

	expected := "exactly 2"
	if writeCSV {
		expected = "2 or 3"
	}
	return RunOptions{}, errors.NewUserFacing(errors.CodeUsage,
		fmt.Sprintf("expected %s arguments, got %d", expected, len(args)), "")
}
