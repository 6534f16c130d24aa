package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/rpm-diff/internal/app"
	"github.com/olusolaa/rpm-diff/internal/config"
	apperrors "github.com/olusolaa/rpm-diff/internal/errors"
)

type rootFlags struct {
	cfgFile    string
	logLevel   string
	logFormat  string
	matcher    string
	noColor    bool
	xlsxOutput bool
}

func newRootCmd(v *viper.Viper, streams app.Streams) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "rpmdiff [--xlsx [output_path]] <package_list_A> <package_list_B>",
		Short: "Compares two lists of installed RPM packages.",
		Long: `rpmdiff reads two package lists (one name-version-release.arch per line)
and reports, for every package, whether it is identical in both lists (=),
present in both with a different version or arch (|), only in A (<) or only in B (>).

With --xlsx the report is written as CSV to output_path (default rpm_diff_result.csv).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(v, flags.cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := app.ParseInvocation(flags.xlsxOutput, args)
			if err != nil {
				return err
			}

			application, err := app.BuildApplicationFromViper(cmd.Context(), v, opts, streams)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
	cmd.SetOut(streams.Stdout)
	cmd.SetErr(streams.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.WrapUserFacing(err, apperrors.CodeUsage, err.Error(), "")
	})

	cmd.Flags().BoolVar(&flags.xlsxOutput, "xlsx", false, "Write the report as CSV to output_path instead of the console")

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.cfgFile, "config", "c", "", "Configuration file path (default is .rpmdiff.yaml in the current or home directory)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Override log format (text, json)")
	pf.StringVar(&flags.matcher, "matcher", "", "Override matching strategy (linear, indexed)")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored status symbols")

	v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))
	v.BindPFlag(config.KeyMatcher, pf.Lookup("matcher"))
	v.BindPFlag(config.KeyNoColor, pf.Lookup("no-color"))

	config.SetDefaults(v)
	v.SetEnvPrefix("RPMDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return cmd
}

func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".rpmdiff")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError,
			"failed to read config file", "Check the --config path and YAML syntax.")
	}
	return nil
}

// run executes the command and prints any failure to stderr. A non-nil
// return means the process should exit with status 1.
func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	userMsg, suggestion, _ := apperrors.GetUserFacingMessage(err)
	fmt.Fprintf(stderr, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(stderr, "Suggestion: %s\n", suggestion)
	}
	if apperrors.Is(err, apperrors.CodeUsage) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return err
}

func Execute(ctx context.Context) {
	streams := app.DefaultStreams()
	if err := run(ctx, newRootCmd(viper.GetViper(), streams), streams.Stderr); err != nil {
		os.Exit(1)
	}
}
