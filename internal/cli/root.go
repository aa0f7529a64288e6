package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/demarcate/internal/config"
)

func Execute() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return NewRootCmd(cfg).Execute()
}

func NewRootCmd(cfg config.Config) *cobra.Command {
	var output string
	var outFmt OutputFormat
	var app *App

	output = string(OutputText)
	logLevel := cfg.LogLevel
	logFormat := cfg.LogFormat

	getApp := func() *App { return app }
	getOutput := func() OutputFormat { return outFmt }

	cmd := &cobra.Command{
		Use:           "demarcate",
		Short:         "Turn rendered HTML regions back into Markdown",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			parsedFmt, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			outFmt = parsedFmt
			if !requiresApp(cmd) {
				return nil
			}
			if app != nil {
				return nil
			}
			appCfg := cfg
			appCfg.LogLevel = logLevel
			appCfg.LogFormat = logFormat
			a, err := NewApp(appCfg, cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app = nil
		},
	}

	cmd.PersistentFlags().StringVarP(&output, "output", "o", output, "Output format: text, json")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", logFormat, "Log format: text, json")

	cmd.AddCommand(newConvertCmd(getApp, getOutput))
	cmd.AddCommand(newRegionsCmd(getApp, getOutput))
	cmd.AddCommand(newEditCmd(getApp, getOutput))

	return cmd
}

func parseOutputFormat(raw string) (OutputFormat, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch OutputFormat(s) {
	case OutputText, OutputJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected text|json)", raw)
	}
}

func requiresApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		name := c.Name()
		if name == "help" || name == "completion" {
			return false
		}
	}
	return true
}
