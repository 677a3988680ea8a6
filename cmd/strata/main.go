// Command strata parses lexed source files and reports their syntax trees and
// diagnostics.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errDiagnosed is returned when a command has already reported its failure
// as diagnostics.
var errDiagnosed = errors.New("diagnostics reported")

type app struct {
	v      *viper.Viper
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "strata",
		Short:         "Parse Strata token streams into concrete syntax trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.strata.yaml)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Log parser recovery to stderr")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(newParseCmd(a), newTokensCmd(a), newVersionCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := a.loadConfig(); err != nil {
		return err
	}
	if a.v.GetBool("no-color") {
		color.NoColor = true
	}
	level := zerolog.WarnLevel
	if a.v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     cmd.ErrOrStderr(),
		NoColor: color.NoColor,
	}).Level(level).With().Timestamp().Logger()
	return nil
}

func (a *app) loadConfig() error {
	a.v.SetEnvPrefix("STRATA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(".strata")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of strata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				format, _ := cmd.Flags().GetString("output")
				if format != "json" {
					return fmt.Errorf("unknown output format: %s", format)
				}
				return a.writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "strata %s (commit %s, built %s)\n", version, commit, date)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Set the output format (json)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDiagnosed) {
			fatal(err)
		}
		os.Exit(1)
	}
}
