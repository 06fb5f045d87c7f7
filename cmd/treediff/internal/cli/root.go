// Package cli wires the treediff commands: flags and configuration through
// viper, logging through slog and lumberjack.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const rootLongDescription = `treediff compares two ordered labeled trees and prints the cheapest
sequence of relabels, insertions and deletions turning the first into the
second.

Inputs are read by extension:
  - .md, .markdown      Markdown document structure
  - .yaml, .yml, .json  tree documents, e.g. "A: [B, {C: [D]}]"
  - anything else       bracket notation, e.g. "{A{B}{C{D}}}"

Settings are read from ./treediff.yaml and TREEDIFF_* environment variables.`

// app holds the state shared by the commands of one root.
type app struct {
	v       *viper.Viper
	log     *slog.Logger
	closer  io.Closer
	cfgPath string
}

// NewRootCmd builds the command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: newConfig(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:          "treediff",
		Short:        "Ordered tree edit distance",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			explicit := cmd.Flags().Changed(configFlagName)
			if err := readConfig(a.v, a.cfgPath, explicit); err != nil {
				return fmt.Errorf("read config %s: %w", a.cfgPath, err)
			}

			a.log, a.closer = configureLogger(a.v)
			a.log.Debug("command started", "command", cmd.CommandPath(), "config", a.v.ConfigFileUsed())

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, configFlagName, configFileName, "configuration file")
	root.PersistentFlags().BoolP(verboseFlagName, "v", false, "log at debug level")
	bindFlag(a.v, root.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
	root.PersistentFlags().String(logFileFlagName, defaultLogFilename, "log file (rotated)")
	bindFlag(a.v, root.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
	root.PersistentFlags().Bool(textFlagName, false, "label Markdown text nodes with their content")
	bindFlag(a.v, root.PersistentFlags().Lookup(textFlagName), markdownTextKey)

	root.AddCommand(newDiffCmd(a), newShowCmd(a), newVersionCmd())

	return root
}

// bindFlag wires a flag to a viper key so config and env values feed it.
func bindFlag(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(v.BindPFlag(key, flag))
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
