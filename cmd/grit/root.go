package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/grit/pkg/common/logger"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	logLevel  string
	logFormat string
	verbose   bool
	configs   []string
	dir       string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "grit",
		Short:         "grit - a git-compatible object database",
		Long:          getBanner(),
		Version:       fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, opts)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")
	flags.StringArrayVarP(&opts.configs, "config", "c", nil, "Override a configuration value (key=value)")
	flags.StringVarP(&opts.dir, "directory", "C", "", "Run as if started in this directory")

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newCommitCmd(opts))
	rootCmd.AddCommand(newLogCmd(opts))
	rootCmd.AddCommand(newCatFileCmd(opts))
	rootCmd.AddCommand(newRevParseCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func getBanner() string {
	return `
   ██████╗ ██████╗ ██╗████████╗
  ██╔════╝ ██╔══██╗██║╚══██╔══╝
  ██║  ███╗██████╔╝██║   ██║
  ██║   ██║██╔══██╗██║   ██║
  ╚██████╔╝██║  ██║██║   ██║
   ╚═════╝ ╚═╝  ╚═╝╚═╝   ╚═╝

  A content-addressable object database that writes git-compatible
  blobs, trees and commits.

  Get started with: grit init
  Record a snapshot: grit commit -m "message"
  Need help? Run:   grit --help
`
}

func setupLogging(cmd *cobra.Command, opts *globalOptions) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.verbose {
		level = logger.LevelDebug
	}

	format, err := logger.ParseFormat(opts.logFormat)
	if err != nil {
		return err
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}
