package main

import (
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/grit/cmd/ui"
	"github.com/utkarsh5026/grit/pkg/config"
	"github.com/utkarsh5026/grit/pkg/repository/sourcerepo"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var levelName string
	var list, unset bool

	cmd := &cobra.Command{
		Use:   "config [--level L] (--list | --unset <key> | <key> [value])",
		Short: "Get and set configuration values",
		Long: `Read a key's effective value, write it to a config file, or list every key
with the level it comes from. Files are JSON (comments allowed):

  repository  .git/grit.json
  user        ~/.config/grit/config.json
  system      /etc/grit/config.json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			start, err := opts.workingDir()
			if err != nil {
				return err
			}
			root, err := sourcerepo.Locate(start)
			if err != nil && !sourcerepo.IsNotRepository(err) {
				return err
			}
			cfg, err := opts.loadConfig(ctx, root)
			if err != nil {
				return err
			}

			level, err := config.ParseLevel(levelName)
			if err != nil {
				return err
			}
			if level == config.RepositoryLevel && root == "" && (unset || len(args) == 2) {
				return errors.New("not in a repository; use --level user or --level system")
			}

			out := cmd.OutOrStdout()
			switch {
			case list:
				printConfigTable(cmd, cfg.List())
				return nil
			case unset:
				if len(args) != 1 {
					return errors.New("--unset takes exactly one key")
				}
				return cfg.Unset(args[0], level)
			case len(args) == 2:
				if err := cfg.Set(args[0], args[1], level); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.SuccessMessage("set", fmt.Sprintf("%s = %s (%s)", config.NormalizeKey(args[0]), args[1], cfg.GetStore(level).Path())))
				return nil
			case len(args) == 1:
				entry := cfg.Get(args[0])
				if entry == nil {
					return fmt.Errorf("key %q is not set", args[0])
				}
				fmt.Fprintln(out, entry.Value)
				return nil
			default:
				return cmd.Help()
			}
		},
	}

	cmd.Flags().StringVar(&levelName, "level", config.RepositoryLevel.String(), "Config file to write (repository, user, system)")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List every key with its source")
	cmd.Flags().BoolVar(&unset, "unset", false, "Remove a key from the config file")

	return cmd
}

func printConfigTable(cmd *cobra.Command, entries []*config.ConfigEntry) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Key", "Value", "Level", "Source")
	for _, e := range entries {
		table.Append(ui.Cyan(e.Key), e.Value, e.Level.String(), e.Source.String())
	}
	table.Render()
}
