package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/grit/cmd/ui"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
	"github.com/utkarsh5026/grit/pkg/repository/sourcerepo"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create an empty repository",
		Long: `Create .git, .git/objects and .git/refs in the given directory (default: the
current one). Running init in an existing repository keeps its objects and HEAD.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := opts.workingDir()
			if err != nil {
				return err
			}
			path := base.String()
			if len(args) > 0 {
				path = args[0]
				if !filepath.IsAbs(path) {
					path = filepath.Join(base.String(), path)
				}
			}

			repoPath, err := scpath.NewRepositoryPath(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			existed, err := sourcerepo.RepositoryExists(repoPath)
			if err != nil {
				return err
			}
			repo, err := sourcerepo.Initialize(repoPath)
			if err != nil {
				return fmt.Errorf("failed to initialize repository: %w", err)
			}

			message := "Initialized empty Git repository in"
			if existed {
				message = "Reinitialized existing Git repository in"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMessage(message, repo.SourceDirectory().String()+string(filepath.Separator)))
			return nil
		},
	}
	return cmd
}
