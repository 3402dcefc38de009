package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/grit/cmd/ui"
	"github.com/utkarsh5026/grit/pkg/commitmanager"
	"github.com/utkarsh5026/grit/pkg/repository/ignore"
)

func newCommitCmd(opts *globalOptions) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit -m <message>",
		Short: "Record the workspace as a new commit",
		Long: `Snapshot every file at the top level of the workspace into a tree, write a
commit on top of HEAD and move HEAD to it.

The author and committer come from configuration: author.name/author.email
(or GIT_AUTHOR_NAME/GIT_AUTHOR_EMAIL), committer.* likewise, falling back to
user.name/user.email. Names listed in core.ignore are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.openSession(ctx)
			if err != nil {
				return err
			}

			filter := ignore.Default().With(s.typed.IgnoreNames()...)
			mgr := commitmanager.NewManager(s.repo, commitmanager.WithIgnore(filter))

			result, err := mgr.Commit(ctx, commitmanager.CommitOptions{
				Message:  message,
				Identity: s.typed,
			})
			if err != nil {
				return err
			}

			root := ""
			if result.Commit.IsRoot() {
				root = " (root-commit)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s [%s%s] %s\n",
				ui.Green(ui.IconCommit),
				ui.Yellow(result.Hash.Short().String()),
				root,
				ui.Cyan(result.Commit.Subject()))
			fmt.Fprintf(out, "%s %s <%s>, %d file(s)\n",
				ui.Cyan(ui.IconAuthor),
				ui.Blue(result.Commit.Author.Name),
				ui.Blue(result.Commit.Author.Email),
				result.Files)
			if result.Tree.IsEmpty() {
				fmt.Fprintln(out, ui.WarningMessage("no files in the workspace; committed the empty tree"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.MarkFlagRequired("message")

	return cmd
}
