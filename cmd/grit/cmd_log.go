package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/grit/cmd/ui"
	"github.com/utkarsh5026/grit/pkg/commitmanager"
)

func newLogCmd(opts *globalOptions) *cobra.Command {
	var limit int
	var useTable bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit logs",
		Long: `Show the commit logs.
Displays the commit history starting from the current HEAD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.openSession(ctx)
			if err != nil {
				return err
			}

			history, err := commitmanager.NewManager(s.repo).History(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, ui.WarningMessage("No commits yet"))
				return nil
			}

			if useTable {
				displayCommitsAsTable(out, history)
			} else {
				displayCommitsDetailed(out, history)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "max-count", "n", 20, "Limit the number of commits to show (0 for all)")
	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")

	return cmd
}

// displayCommitsDetailed shows one box per commit.
func displayCommitsDetailed(out io.Writer, history []*commitmanager.HistoryEntry) {
	fmt.Fprintln(out, ui.Header(" Commit History "))

	for i, entry := range history {
		c := entry.Commit
		fmt.Fprintln(out, ui.FormatCommitDetailed(ui.CommitInfo{
			Hash:    entry.Hash.String(),
			Author:  fmt.Sprintf("%s <%s>", c.Author.Name, c.Author.Email),
			Date:    c.Author.When.Format(time.RFC1123Z),
			Message: strings.TrimRight(c.Message, "\n"),
		}))

		if i < len(history)-1 {
			fmt.Fprintln(out, "  "+ui.FormatCommitSeparator())
		}
	}
}

// displayCommitsAsTable shows commits in a compact table format
func displayCommitsAsTable(out io.Writer, history []*commitmanager.HistoryEntry) {
	fmt.Fprintln(out, ui.Header(" Commit History "))

	table := tablewriter.NewWriter(out)
	table.Header("Commit", "Author", "Date", "Message")

	for _, entry := range history {
		c := entry.Commit
		message := c.Subject()
		if len(message) > 50 {
			message = message[:47] + "..."
		}

		table.Append(
			ui.Yellow(entry.Hash.Short().String()),
			ui.Cyan(c.Author.Name),
			ui.Magenta(c.Author.When.Format("2006-01-02 15:04")),
			message,
		)
	}

	table.Render()
}
