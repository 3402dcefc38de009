package ui

import (
	"fmt"
	"strings"
)

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	parts := []string{Green(IconCheckmark), Green(message)}
	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}
	return strings.Join(parts, " ")
}

// CommitInfo is what the log view shows for one commit.
type CommitInfo struct {
	Hash    string
	Author  string
	Date    string
	Message string
}

// FormatCommitDetailed formats a commit with full details in a box
func FormatCommitDetailed(commit CommitInfo) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%s %s\n", Yellow(IconCommit), Yellow(commit.Hash)))
	content.WriteString(fmt.Sprintf("%s %s\n", Cyan(IconAuthor), Cyan(commit.Author)))
	content.WriteString(fmt.Sprintf("%s %s\n", Magenta(IconDate), Magenta(commit.Date)))
	content.WriteString("\n" + commit.Message)

	return CommitBox(content.String())
}

// FormatCommitSeparator creates a separator between commits
func FormatCommitSeparator() string {
	return SeparatorStyle.Render(IconSeparator)
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(message)
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return Yellow(message)
}
