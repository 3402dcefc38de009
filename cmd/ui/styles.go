package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorGreenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	ColorRedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ColorYellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	ColorBlueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Bold(true)
	ColorCyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	ColorMagentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Italic(true)

	// Layout styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F5FFF")).
			MarginBottom(1)

	CommitBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5FFF")).
			PaddingLeft(2).
			PaddingRight(2)

	SeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Icons
const (
	IconCommit    = "⊚"
	IconAuthor    = "👤"
	IconDate      = "📅"
	IconSeparator = "│"
	IconCheckmark = "✓"
)

func Green(s string) string {
	return ColorGreenStyle.Render(s)
}

func Red(s string) string {
	return ColorRedStyle.Render(s)
}

func Yellow(s string) string {
	return ColorYellowStyle.Render(s)
}

func Blue(s string) string {
	return ColorBlueStyle.Render(s)
}

func Cyan(s string) string {
	return ColorCyanStyle.Render(s)
}

func Magenta(s string) string {
	return ColorMagentaStyle.Render(s)
}

// Header renders a section title bar.
func Header(text string) string {
	return HeaderStyle.Render(text)
}

// CommitBox draws a rounded border around text.
func CommitBox(text string) string {
	return CommitBoxStyle.Render(text)
}
