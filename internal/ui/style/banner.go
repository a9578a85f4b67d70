package style

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Iris).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().Foreground(Green)
)

// Banner renders a stage announcement inside a bordered box.
func Banner(msg string) string {
	return bannerStyle.Render(msg)
}

// Success renders a completion message with a check mark.
func Success(msg string) string {
	return successStyle.Render(Check + " " + msg)
}
