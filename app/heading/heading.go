package heading

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lysyi3m/pocket-glue/app/colormode"
)

// Theme holds the heading colors for one color mode.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Error      lipgloss.Color
}

var (
	lightTheme = Theme{
		Background: lipgloss.Color("#E8F7F6"),
		Foreground: lipgloss.Color("#1A1A1A"),
		Accent:     lipgloss.Color("#EF4056"),
		Error:      lipgloss.Color("#C62828"),
	}
	darkTheme = Theme{
		Background: lipgloss.Color("#1F3B39"),
		Foreground: lipgloss.Color("#F2F2F2"),
		Accent:     lipgloss.Color("#EF4056"),
		Error:      lipgloss.Color("#FF8A80"),
	}
)

func ThemeFor(mode string) Theme {
	if mode == colormode.Dark {
		return darkTheme
	}
	return lightTheme
}

const horizontalPadding = 2

// Render draws the heading bar: logo and status copy on the left, the remove
// action on the right, spread over width columns when there is room.
func Render(status SaveStatus, mode string, width int) string {
	theme := ThemeFor(mode)

	base := lipgloss.NewStyle().
		Background(theme.Background).
		Foreground(theme.Foreground)

	logo := PocketLogoIcon.Render(base.Foreground(theme.Accent))
	if status.Pending() {
		logo = SpinnerIcon.Render(base.Foreground(theme.Accent))
	}

	saveBlock := base.Bold(true)
	if status.Failed() {
		saveBlock = saveBlock.Foreground(theme.Error)
	}

	left := logo
	if text := status.Copy(); text != "" {
		left += base.Render(" ") + saveBlock.Render(text)
	}
	right := base.Underline(true).Render("Remove")

	gap := width - 2*horizontalPadding - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return base.
		Padding(0, horizontalPadding).
		Render(left + base.Render(strings.Repeat(" ", gap)) + right)
}
