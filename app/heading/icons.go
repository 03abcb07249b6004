package heading

import (
	"github.com/charmbracelet/lipgloss"
)

type Icon int

const (
	ErrorIcon Icon = iota
	FacebookIcon
	InstagramIcon
	PocketLogoIcon
	SettingsIcon
	SpinnerIcon
	TwitterIcon
)

var iconGlyphs = map[Icon]string{
	ErrorIcon:      "!",
	FacebookIcon:   "f",
	InstagramIcon:  "◎",
	PocketLogoIcon: "◆",
	SettingsIcon:   "⚙",
	SpinnerIcon:    "◌",
	TwitterIcon:    "t",
}

var iconNames = map[Icon]string{
	ErrorIcon:      "error",
	FacebookIcon:   "facebook",
	InstagramIcon:  "instagram",
	PocketLogoIcon: "pocket-logo",
	SettingsIcon:   "settings",
	SpinnerIcon:    "spinner",
	TwitterIcon:    "twitter",
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return "unknown"
}

func (i Icon) Glyph() string {
	return iconGlyphs[i]
}

// Render draws the icon glyph with style, the terminal counterpart of
// wrapping an SVG in a sized icon container.
func (i Icon) Render(style lipgloss.Style) string {
	return style.Render(i.Glyph())
}
