package colormode

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const (
	Light = "light"
	Dark  = "dark"
)

const (
	QueryDark         = "(prefers-color-scheme: dark)"
	QueryLight        = "(prefers-color-scheme: light)"
	QueryNoPreference = "(prefers-color-scheme: no-preference)"
)

// MediaMatcher evaluates a media query against the host environment.
type MediaMatcher interface {
	Matches(query string) bool
}

// ModeClass returns the class name matching the OS color mode. Anything other
// than an explicit dark preference renders light.
func ModeClass(m MediaMatcher) string {
	if m == nil {
		return Light
	}

	isDark := m.Matches(QueryDark)
	isLight := m.Matches(QueryLight)
	isNotSpecified := m.Matches(QueryNoPreference)
	hasNoSupport := !isDark && !isLight && !isNotSpecified

	mode := Light
	if isDark {
		mode = Dark
	}
	// fallback if no system setting
	if isNotSpecified || hasNoSupport {
		mode = Light
	}
	return mode
}

// StaticMatcher answers queries from a fixed preference such as a config
// value: "dark", "light" or "no-preference". Unknown values match nothing.
type StaticMatcher string

func (s StaticMatcher) Matches(query string) bool {
	switch strings.ToLower(string(s)) {
	case "dark", "prefer-dark":
		return query == QueryDark
	case "light", "prefer-light":
		return query == QueryLight
	case "no-preference", "default":
		return query == QueryNoPreference
	default:
		return false
	}
}

// TerminalMatcher derives the preference from the terminal background.
// Detection runs once, on first use.
type TerminalMatcher struct {
	once   sync.Once
	detect func() bool
	dark   bool
}

// NewTerminalMatcher creates a matcher that probes the terminal background
// on first use.
func NewTerminalMatcher() *TerminalMatcher {
	return &TerminalMatcher{detect: lipgloss.HasDarkBackground}
}

func (t *TerminalMatcher) Matches(query string) bool {
	t.once.Do(func() {
		if t.detect != nil {
			t.dark = t.detect()
		}
	})

	switch query {
	case QueryDark:
		return t.dark
	case QueryLight:
		return !t.dark
	default:
		return false
	}
}

// FromPreference picks a matcher for a configured preference. "auto" and ""
// fall back to terminal detection.
func FromPreference(pref string) MediaMatcher {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "", "auto":
		return NewTerminalMatcher()
	default:
		return StaticMatcher(pref)
	}
}
