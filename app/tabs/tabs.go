package tabs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

// LoginSuccessPattern matches the page shown after a successful extension login.
const LoginSuccessPattern = "*://getpocket.com/extension_login_success"

var systemPrefixes = []string{
	"chrome://",
	"chrome-extension://",
	"chrome-search://",
}

// Tab is a browser tab as reported by a Host.
type Tab struct {
	ID     int    `json:"id"`
	Active bool   `json:"active"`
	URL    string `json:"url"`
}

// Host is the browser side of tab management.
type Host interface {
	Query(ctx context.Context, pattern string) ([]Tab, error)
	Remove(ctx context.Context, ids []int) error
}

// IsSystemLink reports whether link points at a browser-internal page that
// cannot be saved.
func IsSystemLink(link string) bool {
	return lo.SomeBy(systemPrefixes, func(prefix string) bool {
		return strings.HasPrefix(link, prefix)
	})
}

// IsSystemPage reports whether tab is the active tab on a system link.
func IsSystemPage(tab Tab) bool {
	return tab.Active && IsSystemLink(tab.URL)
}

// CloseLoginPage removes every tab showing the login success page and
// returns how many tabs were closed.
func CloseLoginPage(ctx context.Context, host Host) (int, error) {
	found, err := host.Query(ctx, LoginSuccessPattern)
	if err != nil {
		return 0, fmt.Errorf("failed to query login tabs: %w", err)
	}
	if len(found) == 0 {
		return 0, nil
	}

	ids := lo.Map(found, func(tab Tab, _ int) int { return tab.ID })
	if err := host.Remove(ctx, ids); err != nil {
		return 0, fmt.Errorf("failed to remove login tabs: %w", err)
	}

	slog.Debug("Closed login success tabs", "count", len(ids))
	return len(ids), nil
}
