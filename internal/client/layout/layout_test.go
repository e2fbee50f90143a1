package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/client/theme"
)

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"/dashboard":         "Dashboard",
		"/reset-password":    "Reset Password",
		"/profile/edit":      "Edit",
		"/book-a-session":    "Book A-session",
		"/forgot-password/":  "Forgot Password",
		"/services/walk-dog": "Walk Dog",
		"/":                  "",
		"":                   "",
		"/ümlaut":            "Ümlaut",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Title(in))
		})
	}
}

func TestBadge(t *testing.T) {
	st := theme.NewStyles(theme.LightPalette())

	assert.Empty(t, Badge(st, 0))
	assert.Contains(t, Badge(st, 3), "3")
	assert.Contains(t, Badge(st, 150), "99+")
}

func TestRender(t *testing.T) {
	st := theme.NewStyles(theme.DarkPalette())

	out := Render(st, nav.Parse("/notifications"), 2, "No notifications")

	for _, want := range []string{"TradeMinutes", "Dashboard", "My Profile", "Services", "Notifications", "Logout", "No notifications", "2"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "> ")
}
