// Package layout composes the protected pages: a sidebar with the
// navigation links next to a titled main area.
package layout

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/client/theme"
	"github.com/trademinutes/tmclient/internal/common"
)

const brand = "TradeMinutes"

// Link is one sidebar entry. Command is what the user types to follow it.
type Link struct {
	Label   string
	Route   string
	Command string
}

var Links = []Link{
	{Label: "Dashboard", Route: common.RouteDashboard, Command: "dashboard"},
	{Label: "My Profile", Route: common.RouteProfile, Command: "profile"},
	{Label: "Services", Route: common.RouteServices, Command: "services"},
	{Label: "Notifications", Route: common.RouteNotifications, Command: "notifications"},
	{Label: "Logout", Command: "logout"},
}

// Title derives the page header from a route path: the last segment with
// its first "-" turned into a space, every word capitalised.
// "/reset-password" gives "Reset Password".
func Title(path string) string {
	path = strings.TrimSuffix(path, "/")
	seg := path[strings.LastIndex(path, "/")+1:]
	seg = strings.Replace(seg, "-", " ", 1)

	words := strings.Split(seg, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Badge is the unread marker next to Notifications, "" when there is
// nothing unread.
func Badge(st theme.Styles, unread int) string {
	if unread <= 0 {
		return ""
	}
	label := fmt.Sprint(unread)
	if unread > 99 {
		label = "99+"
	}
	return st.Badge.Render(label)
}

func sidebar(st theme.Styles, current string, unread int) string {
	lines := []string{st.Title.Render(brand), ""}
	for _, l := range Links {
		style := st.Link
		marker := "  "
		if l.Route != "" && l.Route == current {
			style = st.ActiveLink
			marker = "> "
		}
		line := marker + style.Render(l.Label)
		if l.Route == common.RouteNotifications {
			if b := Badge(st, unread); b != "" {
				line += " " + b
			}
		}
		lines = append(lines, line, st.Muted.Render("    "+l.Command))
	}
	return st.Sidebar.Render(strings.Join(lines, "\n"))
}

// Render places body in the main area next to the sidebar.
func Render(st theme.Styles, at nav.Location, unread int, body string) string {
	title := Title(at.Path)
	if title == "" {
		title = brand
	}
	main := lipgloss.JoinVertical(lipgloss.Left,
		st.Header.Render(title),
		st.Content.Render(body),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar(st, at.Path, unread), main)
}
