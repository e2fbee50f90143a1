package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trademinutes/tmclient/internal/client/client"
	"github.com/trademinutes/tmclient/internal/client/layout"
	"github.com/trademinutes/tmclient/internal/client/models"
	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/client/session"
	"github.com/trademinutes/tmclient/internal/common"
)

// maxMounts bounds the redirects followed after one command.
const maxMounts = 4

var protectedRoutes = map[string]bool{
	common.RouteDashboard:     true,
	common.RouteProfile:       true,
	common.RouteEditProfile:   true,
	common.RouteNotifications: true,
}

type reward struct {
	Title string
	Cost  int
}

var rewards = []reward{
	{"$10 Discount Coupon", 100},
	{"1-on-1 Mentorship Call", 150},
	{"Premium Course Access", 200},
}

// settle runs queued follow-ups, then mounts the current route if it
// changed since the last mount. Redirects issued while mounting are
// followed.
func (a *App) settle(ctx context.Context) {
	pending := a.pending
	a.pending = nil
	for _, p := range pending {
		a.sleep(p.d)
		p.fn()
	}

	for i := 0; i < maxMounts; i++ {
		loc := a.router.Current()
		if loc.String() == a.mounted {
			return
		}
		a.mounted = loc.String()
		a.mount(ctx, loc)
	}
}

func (a *App) mount(ctx context.Context, loc nav.Location) {
	if protectedRoutes[loc.Path] {
		a.mountProtected(ctx, loc)
		return
	}
	// Public pages sit outside the shell; polling only runs inside it.
	a.poller.Stop()

	st := a.theme.Styles()
	switch {
	case loc.Path == common.RouteHome:
		a.println(st.Title.Render("TradeMinutes"))
		a.println("Trade your time and skills with students nearby.")
		a.println(st.Muted.Render("Browse with 'services', or 'login' / 'register' to get started."))

	case loc.Path == common.RouteLogin:
		a.println(st.Title.Render("Log in"))
		a.println(st.Muted.Render("No account yet? Type 'register'. Got a reset link? Type 'reset <token>'."))

	case loc.Path == common.RouteRegister:
		a.println(st.Title.Render("Register"))

	case loc.Path == common.RouteResetPassword:
		a.println(st.Title.Render("Reset Password"))

	case loc.Path == common.RouteServices:
		a.renderServices()

	case strings.HasPrefix(loc.Path, common.RouteServices+"/"):
		a.renderService(strings.TrimPrefix(loc.Path, common.RouteServices+"/"))

	default:
		a.println("Page not found:", loc.Path)
	}
}

func (a *App) mountProtected(ctx context.Context, loc nav.Location) {
	p, err := a.guard.Check(ctx)
	if err != nil {
		a.profile = nil
		a.poller.Stop()
		a.println(a.theme.Styles().Error.Render(guardMessage(err)))
		return
	}
	a.profile = &p
	a.poller.Start(ctx)

	var body string
	switch loc.Path {
	case common.RouteDashboard:
		body = a.dashboardBody(p)
	case common.RouteProfile, common.RouteEditProfile:
		body = a.profileBody(p)
	case common.RouteNotifications:
		if !a.notes.Loaded() {
			if err := a.notes.Refresh(ctx); err != nil {
				a.log.Warn(ctx, "fetching notifications failed", "error", err)
			}
		}
		body = a.notificationsBody()
	}
	a.println(layout.Render(a.theme.Styles(), loc, a.notes.UnreadCount(), body))
}

// guardMessage tells a missing session apart from a rejected or failed
// profile fetch. Every case ends on the login page.
func guardMessage(err error) string {
	var nonJSON *client.NonJSONResponseError
	switch {
	case errors.Is(err, session.ErrAuthMissing):
		return "You are not logged in."
	case errors.Is(err, client.ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, client.ErrUnavailable):
		return "The server is unavailable right now. Please log in again later."
	case errors.As(err, &nonJSON):
		return "Unexpected response from server: " + nonJSON.Error()
	default:
		return "Could not load your profile: " + err.Error()
	}
}

func (a *App) dashboardBody(p models.Profile) string {
	st := a.theme.Styles()
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", st.Title.Render("Welcome back, "+p.DisplayName()+"!"))
	fmt.Fprintf(&b, "%s\n", p.Email)
	if school := p.School(); school != "" {
		fmt.Fprintf(&b, "%s\n", school)
	}

	b.WriteString("\n" + st.Title.Render("Skills & Interests") + "\n")
	if skills := a.onboarding.Items(); len(skills) > 0 {
		b.WriteString(strings.Join(skills, ", ") + "\n")
	} else {
		b.WriteString(st.Muted.Render("None yet. Add one with 'skills add <skill>'.") + "\n")
	}

	b.WriteString("\n" + st.Title.Render("Nearby") + "\n")
	for _, l := range a.catalog.Locations() {
		fmt.Fprintf(&b, "%-16s %s\n", l.Label, st.Muted.Render(l.OSMLink()))
	}

	b.WriteString("\n" + st.Title.Render("Rewards") + "\n")
	for _, r := range rewards {
		fmt.Fprintf(&b, "%-24s %d credits\n", r.Title, r.Cost)
	}

	fmt.Fprintf(&b, "\nUnread notifications: %d", a.notes.UnreadCount())
	return b.String()
}

func (a *App) profileBody(p models.Profile) string {
	st := a.theme.Styles()
	rows := [][2]string{
		{"Name", p.Name},
		{"Email", p.Email},
		{"College", p.School()},
		{"Program", p.Program},
		{"Year of Study", p.YearOfStudy},
		{"Phone", p.Phone},
		{"Bio", p.Bio},
		{"Skills", strings.Join(p.Skills, ", ")},
	}

	var b strings.Builder
	for _, r := range rows {
		v := r[1]
		if v == "" {
			v = st.Muted.Render("-")
		}
		fmt.Fprintf(&b, "%-14s %s\n", r[0]+":", v)
	}
	b.WriteString(st.Muted.Render("Type 'edit' to update your profile."))
	return b.String()
}

func (a *App) notificationsBody() string {
	st := a.theme.Styles()
	items := a.notes.List()

	if err := a.notes.Err(); err != nil && !a.notes.Loaded() {
		return st.Error.Render("Failed to load notifications")
	}
	if len(items) == 0 {
		return st.Muted.Render("No notifications")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d unread\n\n", a.notes.UnreadCount())
	for _, n := range items {
		marker := "○"
		if !n.Read {
			marker = "●"
		}
		kind := st.Message
		if n.Type == models.NotificationBooking {
			kind = st.Booking
		}
		title := n.Title
		if a.notes.Pending(n.ID) {
			title += " " + st.Muted.Render("(syncing)")
		}
		fmt.Fprintf(&b, "%s %s %s\n", marker, kind.Render("["+string(n.Type)+"]"), title)
		if n.Message != "" {
			fmt.Fprintf(&b, "    %s\n", n.Message)
		}
		fmt.Fprintf(&b, "    %s\n", st.Muted.Render(fmt.Sprintf("id %s · %s", n.ID, n.Timestamp.Local().Format("2006-01-02 15:04"))))
	}
	b.WriteString(st.Muted.Render("read <id> marks one as read, readall marks all."))
	return b.String()
}
