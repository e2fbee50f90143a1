package cli

import (
	"context"

	"github.com/trademinutes/tmclient/internal/common"
)

// MarkRead marks one notification read. The change shows at once; the
// service is told in the background.
func (a *App) MarkRead(ctx context.Context, id string) error {
	if !a.notes.MarkAsRead(ctx, id) {
		a.println("Nothing to mark:", id)
		return nil
	}
	a.printf("Marked %s as read. %d unread.\n", id, a.notes.UnreadCount())
	a.remountNotifications()
	return nil
}

func (a *App) MarkAllRead(ctx context.Context) error {
	n := a.notes.MarkAllAsRead(ctx)
	a.printf("Marked %d as read. %d unread.\n", n, a.notes.UnreadCount())
	a.remountNotifications()
	return nil
}

func (a *App) remountNotifications() {
	if a.router.Current().Path == common.RouteNotifications {
		a.mounted = ""
	}
}
