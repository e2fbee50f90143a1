// Package cli provides the interactive TradeMinutes command-line client.
//
// It wires configuration, the local credential store, the remote API client
// and an interactive REPL. Every command navigates to a route; the page of
// the route is then mounted. Protected pages (dashboard, profile, profile
// edit, notifications) run the session guard on every mount and are shown
// inside the sidebar layout. While a protected page is open the
// notification poller refreshes the unread badge in the background.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
