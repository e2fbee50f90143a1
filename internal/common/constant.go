// Package common contains constants and sentinel errors shared by the
// TradeMinutes client packages.
package common

// HTTP headers set on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the persisted client preferences.
const (
	PreferenceToken = "token"
	PreferenceTheme = "theme"
)

// Navigation routes. Protected routes run the session guard on mount.
const (
	RouteHome          = "/"
	RouteLogin         = "/login"
	RouteRegister      = "/register"
	RouteResetPassword = "/reset-password"
	RouteDashboard     = "/dashboard"
	RouteProfile       = "/profile"
	RouteEditProfile   = "/profile/edit"
	RouteServices      = "/services"
	RouteNotifications = "/notifications"
)
