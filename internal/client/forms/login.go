package forms

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trademinutes/tmclient/internal/client/client"
	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/common"
)

const loginSuccess = "Login successful! Redirecting..."

// SessionSaver persists the token issued by a successful login.
type SessionSaver interface {
	SaveSession(ctx context.Context, token, email string) error
}

type LoginForm struct {
	base
	auth     client.AuthClient
	sessions SessionSaver
	nav      nav.Navigator
}

// NewLoginForm returns a login form pre-filled with email, which may be "".
func NewLoginForm(auth client.AuthClient, sessions SessionSaver, n nav.Navigator, email string, opts ...Option) *LoginForm {
	f := &LoginForm{auth: auth, sessions: sessions, nav: n}
	f.init(opts)
	if email != "" {
		f.values[FieldEmail] = email
	}
	return f
}

// Submit logs in, stores the session and schedules the move to the
// dashboard.
func (f *LoginForm) Submit(ctx context.Context) error {
	return f.submit(ctx, submission{
		validate: func(v map[string]string) fieldErrors {
			errs := fieldErrors{}
			errs.email(FieldEmail, v[FieldEmail])
			errs.required(FieldPassword, v[FieldPassword], "Password is required")
			return errs
		},
		run: func(ctx context.Context, v map[string]string) (string, error) {
			email := v[FieldEmail]
			f.debug.Info("Connecting to login endpoint...")
			tok, err := f.auth.Login(ctx, email, v[FieldPassword])
			if err != nil {
				f.debug.Warn("Login failed: " + err.Error())
				return "", err
			}
			if err := f.sessions.SaveSession(ctx, tok, email); err != nil {
				f.debug.Warn("Saving session failed", zap.Error(err))
				return "", fmt.Errorf("save session: %w", err)
			}
			f.debug.Info("Login successful, redirecting to " + common.RouteDashboard)
			return loginSuccess, nil
		},
		clear: true,
		then: func() {
			f.after(FollowUpDelay, func() { f.nav.Navigate(common.RouteDashboard) })
		},
	})
}
