package forms

import (
	"context"

	"github.com/trademinutes/tmclient/internal/client/client"
	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/common"
)

const resetSuccess = "Password reset successful. Redirecting to login..."

// ResetForm sets a new password using the reset token carried by the
// navigation that opened it (/reset-password?token=...).
type ResetForm struct {
	base
	auth client.AuthClient
	nav  nav.Navigator
}

func NewResetForm(auth client.AuthClient, from nav.Location, n nav.Navigator, opts ...Option) *ResetForm {
	f := &ResetForm{auth: auth, nav: n}
	f.init(opts)
	if from.Query != nil {
		f.values[FieldToken] = from.Query.Get("token")
	}
	return f
}

func (f *ResetForm) Submit(ctx context.Context) error {
	return f.submit(ctx, submission{
		validate: func(v map[string]string) fieldErrors {
			errs := fieldErrors{}
			if v[FieldToken] == "" {
				errs[FieldToken] = "Reset token missing."
				return errs
			}
			errs.required(FieldPassword, v[FieldPassword], "Password is required")
			errs.required(FieldConfirm, v[FieldConfirm], "Please confirm your password")
			if len(errs) == 0 && v[FieldPassword] != v[FieldConfirm] {
				errs[FieldConfirm] = "Passwords do not match."
			}
			return errs
		},
		run: func(ctx context.Context, v map[string]string) (string, error) {
			f.debug.Info("Sending password reset...")
			if err := f.auth.ResetPassword(ctx, v[FieldToken], v[FieldPassword]); err != nil {
				f.debug.Warn("Reset failed: " + err.Error())
				return "", err
			}
			f.debug.Info("Password reset complete")
			return resetSuccess, nil
		},
		clear: true,
		then: func() {
			f.after(FollowUpDelay, func() { f.nav.Navigate(common.RouteLogin) })
		},
	})
}
