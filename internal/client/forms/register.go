package forms

import (
	"context"

	"github.com/trademinutes/tmclient/internal/client/client"
	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/common"
)

const registerSuccess = "Registration successful! Redirecting to login..."

type RegisterForm struct {
	base
	auth client.AuthClient
	nav  nav.Navigator
}

func NewRegisterForm(auth client.AuthClient, n nav.Navigator, opts ...Option) *RegisterForm {
	f := &RegisterForm{auth: auth, nav: n}
	f.init(opts)
	return f
}

func (f *RegisterForm) Submit(ctx context.Context) error {
	return f.submit(ctx, submission{
		validate: func(v map[string]string) fieldErrors {
			errs := fieldErrors{}
			errs.required(FieldName, v[FieldName], "Name is required")
			errs.email(FieldEmail, v[FieldEmail])
			errs.required(FieldPassword, v[FieldPassword], "Password is required")
			return errs
		},
		run: func(ctx context.Context, v map[string]string) (string, error) {
			f.debug.Info("Connecting to registration endpoint...")
			if err := f.auth.Register(ctx, v[FieldName], v[FieldEmail], v[FieldPassword]); err != nil {
				f.debug.Warn("Registration failed: " + err.Error())
				return "", err
			}
			f.debug.Info("Registration successful")
			return registerSuccess, nil
		},
		clear: true,
		then: func() {
			f.after(FollowUpDelay, func() { f.nav.Navigate(common.RouteLogin) })
		},
	})
}
