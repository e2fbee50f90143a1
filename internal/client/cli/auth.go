package cli

import (
	"context"
	"net/url"
	"sort"

	"github.com/trademinutes/tmclient/internal/client/debuglog"
	"github.com/trademinutes/tmclient/internal/client/forms"
	"github.com/trademinutes/tmclient/internal/common"
)

// Prompt seams, replaced in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// viewer is implemented by every form.
type viewer interface {
	View() forms.View
}

// readSecret prompts for a password and hands it to set as a string. The
// raw bytes are wiped afterwards.
func (a *App) readSecret(prompt string, set func(string)) error {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	set(string(pw))
	return nil
}

func (a *App) report(v viewer) {
	st := a.theme.Styles()
	view := v.View()

	if view.Success != "" {
		a.println(st.Success.Render(view.Success))
	}
	if view.Error != "" && len(view.Fields) == 0 {
		a.println(st.Error.Render(view.Error))
	}

	keys := make([]string, 0, len(view.Fields))
	for k := range view.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.println(st.Error.Render("  " + view.Fields[k]))
	}
}

// newTrace replaces the debug trace with one for the form being submitted.
func (a *App) newTrace() []forms.Option {
	a.trace = debuglog.NewTrace()
	return append(a.formOptions(), forms.WithTrace(a.trace))
}

func (a *App) Login(ctx context.Context) error {
	a.router.Navigate(common.RouteLogin)
	a.settle(ctx)

	last, err := a.sessions.LastEmail(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading last email failed", "error", err)
	}

	f := forms.NewLoginForm(a.api, a.sessions, a.router, last, a.newTrace()...)

	prompt := "Email"
	if last != "" {
		prompt += " [" + last + "]"
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email != "" {
		f.Set(forms.FieldEmail, email)
	}
	if err := a.readSecret("Password: ", func(s string) { f.Set(forms.FieldPassword, s) }); err != nil {
		return err
	}

	a.println("Logging in...")
	if err := f.Submit(ctx); err != nil {
		a.log.Debug(ctx, "login submit", "error", err)
	}
	a.report(f)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	a.router.Navigate(common.RouteRegister)
	a.settle(ctx)

	f := forms.NewRegisterForm(a.api, a.router, a.newTrace()...)

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	f.Set(forms.FieldName, name)

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	f.Set(forms.FieldEmail, email)

	if err := a.readSecret("Password: ", func(s string) { f.Set(forms.FieldPassword, s) }); err != nil {
		return err
	}

	a.println("Registering...")
	if err := f.Submit(ctx); err != nil {
		a.log.Debug(ctx, "register submit", "error", err)
	}
	a.report(f)
	return nil
}

// Reset completes a password reset. The token comes from the argument or,
// when empty, from the current reset page.
func (a *App) Reset(ctx context.Context, token string) error {
	if token != "" {
		a.router.Navigate(common.RouteResetPassword + "?token=" + url.QueryEscape(token))
	} else if a.router.Current().Path != common.RouteResetPassword {
		a.router.Navigate(common.RouteResetPassword)
	}
	a.settle(ctx)

	f := forms.NewResetForm(a.api, a.router.Current(), a.router, a.newTrace()...)

	if err := a.readSecret("New password: ", func(s string) { f.Set(forms.FieldPassword, s) }); err != nil {
		return err
	}
	if err := a.readSecret("Confirm password: ", func(s string) { f.Set(forms.FieldConfirm, s) }); err != nil {
		return err
	}

	if err := f.Submit(ctx); err != nil {
		a.log.Debug(ctx, "reset submit", "error", err)
	}
	a.report(f)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.ClearToken(ctx); err != nil {
		return err
	}
	a.poller.Stop()
	a.notes.Reset()
	a.profile = nil
	a.println("Logged out.")
	a.router.Navigate(common.RouteLogin)
	return nil
}
