package cli

import (
	"context"
	"strings"

	"github.com/trademinutes/tmclient/internal/client/forms"
	"github.com/trademinutes/tmclient/internal/client/tags"
	"github.com/trademinutes/tmclient/internal/common"
)

var profileFields = []struct {
	field string
	label string
}{
	{forms.FieldName, "Name"},
	{forms.FieldEmail, "Email"},
	{forms.FieldCollege, "College/University"},
	{forms.FieldProgram, "Program/Major"},
	{forms.FieldYearOfStudy, "Year of Study"},
	{forms.FieldPhone, "Phone"},
	{forms.FieldBio, "Bio"},
}

// EditProfile walks through the profile fields. An empty answer keeps the
// current value and "-" clears it.
func (a *App) EditProfile(ctx context.Context) error {
	a.router.Navigate(common.RouteEditProfile)
	a.mounted = ""
	a.settle(ctx)
	if a.router.Current().Path != common.RouteEditProfile || a.profile == nil {
		return nil
	}

	f := forms.NewProfileForm(a.api, a.sessions, forms.WithLogger(a.log))
	f.Load(*a.profile)

	for _, pf := range profileFields {
		v, err := getSimpleText(a.reader, pf.label+" ["+f.Value(pf.field)+"]", a.out)
		if err != nil {
			return err
		}
		switch v {
		case "":
		case "-":
			f.Set(pf.field, "")
		default:
			f.Set(pf.field, v)
		}
	}

	if err := a.editTags(f.Skills(), "Skills"); err != nil {
		return err
	}

	if err := f.Submit(ctx); err != nil {
		a.log.Debug(ctx, "profile submit", "error", err)
		a.report(f)
		return nil
	}
	a.report(f)

	p := f.Draft()
	a.profile = &p
	a.router.Navigate(common.RouteProfile)
	return nil
}

// editTags reads "+tag" and "-tag" lines until an empty one.
func (a *App) editTags(e *tags.Editor, label string) error {
	for {
		prompt := label + ": " + strings.Join(e.Items(), ", ") + "\n(+skill adds, -skill removes, empty line finishes)"
		line, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch {
		case line == "":
			return nil
		case strings.HasPrefix(line, "+"):
			if !e.Add(line[1:]) {
				a.println("Already listed or empty.")
			}
		case strings.HasPrefix(line, "-"):
			if !e.Remove(strings.TrimSpace(line[1:])) {
				a.println("Not listed.")
			}
		default:
			e.Add(line)
		}
	}
}

// Skills edits the onboarding skills shown on the dashboard.
func (a *App) Skills(_ context.Context, args []string) error {
	if len(args) == 0 {
		items := a.onboarding.Items()
		if len(items) == 0 {
			a.println("No skills yet.")
			return nil
		}
		a.println(strings.Join(items, ", "))
		return nil
	}

	value := strings.Join(args[1:], " ")
	switch args[0] {
	case "add":
		if !a.onboarding.Add(value) {
			a.println("Skill is empty or already added.")
			return nil
		}
	case "remove", "rm":
		if !a.onboarding.Remove(value) {
			a.println("No such skill:", value)
			return nil
		}
	default:
		a.println("Usage: skills [add|remove <skill>]")
		return nil
	}
	a.println("Skills:", strings.Join(a.onboarding.Items(), ", "))
	if a.router.Current().Path == common.RouteDashboard {
		a.mounted = ""
	}
	return nil
}
