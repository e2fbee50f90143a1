package forms

import (
	"context"
	"unicode/utf8"

	"github.com/trademinutes/tmclient/internal/client/client"
	"github.com/trademinutes/tmclient/internal/client/models"
	"github.com/trademinutes/tmclient/internal/client/tags"
)

const (
	profileSuccess = "Profile updated successfully!"
	profileFailure = "Failed to update profile. Please try again."
)

// TokenSource yields the current session token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ProfileForm edits the signed-in user's profile. The whole draft is sent
// on every submit.
type ProfileForm struct {
	base
	auth   client.AuthClient
	tokens TokenSource
	skills *tags.Editor
	loaded models.Profile
}

func NewProfileForm(auth client.AuthClient, tokens TokenSource, opts ...Option) *ProfileForm {
	f := &ProfileForm{auth: auth, tokens: tokens, skills: tags.New()}
	f.init(opts)
	return f
}

// Load seeds the draft from a fetched profile.
func (f *ProfileForm) Load(p models.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loaded = p
	f.values = map[string]string{
		FieldName:        p.Name,
		FieldEmail:       p.Email,
		FieldCollege:     p.School(),
		FieldProgram:     p.Program,
		FieldYearOfStudy: p.YearOfStudy,
		FieldBio:         p.Bio,
		FieldPhone:       p.Phone,
	}
	f.fieldErrs = map[string]string{}
	f.state = StateEditing
	f.skills.Reset(p.Skills...)
}

// Skills is the editor behind the skills field.
func (f *ProfileForm) Skills() *tags.Editor {
	return f.skills
}

// Draft builds the profile that Submit would send.
func (f *ProfileForm) Draft() models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft(f.values)
}

func (f *ProfileForm) draft(v map[string]string) models.Profile {
	p := f.loaded
	p.Name = v[FieldName]
	p.Email = v[FieldEmail]
	p.College = v[FieldCollege]
	p.Program = v[FieldProgram]
	p.YearOfStudy = v[FieldYearOfStudy]
	p.Bio = v[FieldBio]
	p.Phone = v[FieldPhone]
	p.Skills = f.skills.Items()
	return p
}

func validateProfile(v map[string]string) fieldErrors {
	errs := fieldErrors{}
	if errs.required(FieldName, v[FieldName], "Name is required") && utf8.RuneCountInString(v[FieldName]) < 2 {
		errs[FieldName] = "Name must be at least 2 characters long"
	}
	errs.email(FieldEmail, v[FieldEmail])
	errs.required(FieldCollege, v[FieldCollege], "College/University is required")
	errs.required(FieldProgram, v[FieldProgram], "Program/Major is required")
	errs.required(FieldYearOfStudy, v[FieldYearOfStudy], "Year of Study is required")
	if !ValidPhone(v[FieldPhone]) {
		errs[FieldPhone] = "Please enter a valid phone number"
	}
	return errs
}

// Submit sends the draft. A success message is shown for
// SuccessMessageTTL; the form stays on the page.
func (f *ProfileForm) Submit(ctx context.Context) error {
	return f.submit(ctx, submission{
		validate: validateProfile,
		run: func(ctx context.Context, v map[string]string) (string, error) {
			tok, err := f.tokens.Token(ctx)
			if err != nil {
				return "", err
			}
			f.mu.Lock()
			p := f.draft(v)
			f.mu.Unlock()
			if err := f.auth.UpdateProfile(ctx, tok, p); err != nil {
				return "", err
			}
			return profileSuccess, nil
		},
		failure: func(error) string { return profileFailure },
		then: func() {
			f.after(SuccessMessageTTL, f.clearSuccess)
		},
	})
}

func (f *ProfileForm) clearSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.success == profileSuccess {
		f.success = ""
	}
}
