package forms

import (
	"errors"
	"time"
)

// State is the lifecycle position of a form.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	// FollowUpDelay separates a successful auth submit from the navigation
	// to its follow-up route.
	FollowUpDelay = 2 * time.Second
	// SuccessMessageTTL is how long the profile form keeps its success
	// message.
	SuccessMessageTTL = 3 * time.Second
)

var ErrSubmitInProgress = errors.New("submit already in progress")

// Field names shared by the forms.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldConfirm     = "confirm"
	FieldToken       = "token"
	FieldCollege     = "college"
	FieldProgram     = "program"
	FieldYearOfStudy = "yearOfStudy"
	FieldBio         = "bio"
	FieldPhone       = "phone"
)
