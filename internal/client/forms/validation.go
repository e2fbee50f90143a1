package forms

import (
	"regexp"
	"sort"
	"strings"

	"github.com/trademinutes/tmclient/internal/common"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone accepts an empty string, or an optional leading "+" followed
// by at least ten digits, spaces or hyphens.
func ValidPhone(s string) bool {
	return s == "" || phonePattern.MatchString(s)
}

// ValidationError carries the per-field messages of a rejected draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return common.ErrorValidation }

type fieldErrors map[string]string

// required records msg for field when value is blank and reports whether
// the value was present.
func (fe fieldErrors) required(field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		fe[field] = msg
		return false
	}
	return true
}

func (fe fieldErrors) email(field, value string) {
	if fe.required(field, value, "Email is required") && !ValidEmail(value) {
		fe[field] = "Please enter a valid email address"
	}
}
