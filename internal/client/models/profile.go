// Package models holds the data shapes exchanged with the TradeMinutes API,
// together with their receive-side schema checks.
package models

import (
	"strings"
)

// Profile is the user profile owned by the auth service. The service emits
// capitalised keys ("Name", "Email", ...); encoding/json matches them
// case-insensitively against these tags.
type Profile struct {
	Name        string   `json:"name"`
	Email       string   `json:"email" validate:"required"`
	College     string   `json:"college,omitempty"`
	University  string   `json:"university,omitempty"`
	Program     string   `json:"program,omitempty"`
	YearOfStudy string   `json:"yearOfStudy,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Skills      []string `json:"skills"`
}

// Normalize replaces a missing skills list with an empty one.
func (p *Profile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
}

// DisplayName falls back to the email local part when no name is set.
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	local, _, _ := strings.Cut(p.Email, "@")
	return local
}

// School returns the college, or the university when only that is set.
func (p Profile) School() string {
	if p.College != "" {
		return p.College
	}
	return p.University
}
