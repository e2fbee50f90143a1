package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders the detail view of s as Markdown.
func Markdown(s Service) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	fmt.Fprintf(&b, "_%s_\n\n", s.Category)
	fmt.Fprintf(&b, "**%s** · ⭐ %.2f (%d reviews)\n\n", s.User, s.Rating, s.Reviews)

	if desc := strings.TrimSpace(s.Description); desc != "" {
		b.WriteString("## Description\n\n")
		b.WriteString(desc)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "## Starting at %d credits\n\n", s.Price)
	for _, inc := range s.Includes {
		fmt.Fprintf(&b, "- %s\n", inc)
	}
	return b.String()
}

// Render formats s for the terminal. style is a glamour standard style
// name such as "dark", "light" or "notty".
func Render(s Service, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(Markdown(s))
	if err != nil {
		return "", fmt.Errorf("failed to render service %q: %w", s.Slug, err)
	}
	return out, nil
}
