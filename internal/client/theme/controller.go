package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Preferences persists the theme choice.
type Preferences interface {
	Theme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}

// Controller is the single dark flag of the client. Every change is
// persisted before it becomes visible and then applied to the global
// lipgloss renderer.
type Controller struct {
	prefs Preferences

	mu     sync.RWMutex
	mode   Mode
	styles Styles
}

func NewController(prefs Preferences) *Controller {
	c := &Controller{prefs: prefs}
	c.apply(Light)
	return c
}

// Load resolves the mode from the stored preference. A missing
// preference means light.
func (c *Controller) Load(ctx context.Context) error {
	v, err := c.prefs.Theme(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(ParseMode(v))
	return nil
}

// Toggle flips the mode and persists it. When the write fails the mode is
// left unchanged.
func (c *Controller) Toggle(ctx context.Context) (Mode, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := Dark
	if c.mode == Dark {
		next = Light
	}
	if err := c.prefs.SaveTheme(ctx, string(next)); err != nil {
		return c.mode, fmt.Errorf("save theme: %w", err)
	}
	c.apply(next)
	return next, nil
}

func (c *Controller) apply(m Mode) {
	c.mode = m
	c.styles = NewStyles(PaletteFor(m))
	lipgloss.SetHasDarkBackground(m == Dark)
}

func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

func (c *Controller) Styles() Styles {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.styles
}
