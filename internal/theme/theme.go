// Package theme stores the light/dark preference and provides the matching
// lipgloss palette.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DefaultKey is the storage key holding the theme preference.
const DefaultKey = "theme"

// Mode is the display theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// KV is the subset of the key/value store the theme needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// DetectFunc reports whether the environment prefers a dark theme.
type DetectFunc func() bool

// Detect asks the terminal for its background colour.
func Detect() bool {
	return lipgloss.HasDarkBackground()
}

// Load returns the stored mode. When nothing usable is stored it falls back
// to detect.
func Load(kv KV, key string, detect DetectFunc) (Mode, error) {
	v, ok, err := kv.Get(key)
	if err != nil {
		return "", fmt.Errorf("reading theme: %w", err)
	}
	if ok {
		switch Mode(v) {
		case Light, Dark:
			return Mode(v), nil
		}
	}
	if detect != nil && detect() {
		return Dark, nil
	}
	return Light, nil
}

// Save persists mode under key.
func Save(kv KV, key string, mode Mode) error {
	if mode != Light && mode != Dark {
		return fmt.Errorf("unknown theme %q", mode)
	}
	if err := kv.Set(key, string(mode)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Palette holds the styles the renderer draws with.
type Palette struct {
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
	Border    lipgloss.Style
	Overlay   lipgloss.Style
	Error     lipgloss.Style
	Overdue   lipgloss.Style
	StatusFor map[string]lipgloss.Style
}

// Styles returns the palette for mode.
func Styles(mode Mode) Palette {
	if mode == Dark {
		return Palette{
			Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")),
			Border: lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")),
			Overlay: lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				Background(lipgloss.Color("235")).
				Padding(1),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			StatusFor: map[string]lipgloss.Style{
				"Not Started": lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
				"In Progress": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
				"Done":        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			},
		}
	}
	return Palette{
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("17")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("153")).Foreground(lipgloss.Color("16")),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("250")),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("250")).
			Background(lipgloss.Color("255")).
			Padding(1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		StatusFor: map[string]lipgloss.Style{
			"Not Started": lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			"In Progress": lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			"Done":        lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		},
	}
}

// Status styles a status label, falling back to the muted style for values
// outside the known set.
func (p Palette) Status(s string) lipgloss.Style {
	if st, ok := p.StatusFor[s]; ok {
		return st
	}
	return p.Muted
}
