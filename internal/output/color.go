package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/dshills/threadfmt/internal/thread"
)

// Styles holds the lipgloss styles for text output.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Marker lipgloss.Style

	// enabled is false for plain output, where lines are written untouched.
	enabled bool
}

// NewStyles creates the default color styles bound to w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	// Color was requested explicitly, so don't let profile detection drop it.
	r.SetColorProfile(termenv.ANSI)
	return Styles{
		Title:   r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true), // bold magenta
		Header:  r.NewStyle().Foreground(lipgloss.Color("2")),            // green
		Marker:  r.NewStyle().Foreground(lipgloss.Color("1")),            // red
		enabled: true,
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle(),
		Header: lipgloss.NewStyle(),
		Marker: lipgloss.NewStyle(),
	}
}

// Enabled reports whether s colorizes output.
func (s Styles) Enabled() bool {
	return s.enabled
}

func (s Styles) line(l thread.Line) string {
	if !s.enabled {
		return l.Text
	}
	switch l.Role {
	case thread.RoleTitle:
		return s.Title.Render(l.Text)
	case thread.RoleHeader:
		return s.Header.Render(l.Text)
	case thread.RoleMarker:
		return s.Marker.Render(l.Text)
	default:
		return l.Text
	}
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}

// UseColor resolves a color mode (auto, always, never) for a destination.
func UseColor(mode string, isTerminal bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}
