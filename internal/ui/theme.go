package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the styles and symbols every renderer draws with.
// Build one with NewTheme and pass it along; nothing here is global.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Label, Value lipgloss.Style
	Frame                                              lipgloss.Style

	Bullet, SymOK, SymFail string
}

// NewTheme builds the named theme (classic, neon or mono) for output
// written to w. Unknown names fall back to classic.
func NewTheme(name string, w io.Writer) Theme {
	return NewThemeWithRenderer(name, lipgloss.NewRenderer(w))
}

// NewThemeWithRenderer is NewTheme for callers that already own a renderer.
func NewThemeWithRenderer(name string, r *lipgloss.Renderer) Theme {
	t := Theme{SymOK: "✔", SymFail: "✖"}
	frame := r.NewStyle().Padding(0, 1)

	switch strings.ToLower(name) {
	case "neon":
		t.Name = "neon"
		t.Title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Muted = r.NewStyle().Foreground(lipgloss.Color("8"))
		t.Accent = r.NewStyle().Foreground(lipgloss.Color("14"))
		t.Success = r.NewStyle().Foreground(lipgloss.Color("10"))
		t.Error = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		t.Label = r.NewStyle().Foreground(lipgloss.Color("11"))
		t.Value = r.NewStyle().Bold(true)
		t.Frame = frame.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13"))
		t.Bullet = "◆"
	case "mono":
		r.SetColorProfile(termenv.Ascii)
		t.Name = "mono"
		t.Title = r.NewStyle()
		t.Muted = r.NewStyle()
		t.Accent = r.NewStyle()
		t.Success = r.NewStyle()
		t.Error = r.NewStyle()
		t.Label = r.NewStyle()
		t.Value = r.NewStyle()
		t.Frame = frame.Border(asciiBorder)
		t.Bullet = "-"
		t.SymOK, t.SymFail = "ok", "x"
	default:
		t.Name = "classic"
		t.Title = r.NewStyle().Bold(true)
		t.Muted = r.NewStyle().Faint(true)
		t.Accent = r.NewStyle().Foreground(lipgloss.Color("12"))
		t.Success = r.NewStyle().Foreground(lipgloss.Color("42"))
		t.Error = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		t.Label = r.NewStyle().Foreground(lipgloss.Color("214"))
		t.Value = r.NewStyle()
		t.Frame = frame.Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8"))
		t.Bullet = "•"
	}
	return t
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}
