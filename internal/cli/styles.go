package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// Palette used when stdout is a terminal.
const (
	colorAccent  = lipgloss.Color("#4ade80")
	colorMuted   = lipgloss.Color("#909090")
	colorWarning = lipgloss.Color("#fbbf24")
	colorError   = lipgloss.Color("#f87171")
	colorKey     = lipgloss.Color("#7dd3fc")
)

// Styles renders command output. When the output is not a terminal every
// style renders text unchanged, so piped output stays machine readable.
type Styles struct {
	enabled bool

	Title   lipgloss.Style
	Action  lipgloss.Style
	Key     lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns styles for w, enabled only when w is a terminal.
func NewStyles(w io.Writer) *Styles {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return plainStyles()
	}

	r := lipgloss.NewRenderer(w)
	return &Styles{
		enabled: true,
		Title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		Action:  r.NewStyle().Bold(true),
		Key:     r.NewStyle().Foreground(colorKey),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Success: r.NewStyle().Foreground(colorAccent),
		Warning: r.NewStyle().Foreground(colorWarning),
		Error:   r.NewStyle().Bold(true).Foreground(colorError),
	}
}

func plainStyles() *Styles {
	return &Styles{}
}

// Render applies st to text when styling is enabled.
func (s *Styles) Render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// row is one line of a two-column listing.
type row struct {
	left, right string
}

// writeRows prints rows with the left column padded to its widest cell.
// Widths are measured before styling so escape codes do not skew them.
func writeRows(w io.Writer, s *Styles, leftStyle, rightStyle lipgloss.Style, rows []row) error {
	width := 0
	for _, r := range rows {
		width = max(width, uniseg.StringWidth(r.left))
	}

	var b strings.Builder
	for _, r := range rows {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(r.left))
		b.WriteString(s.Render(leftStyle, r.left))
		b.WriteString(pad)
		b.WriteString("  ")
		b.WriteString(s.Render(rightStyle, r.right))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
