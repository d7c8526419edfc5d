// Package console prints the user-facing progress of a run: a banner and
// one line per stage ending in [DONE] or [FAILED].
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#7C3AED")
	green  = lipgloss.Color("#22C55E")
	red    = lipgloss.Color("#EF4444")
	dim    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
)

// Console writes stages to w, styled for w's color profile.
type Console struct {
	w      io.Writer
	title  lipgloss.Style
	note   lipgloss.Style
	done   lipgloss.Style
	failed lipgloss.Style
}

func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:      w,
		title:  r.NewStyle().Foreground(accent).Bold(true),
		note:   r.NewStyle().Foreground(dim),
		done:   r.NewStyle().Foreground(green).Bold(true),
		failed: r.NewStyle().Foreground(red).Bold(true),
	}
}

// Banner prints the program name and version followed by a hint line.
func (c *Console) Banner(version string) {
	fmt.Fprintln(c.w, c.title.Render("STEP File Generator "+version))
	fmt.Fprintln(c.w, c.note.Render("Use command-line option -h or /h for help."))
	fmt.Fprintln(c.w)
}

// Stage prints "name... ", runs fn and closes the line with [DONE], or
// with [FAILED] and the error on the next line. fn's error is returned
// wrapped with the stage name.
func (c *Console) Stage(name string, fn func() error) error {
	fmt.Fprintf(c.w, "%s... ", name)
	if err := fn(); err != nil {
		fmt.Fprintln(c.w, c.failed.Render("[FAILED]"))
		fmt.Fprintf(c.w, "Error. %v\n", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintln(c.w, c.done.Render("[DONE]"))
	return nil
}

// Notef prints a dimmed informational line.
func (c *Console) Notef(format string, args ...any) {
	fmt.Fprintln(c.w, c.note.Render(fmt.Sprintf(format, args...)))
}
