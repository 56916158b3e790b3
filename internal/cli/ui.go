package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
)

// ui writes styled lines to w. Styles are bound to a renderer for w, so
// colors are dropped when w is not a terminal.
type ui struct {
	w io.Writer

	title   lipgloss.Style
	dim     lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

func newUI(w io.Writer) *ui {
	r := lipgloss.NewRenderer(w)
	return &ui{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		info:    r.NewStyle().Foreground(colorGray),
	}
}

// printTitle prints a bold heading.
func (u *ui) printTitle(format string, args ...any) {
	fmt.Fprintln(u.w, u.title.Render(fmt.Sprintf(format, args...)))
}

// printLine prints an unstyled line.
func (u *ui) printLine(format string, args ...any) {
	fmt.Fprintf(u.w, format+"\n", args...)
}

// printDim prints a muted line.
func (u *ui) printDim(format string, args ...any) {
	fmt.Fprintln(u.w, u.dim.Render(fmt.Sprintf(format, args...)))
}

// printSuccess prints an indented success message.
func (u *ui) printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, "  "+u.success.Render(iconSuccess)+" "+msg)
}

// printWarning prints an indented warning message.
func (u *ui) printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, "  "+u.warning.Render(iconWarning)+" "+u.warning.Render(msg))
}

// printInfo prints an info/status message.
func (u *ui) printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, u.info.Render(iconInfo)+" "+msg)
}

// printNewline prints an empty line.
func (u *ui) printNewline() {
	fmt.Fprintln(u.w)
}
