package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xtfkit/xtf/record"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and, for
// malformed records, the offending line with a caret under the bad
// field.
type ErrorRenderer struct{}

// NewErrorRenderer creates a renderer.
func NewErrorRenderer() *ErrorRenderer {
	return &ErrorRenderer{}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	var malformed *record.MalformedError
	if errors.As(err, &malformed) {
		return r.renderMalformed(malformed)
	}
	return err.Error()
}

func (r *ErrorRenderer) renderMalformed(e *record.MalformedError) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(e.Error()))
	buf.WriteString("\n\n")

	buf.WriteString("   ")
	buf.WriteString(errContextStyle.Render(e.Line.Text))
	buf.WriteByte('\n')

	if e.Column > 0 && e.Column <= len(e.Line.Text)+1 {
		// The column is a byte offset; measure the prefix in display
		// cells so wide runes in earlier fields do not shift the caret.
		prefix := e.Line.Text[:e.Column-1]
		buf.WriteString("   ")
		buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(prefix)))
		buf.WriteString(errCaretStyle.Render("^"))
		buf.WriteByte('\n')
	}

	return buf.String()
}
