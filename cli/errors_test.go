package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/xtfkit/xtf/record"
)

func TestRender_PlainError(t *testing.T) {
	r := NewErrorRenderer()
	assert.Equal(t, "boom", r.Render(errors.New("boom")))
}

func TestRender_MalformedRecord(t *testing.T) {
	line := record.Line{Text: "alice;2023-13-01 10:00:00;USD;1", File: "trades.log", Num: 3}
	_, err := record.Parse(line)
	assert.Error(t, err)

	r := NewErrorRenderer()
	out := r.Render(err)

	assert.True(t, strings.Contains(out, "trades.log:3"))
	assert.True(t, strings.Contains(out, line.Text))
	assert.True(t, strings.Contains(out, "^"))
}

func TestRender_CaretUnderFailingField(t *testing.T) {
	line := record.Line{Text: "alice;2023-01-01 10:00:00;USD;ten", File: "trades.log", Num: 1}
	_, err := record.Parse(line)
	assert.Error(t, err)

	r := NewErrorRenderer()
	out := r.Render(err)

	lines := strings.Split(out, "\n")
	var caretLine string
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLine = l
		}
	}
	assert.NotEqual(t, "", caretLine)

	// The amount field starts at byte 30; the caret line carries the
	// renderer's 3-space indent on top of that.
	wantIndent := 3 + len("alice;2023-01-01 10:00:00;USD;")
	assert.Equal(t, wantIndent, strings.Index(stripANSI(caretLine), "^"))
}

// stripANSI removes terminal escape sequences so tests can assert on
// column positions regardless of the color profile.
func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func TestCommandError(t *testing.T) {
	err := NewCommandError(1)
	assert.Equal(t, "command failed", err.Error())
	assert.Equal(t, 1, err.ExitCode())
}
