package record

import "fmt"

// MalformedError is returned when a log line fails the grammar or the
// calendar validity check. It carries the position of the offending
// field so the CLI layer can render the line with a caret underneath.
type MalformedError struct {
	Line    Line
	Column  int // 1-indexed column of the failing field, 0 if whole-line
	Message string
}

func (e *MalformedError) Error() string {
	location := fmt.Sprintf("%s:%d", e.Line.File, e.Line.Num)
	if e.Line.File == "" {
		location = fmt.Sprintf("line %d", e.Line.Num)
	}
	return fmt.Sprintf("%s: malformed record: %s", location, e.Message)
}

func newMalformed(ln Line, column int, format string, args ...interface{}) *MalformedError {
	return &MalformedError{
		Line:    ln,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}
