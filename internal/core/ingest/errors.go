package ingest

import "fmt"

// ParseError reports malformed upload structure: a bad header, a short row,
// or a row that failed field validation. Line is the 1-based position in the
// original input (the header is line 1); it is 0 for input-level problems.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func newParseError(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}
