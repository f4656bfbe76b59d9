package dsl

import "fmt"

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError is the only error raised while compiling a document. It reports
// the first place where the source did not match the grammar.
type SyntaxError struct {
	Pos      Position
	Expected string // description of the construct that would have been accepted
	Got      string // description of what was found instead
	Message  string // optional free-form detail
	Path     string // source label, set through WithPath
}

func (e *SyntaxError) Error() string {
	var loc string
	switch {
	case e.Path != "" && e.Pos.Line > 0:
		loc = fmt.Sprintf("%s:%d:%d: ", e.Path, e.Pos.Line, e.Pos.Column)
	case e.Path != "":
		loc = e.Path + ": "
	case e.Pos.Line > 0:
		loc = fmt.Sprintf("line %d, col %d: ", e.Pos.Line, e.Pos.Column)
	}
	msg := e.Message
	if e.Expected != "" {
		if msg != "" {
			msg += ": "
		}
		msg += fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	}
	return loc + msg
}

// WithPath returns a copy of the error labelled with the given source name,
// typically a file path or "<stdin>".
func (e *SyntaxError) WithPath(name string) *SyntaxError {
	c := *e
	c.Path = name
	return &c
}

func unexpected(tok Token, expected string) *SyntaxError {
	return &SyntaxError{
		Pos:      tok.Pos,
		Expected: expected,
		Got:      tok.describe(),
	}
}
