package diag

import "fmt"

// Kind classifies a compiler error. New failure classes get a new Kind
// here rather than being encoded as free-form message strings.
type Kind int

const (
	// KindSyntaxError covers lexical and grammatical errors, and symbol-table
	// violations (duplicate definition, call to undeclared function,
	// declared-but-not-defined, circular include).
	KindSyntaxError Kind = iota
	// KindUnexpectedToken is raised by the parser when a specific token was
	// required and a different one was found.
	KindUnexpectedToken
	// KindUndefinedVariable has no call site: an identifier read before any
	// assignment is not reported, since code generation gives every
	// identifier a stack slot on first use.
	KindUndefinedVariable
	// KindInvalidOperator marks an operator token recognized lexically but
	// not valid where it appears.
	KindInvalidOperator
	// KindIOError covers file read/write failures (source files and include
	// targets).
	KindIOError
)

// Location is a source position: the file it was read from, and a 1-based
// line and column within it.
type Location struct {
	File   string
	Line   int
	Column int
}

// Error is the single tagged value every compiler-facing failure is
// expressed as. It carries enough to render the standard
// `error: ... / --> file:line:col / source / caret` diagnostic without any
// further file access.
type Error struct {
	Kind       Kind
	Location   Location
	SourceLine string
	Message    string
	Expected   string // only meaningful when Kind == KindUnexpectedToken
	Found      string // only meaningful when Kind == KindUnexpectedToken
}

// Error implements the error interface with a single-line message suitable
// for wrapping or logging; Render produces the full multi-line diagnostic.
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Location.File, e.Location.Line, e.Location.Column, e.messageText())
}

func (e *Error) messageText() string {
	if e.Kind == KindUnexpectedToken {
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}

	return e.Message
}

// Render formats the full diagnostic: the error message, the location line,
// the offending source line, and a caret pointing at the column. Color is
// suppressible by the caller (e.g. when stdout/stderr is not a terminal, or
// the user passed --no-color); this is a quality-of-implementation concern,
// not part of the error text's contract.
func (e *Error) Render(color bool) string {
	var out string

	out += errorStyle.Apply(fmt.Sprintf("error: %s\n", e.messageText()), color)
	out += locationStyle.Apply(fmt.Sprintf("  --> %s:%d:%d\n", e.Location.File, e.Location.Line, e.Location.Column), color)
	out += sourceStyle.Apply(fmt.Sprintf("%4d | %s\n", e.Location.Line, e.SourceLine), color)

	pointer := "     | "
	for i := 0; i < e.Location.Column-1; i++ {
		pointer += " "
	}
	pointer += "^"
	out += pointerStyle.Apply(pointer, color) + "\n"

	return out
}

// New creates a syntax-kind error at loc with a formatted message.
func New(loc Location, sourceLine, format string, args ...interface{}) *Error {
	return &Error{
		Kind:       KindSyntaxError,
		Location:   loc,
		SourceLine: sourceLine,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NewKind creates an error of an explicit kind.
func NewKind(kind Kind, loc Location, sourceLine, format string, args ...interface{}) *Error {
	return &Error{
		Kind:       kind,
		Location:   loc,
		SourceLine: sourceLine,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NewUnexpectedToken creates a KindUnexpectedToken error.
func NewUnexpectedToken(loc Location, sourceLine, expected, found string) *Error {
	return &Error{
		Kind:       KindUnexpectedToken,
		Location:   loc,
		SourceLine: sourceLine,
		Expected:   expected,
		Found:      found,
	}
}
