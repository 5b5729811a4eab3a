// Package diag renders compiler diagnostics with the file:line:column and
// caret format shared by the lexer and parser.
package diag

import "fmt"

// style wraps text in an SGR escape sequence when color output is enabled.
type style struct {
	codes string
}

// Apply returns text wrapped in the style's SGR codes, or text unchanged
// when color is disabled.
func (s style) Apply(text string, color bool) string {
	if !color {
		return text
	}

	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", s.codes, text)
}

var (
	errorStyle    = style{"1;31"} // bold red
	locationStyle = style{"1;36"} // bold cyan
	sourceStyle   = style{"0"}    // default
	pointerStyle  = style{"1;31"} // bold red
)
