// Package compiler wires the lexer/parser/codegen pipeline into the single
// entry point cmd/zedc calls: read a source file, parse it (splicing
// @include directives along the way), lower the result to assembly text.
package compiler

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/resolve"
	"github.com/zed-coding/zedc/pkg/codegen"
	"github.com/zed-coding/zedc/pkg/parser"
)

// Options configures a single compilation.
type Options struct {
	// InputPath is the entry source file.
	InputPath string
	// StdlibPath overrides the default stdlib root used to resolve
	// "std/..." includes. Empty means resolve.DefaultStdlibRoot().
	StdlibPath string
	// Color enables SGR color in rendered diagnostics.
	Color bool
	Log   *logrus.Logger
}

// Compile runs the full pipeline and returns the generated assembly text.
// On failure it returns a rendered diagnostic (err.Error() carries the full
// "error: ... / --> file:line:col / source / caret" text) ready to print to
// stderr.
func Compile(opts Options) (string, error) {
	log := opts.Log
	if log == nil {
		log = logrus.New()
	}

	stdlibPath := opts.StdlibPath
	if stdlibPath == "" {
		stdlibPath = resolve.DefaultStdlibRoot()
	}

	log.Debugf("parsing %s (stdlib root %s)", opts.InputPath, stdlibPath)

	prog, perr := parser.ParseFile(opts.InputPath, stdlibPath)
	if perr != nil {
		return "", renderedError{perr, opts.Color}
	}

	log.Debugf("parsed %d top-level items across %d included file(s)", len(prog.Items), len(prog.IncludedFiles))

	asm, gerr := codegen.Generate(prog)
	if gerr != nil {
		return "", renderedError{gerr, opts.Color}
	}

	log.Debugf("generated %d bytes of assembly", len(asm))

	return asm, nil
}

// renderedError wraps a *diag.Error so callers that only know the error
// interface still get the full multi-line diagnostic from Error().
type renderedError struct {
	err   *diag.Error
	color bool
}

func (r renderedError) Error() string { return r.err.Render(r.color) }

// WriteOutput writes asm to path, or to stdout when path is "-".
func WriteOutput(path, asm string) error {
	if path == "-" {
		_, err := os.Stdout.WriteString(asm)
		return err
	}

	return os.WriteFile(path, []byte(asm), 0o644)
}
