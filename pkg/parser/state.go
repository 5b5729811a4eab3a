package parser

import "github.com/zed-coding/zedc/internal/resolve"

// SharedState is threaded by reference through the entry parser and every
// child parser spawned for an @include directive, so the declaration
// contract and cycle detection apply across the whole translation unit
// rather than per-file.
type SharedState struct {
	DeclaredFunctions map[string]bool
	DefinedFunctions  map[string]bool
	// DeclOrder records each name's first declaration, so the
	// declared-but-not-defined check at end of parse is independent of Go's
	// randomized map iteration order.
	DeclOrder []string

	IncludedFiles map[string]bool
	IncludedOrder []string

	StdlibPath string
}

// NewSharedState creates the state shared across one translation unit.
// stdlibPath overrides the default stdlib root when non-empty.
func NewSharedState(stdlibPath string) *SharedState {
	if stdlibPath == "" {
		stdlibPath = resolve.DefaultStdlibRoot()
	}

	return &SharedState{
		DeclaredFunctions: make(map[string]bool),
		DefinedFunctions:  make(map[string]bool),
		IncludedFiles:     make(map[string]bool),
		StdlibPath:        stdlibPath,
	}
}

func (s *SharedState) declare(name string) {
	if !s.DeclaredFunctions[name] {
		s.DeclOrder = append(s.DeclOrder, name)
	}

	s.DeclaredFunctions[name] = true
}

func (s *SharedState) define(name string) {
	s.DefinedFunctions[name] = true
}
