// Package parser implements the zed language's recursive-descent parser:
// token stream to AST, with two further responsibilities folded in:
// resolving @include directives across files (with circular-include
// detection) and enforcing the declared/defined contract for functions.
//
// Architecture:
//
// Expressions are parsed by precedence-climbing through a fixed chain of
// levels (highest to lowest): primary, multiplicative, additive,
// comparison, logical, assignment. Each level is one function that parses
// its operand via the next-higher level and then loops over its own
// operators. There is no generic Pratt table, since the grammar's
// precedence levels are fixed and few.
//
// Statements are a flat dispatch over the leading token: fn/return/if/
// while/block/asm fall to a dedicated parse function, everything else is
// parsed as an expression followed by ';'.
//
// Include resolution: an @include directive spawns a child Parser sharing
// this parser's *SharedState, recursively parses the referenced file to
// completion, and splices its resulting top-level items in place of the
// directive. Function declaration sets and the included-files set are
// therefore shared across the whole translation unit, not cloned and
// merged back.
//
// Error handling: every parse function returns (value, *diag.Error); the
// first non-nil error unwinds immediately with no recovery or multi-error
// accumulation.
package parser
