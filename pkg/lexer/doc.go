// Package lexer provides lexical analysis for the zed language.
//
// The lexer is the first stage of the zedc pipeline, converting raw source
// text into a stream of tokens that the parser consumes one at a time (the
// grammar never needs more than a single token of lookahead beyond the
// current one).
//
// Key Features:
//
// Token Recognition:
//   - Keywords: if else while fn return from asm
//   - Directive: @include
//   - Literals: signed 64-bit integers, double-quoted strings with escapes,
//     identifiers
//   - Operators: + - * / = == != < > <= >= && ||
//   - Delimiters: ; , : ( ) { } [ ]
//
// Comment Handling:
//   - Single-line comments starting with //
//   - Multi-line comments enclosed in /* */, non-nesting, may span lines
//   - A lone '/' not followed by '/' or '*' is a division token; the lexer
//     peeks at the next character and leaves the '/' unconsumed rather than
//     taking it as a comment start
//   - An unterminated /* comment runs to the end of input and is not
//     reported as an error
//
// Position Tracking:
//   - 1-based line, 1-based column, recorded at the start of each token
//   - The lexer retains the source split by line for diagnostic rendering
//
// String Processing:
//   - Escapes: \n \t \r \\ \" \0 \b \f \v \'
//   - An unterminated string or unrecognized escape is a syntax error at
//     the point it occurs
//
// The lexer follows the maximal munch principle: multi-character operators
// (==, !=, <=, >=, &&, ||) are always tried before their single-character
// prefix.
package lexer
