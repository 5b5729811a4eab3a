// Package types defines the AST produced by pkg/parser and consumed by
// pkg/codegen: a single recursively-owned sum type covering both
// expressions and statements, since the zed grammar does not separate them
// into distinct trees.
//
// Node categories:
//
// Literals and references:
//   - NumberNode: a signed 64-bit integer literal
//   - StringLiteralNode: a double-quoted string with escapes already
//     resolved by the lexer
//   - VariableNode: a bare identifier reference
//
// Compound expressions:
//   - BinaryOpNode: one of + - * / == != < > <= >= && ||
//   - AssignmentNode, ArrayAssignmentNode: assignment targets are variables
//     or array-index expressions only
//   - ArrayIndexNode: a single-byte load at base+index
//   - FunctionCallNode: a call to an already-declared function
//
// Statements:
//   - BlockNode, IfNode, WhileNode, ReturnNode
//   - FunctionDeclNode, FunctionPredeclNode: the declared/defined contract
//     tracked by pkg/parser's SharedState
//   - InlineAsmNode: a best-effort inline-assembly block with constrained
//     outputs, inputs, and clobbers
//
// Every node implements Node, with a Position accessor (left at the zero
// value by pkg/parser) and a human-readable String() form used by tests and
// debugging; TopLevelItem
// and Program (program.go) record which file each top-level node came from
// once @include splicing is complete.
package types
