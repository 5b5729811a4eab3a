// Package codegen lowers a parsed zed program (internal/types.Program) to
// x86_64 System V AT&T-syntax assembly text.
//
// Evaluation is stack-based throughout: every expression node, once emitted,
// leaves exactly one 8-byte value on top of the machine stack.
// Variables and string literals are tracked in a single mutable
// Context threaded through the emission walk rather than as package-level
// state, so nothing here is safe to share across concurrent Generate calls
// without a fresh Context per call, which is exactly what Generate does.
package codegen
