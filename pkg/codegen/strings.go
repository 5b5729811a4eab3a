package codegen

import "github.com/zed-coding/zedc/internal/types"

// collectStrings walks node and every node reachable from it, registering
// each string literal into the pool via addStringLiteral. Run once over the
// whole program before any instruction is emitted, so every strN label
// genNode references already exists in the pool (and is already
// deduplicated) by the time it's referenced.
func collectStrings(c *Context, node types.Node) {
	switch n := node.(type) {
	case nil:
		return
	case *types.StringLiteralNode:
		c.addStringLiteral(n.Value)
	case *types.BinaryOpNode:
		collectStrings(c, n.Left)
		collectStrings(c, n.Right)
	case *types.AssignmentNode:
		collectStrings(c, n.Value)
	case *types.ArrayIndexNode:
		collectStrings(c, n.Base)
		collectStrings(c, n.Index)
	case *types.ArrayAssignmentNode:
		collectStrings(c, n.Base)
		collectStrings(c, n.Index)
		collectStrings(c, n.Value)
	case *types.FunctionCallNode:
		for _, arg := range n.Args {
			collectStrings(c, arg)
		}
	case *types.BlockNode:
		for _, stmt := range n.Statements {
			collectStrings(c, stmt)
		}
	case *types.IfNode:
		collectStrings(c, n.Condition)
		collectStrings(c, n.Then)
		collectStrings(c, n.Else)
	case *types.WhileNode:
		collectStrings(c, n.Condition)
		collectStrings(c, n.Body)
	case *types.FunctionDeclNode:
		collectStrings(c, n.Body)
	case *types.ReturnNode:
		collectStrings(c, n.Value)
	case *types.NumberNode, *types.VariableNode, *types.FunctionPredeclNode, *types.InlineAsmNode:
		// no string literals reachable from these
	}
}

// emitDataSection emits the .data section and one strN label per pooled
// literal, or nothing at all when the pool is empty.
func (c *Context) emitDataSection() {
	if len(c.stringLiterals) == 0 {
		return
	}

	c.emit(".section .data")

	for i, s := range c.stringLiterals {
		c.emitf("str%d:", i)
		c.emitf("    .string %q", s)
	}

	c.emit("")
}
