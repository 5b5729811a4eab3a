package codegen

import (
	"fmt"

	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
)

// genNode dispatches on the dynamic node type and emits the instructions
// for it, following the evaluation contract: every node that represents a
// value-producing expression leaves exactly one 8-byte value on top of the
// stack when it returns with a nil error. FunctionDeclNode and
// FunctionPredeclNode are no-ops here; Generate emits top-level function
// bodies in their own dedicated pass (see generator.go), and a
// FunctionDeclNode nested inside a block is not emitted.
func (c *Context) genNode(node types.Node) *diag.Error {
	switch n := node.(type) {
	case *types.NumberNode:
		c.pushq(fmt.Sprintf("$%d", n.Value))
		return nil

	case *types.VariableNode:
		off := c.varLocation(n.Name)
		c.pushq(fmt.Sprintf("%d(%%rbp)", off))

		return nil

	case *types.StringLiteralNode:
		idx := c.addStringLiteral(n.Value)
		c.emitf("    leaq str%d(%%rip), %%rax", idx)
		c.pushq("%rax")

		return nil

	case *types.BinaryOpNode:
		return c.genBinaryOp(n)

	case *types.AssignmentNode:
		return c.genAssignment(n)

	case *types.ArrayIndexNode:
		return c.genArrayIndex(n)

	case *types.ArrayAssignmentNode:
		return c.genArrayAssignment(n)

	case *types.FunctionCallNode:
		return c.genFunctionCall(n)

	case *types.BlockNode:
		return c.genBlock(n)

	case *types.IfNode:
		return c.genIf(n)

	case *types.WhileNode:
		return c.genWhile(n)

	case *types.ReturnNode:
		return c.genReturn(n)

	case *types.InlineAsmNode:
		return c.genInlineAsm(n)

	case *types.FunctionPredeclNode:
		return nil

	case *types.FunctionDeclNode:
		return nil

	default:
		return diag.NewKind(diag.KindSyntaxError, diag.Location{File: "<codegen>"}, "",
			"internal: unsupported node type %T", node)
	}
}

// genBinaryOp evaluates both operands (except && and ||, which short-circuit
// and are handled separately) and combines them per n.Op. Comparisons use
// cmpq + set<cc> + movzbq to produce a 0/1 result the same width as every
// other value on the stack.
func (c *Context) genBinaryOp(n *types.BinaryOpNode) *diag.Error {
	switch n.Op {
	case types.OpAnd:
		return c.genLogicalAnd(n)
	case types.OpOr:
		return c.genLogicalOr(n)
	}

	if err := c.genNode(n.Left); err != nil {
		return err
	}

	if err := c.genNode(n.Right); err != nil {
		return err
	}

	c.popq("%rcx")
	c.popq("%rax")

	switch n.Op {
	case types.OpAdd:
		c.emit("    addq %rcx, %rax")
	case types.OpSub:
		c.emit("    subq %rcx, %rax")
	case types.OpMul:
		c.emit("    imulq %rcx, %rax")
	case types.OpDiv:
		c.emit("    cqo")
		c.emit("    idivq %rcx")
	case types.OpEq:
		c.emitCompare("sete")
	case types.OpNotEq:
		c.emitCompare("setne")
	case types.OpLess:
		c.emitCompare("setl")
	case types.OpGreater:
		c.emitCompare("setg")
	case types.OpLessEq:
		c.emitCompare("setle")
	case types.OpGreaterEq:
		c.emitCompare("setge")
	default:
		return diag.NewKind(diag.KindSyntaxError, diag.Location{File: "<codegen>"}, "",
			"internal: unsupported binary operator %s", n.Op)
	}

	c.pushq("%rax")

	return nil
}

func (c *Context) emitCompare(setcc string) {
	c.emit("    cmpq %rcx, %rax")
	c.emitf("    %s %%al", setcc)
	c.emit("    movzbq %al, %rax")
}

// genLogicalAnd implements classical short-circuit evaluation: the right
// operand only runs when the left operand is truthy.
func (c *Context) genLogicalAnd(n *types.BinaryOpNode) *diag.Error {
	falseLabel := c.newLabel()
	endLabel := c.newLabel()

	if err := c.genNode(n.Left); err != nil {
		return err
	}

	c.popq("%rax")
	c.emit("    testq %rax, %rax")
	c.emitf("    jz %s", falseLabel)

	if err := c.genNode(n.Right); err != nil {
		return err
	}

	c.popq("%rax")
	c.emit("    testq %rax, %rax")
	c.emit("    setne %al")
	c.emit("    movzbq %al, %rax")
	c.emitf("    jmp %s", endLabel)
	c.emitf("%s:", falseLabel)
	c.emit("    movq $0, %rax")
	c.emitf("%s:", endLabel)
	c.pushq("%rax")

	return nil
}

// genLogicalOr mirrors genLogicalAnd: the right operand only runs when the
// left operand is falsy.
func (c *Context) genLogicalOr(n *types.BinaryOpNode) *diag.Error {
	trueLabel := c.newLabel()
	endLabel := c.newLabel()

	if err := c.genNode(n.Left); err != nil {
		return err
	}

	c.popq("%rax")
	c.emit("    testq %rax, %rax")
	c.emitf("    jnz %s", trueLabel)

	if err := c.genNode(n.Right); err != nil {
		return err
	}

	c.popq("%rax")
	c.emit("    testq %rax, %rax")
	c.emit("    setne %al")
	c.emit("    movzbq %al, %rax")
	c.emitf("    jmp %s", endLabel)
	c.emitf("%s:", trueLabel)
	c.emit("    movq $1, %rax")
	c.emitf("%s:", endLabel)
	c.pushq("%rax")

	return nil
}

// genAssignment stores Value into Name's slot. It does not push the stored
// value back onto the stack afterward: a chained assignment used as a value
// (the value half of "a = b = c") reads whatever was already on the stack
// rather than the inner assignment's result. Assignment in statement
// position, the common case, is unaffected.
func (c *Context) genAssignment(n *types.AssignmentNode) *diag.Error {
	if err := c.genNode(n.Value); err != nil {
		return err
	}

	off := c.varLocation(n.Name)
	c.popq("%rax")
	c.emitf("    movq %%rax, %d(%%rbp)", off)

	return nil
}

// genArrayIndex loads one byte at Base+Index and zero-extends it to a full
// 64-bit stack value.
func (c *Context) genArrayIndex(n *types.ArrayIndexNode) *diag.Error {
	if err := c.genNode(n.Base); err != nil {
		return err
	}

	if err := c.genNode(n.Index); err != nil {
		return err
	}

	c.popq("%rcx")
	c.popq("%rax")
	c.emit("    movzbq (%rax,%rcx), %rax")
	c.pushq("%rax")

	return nil
}

// genArrayAssignment stores the low byte of Value at Base+Index. Like
// genAssignment, it does not push a result back.
func (c *Context) genArrayAssignment(n *types.ArrayAssignmentNode) *diag.Error {
	if err := c.genNode(n.Value); err != nil {
		return err
	}

	if err := c.genNode(n.Base); err != nil {
		return err
	}

	if err := c.genNode(n.Index); err != nil {
		return err
	}

	c.popq("%rcx")
	c.popq("%rax")
	c.popq("%rdx")
	c.emit("    movb %dl, (%rax,%rcx)")

	return nil
}
