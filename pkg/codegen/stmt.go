package codegen

import (
	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
)

func (c *Context) genBlock(n *types.BlockNode) *diag.Error {
	for _, stmt := range n.Statements {
		if err := c.genNode(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (c *Context) genIf(n *types.IfNode) *diag.Error {
	elseLabel := c.newLabel()
	endLabel := c.newLabel()

	if err := c.genNode(n.Condition); err != nil {
		return err
	}

	c.popq("%rax")
	c.emit("    testq %rax, %rax")
	c.emitf("    je %s", elseLabel)

	if err := c.genNode(n.Then); err != nil {
		return err
	}

	c.emitf("    jmp %s", endLabel)
	c.emitf("%s:", elseLabel)

	if n.Else != nil {
		if err := c.genNode(n.Else); err != nil {
			return err
		}
	}

	c.emitf("%s:", endLabel)

	return nil
}

func (c *Context) genWhile(n *types.WhileNode) *diag.Error {
	startLabel := c.newLabel()
	endLabel := c.newLabel()

	c.emitf("%s:", startLabel)

	if err := c.genNode(n.Condition); err != nil {
		return err
	}

	c.popq("%rax")
	c.emit("    testq %rax, %rax")
	c.emitf("    je %s", endLabel)

	if err := c.genNode(n.Body); err != nil {
		return err
	}

	c.emitf("    jmp %s", startLabel)
	c.emitf("%s:", endLabel)

	return nil
}

// genReturn evaluates Value (if any) into %rax, then tears down the current
// frame exactly like a function epilogue. A bare "return;" leaves whatever
// %rax already holds.
func (c *Context) genReturn(n *types.ReturnNode) *diag.Error {
	if n.Value != nil {
		if err := c.genNode(n.Value); err != nil {
			return err
		}

		c.popq("%rax")
	}

	c.emit("    movq %rbp, %rsp")
	c.emit("    popq %rbp")
	c.emit("    ret")

	return nil
}
