package codegen

import (
	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
)

var argRegisters = []string{"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9"}

// genFunctionCall pushes arguments in reverse order (so the first argument
// ends up on top, and the seventh sits directly above the return address,
// matching the stack layout a >6-arg callee's prologue expects), pops up to
// the first six into the SysV integer argument registers, and leaves any
// remainder on the stack for the callee to read at positive %rbp offsets.
// When c.depth plus the number of stack-passed arguments is odd, a single
// 8-byte pad is reserved before the arguments are pushed, so %rsp is
// 16-aligned at the call without separating the stack arguments from the
// return address; an addq $8 after the call gives those 8 bytes back.
// Stack-passed arguments beyond the sixth are not popped by the caller
// after the call returns; the epilogue's movq %rbp, %rsp reclaims them.
func (c *Context) genFunctionCall(n *types.FunctionCallNode) *diag.Error {
	stackArgs := len(n.Args) - len(argRegisters)
	if stackArgs < 0 {
		stackArgs = 0
	}

	padded := (c.depth+stackArgs)%2 != 0
	if padded {
		c.emit("    subq $8, %rsp")
		c.depth++
	}

	for i := len(n.Args) - 1; i >= 0; i-- {
		if err := c.genNode(n.Args[i]); err != nil {
			return err
		}
	}

	regCount := len(n.Args)
	if regCount > len(argRegisters) {
		regCount = len(argRegisters)
	}

	for i := 0; i < regCount; i++ {
		c.popq(argRegisters[i])
	}

	c.emitf("    call %s", n.Name)

	if padded {
		c.emit("    addq $8, %rsp")
		c.depth--
	}

	c.pushq("%rax")

	return nil
}
