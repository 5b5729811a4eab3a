package codegen

import (
	"strings"

	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
)

// asmRegisters is the fixed register table inline asm lowers against; only
// "r"/"=r" constraints are supported.
var asmRegisters = []string{"%rax", "%rbx", "%rcx", "%rdx"}

// genInlineAsm is a best-effort lowering: clobbers (other than the
// pseudo-clobbers "memory" and "cc") are saved before the block and restored
// after, in declared order and reverse order respectively; each input is
// loaded into the table register at its position, the template is emitted
// verbatim, and each output is stored back out of the table register at its
// position. Inputs and outputs index the same four-register table
// independently, so a block with more than four inputs, or more than four
// outputs, exceeds the table and is reported as an error.
func (c *Context) genInlineAsm(n *types.InlineAsmNode) *diag.Error {
	var savedClobbers []string

	for _, cl := range n.Clobbers {
		if cl == "memory" || cl == "cc" {
			continue
		}

		savedClobbers = append(savedClobbers, cl)
	}

	for _, reg := range savedClobbers {
		c.pushq("%" + reg)
	}

	for i, in := range n.Inputs {
		if i >= len(asmRegisters) {
			return diag.NewKind(diag.KindInvalidOperator, diag.Location{File: "<codegen>"}, "",
				"inline asm: too many inputs (max %d)", len(asmRegisters))
		}

		off := c.varLocation(in.Name)
		c.emitf("    movq %d(%%rbp), %s", off, asmRegisters[i])
	}

	for _, line := range strings.Split(n.Template, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		c.emitf("    %s", line)
	}

	for i, out := range n.Outputs {
		if i >= len(asmRegisters) {
			return diag.NewKind(diag.KindInvalidOperator, diag.Location{File: "<codegen>"}, "",
				"inline asm: too many outputs (max %d)", len(asmRegisters))
		}

		off := c.varLocation(out.Name)
		c.emitf("    movq %s, %d(%%rbp)", asmRegisters[i], off)
	}

	for i := len(savedClobbers) - 1; i >= 0; i-- {
		c.popq("%" + savedClobbers[i])
	}

	return nil
}
