package codegen

import (
	"fmt"

	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
)

// Generate lowers a fully parsed program to assembly text. Emission order:
// the string-literal pool and .data section, .section .text, the always
// present __zed_strlen/__zed_itoa helpers, every function body (across the
// entry file and every included file), one __init_N routine per included
// file that carries non-function top-level code, and finally _start, which
// calls each __init_N in inclusion order before running the entry file's
// own top-level code and exiting.
func Generate(prog *types.Program) (string, *diag.Error) {
	c := newContext()

	for _, item := range prog.Items {
		collectStrings(c, item.Node)
	}

	c.emitDataSection()
	c.emit(".section .text")
	c.emitRuntimeHelpers()

	for _, item := range prog.Items {
		if fn, ok := item.Node.(*types.FunctionDeclNode); ok {
			if err := c.genFunctionDecl(fn); err != nil {
				return "", err
			}
		}
	}

	groupIndex := make(map[string]int)

	var (
		groupItems [][]types.Node
		entryItems []types.Node
	)

	for _, item := range prog.Items {
		switch item.Node.(type) {
		case *types.FunctionDeclNode, *types.FunctionPredeclNode:
			continue
		}

		if item.File == "" {
			entryItems = append(entryItems, item.Node)
			continue
		}

		idx, ok := groupIndex[item.File]
		if !ok {
			idx = len(groupItems)
			groupIndex[item.File] = idx
			groupItems = append(groupItems, nil)
		}

		groupItems[idx] = append(groupItems[idx], item.Node)
	}

	initNames := make(map[string]string)
	n := 0

	for _, file := range prog.IncludedFiles {
		idx, ok := groupIndex[file]
		if !ok {
			continue
		}

		name := fmt.Sprintf("__init_%d", n)
		n++
		initNames[file] = name

		if err := c.genInitRoutine(name, groupItems[idx]); err != nil {
			return "", err
		}
	}

	c.emit("")
	c.emit(".global _start")
	c.emit("")
	c.emit("_start:")

	startErr := c.withFreshFrame(func() *diag.Error {
		c.emit("    pushq %rbp")
		c.emit("    movq %rsp, %rbp")
		c.emit("    subq $256, %rsp")

		for _, file := range prog.IncludedFiles {
			if name, ok := initNames[file]; ok {
				c.emitf("    call %s", name)
			}
		}

		for _, node := range entryItems {
			if err := c.genNode(node); err != nil {
				return err
			}
		}

		return nil
	})
	if startErr != nil {
		return "", startErr
	}

	c.emit("")
	c.emit("    movq %rbp, %rsp")
	c.emit("    popq %rbp")
	c.emit("    movq $60, %rax")
	c.emit("    xorq %rdi, %rdi")
	c.emit("    syscall")

	return c.asm.String(), nil
}

// genFunctionDecl emits one function's full prologue, body, and epilogue.
// Parameters 0-5 arrive in the SysV integer argument registers and are
// copied into their stack slots; parameters 6 and beyond were pushed by the
// caller and are read from (i-6+2)*8(%rbp); the two extra words account for
// the pushed return address and the callee's own saved %rbp.
func (c *Context) genFunctionDecl(n *types.FunctionDeclNode) *diag.Error {
	return c.withFreshFrame(func() *diag.Error {
		c.emit("")
		c.emitf("%s:", n.Name)
		c.emit("    pushq %rbp")
		c.emit("    movq %rsp, %rbp")
		c.emit("    subq $256, %rsp")

		for i, param := range n.Params {
			off := c.varLocation(param)

			if i < len(argRegisters) {
				c.emitf("    movq %s, %d(%%rbp)", argRegisters[i], off)
				continue
			}

			stackOff := (i-len(argRegisters)+2) * 8
			c.emitf("    movq %d(%%rbp), %%rax", stackOff)
			c.emitf("    movq %%rax, %d(%%rbp)", off)
		}

		if err := c.genNode(n.Body); err != nil {
			return err
		}

		c.emit("    movq %rbp, %rsp")
		c.emit("    popq %rbp")
		c.emit("    ret")

		return nil
	})
}

// genInitRoutine emits one included file's non-function top-level code as a
// callable routine, so _start can run every included file's side effects
// (in inclusion order) before its own.
func (c *Context) genInitRoutine(name string, items []types.Node) *diag.Error {
	return c.withFreshFrame(func() *diag.Error {
		c.emit("")
		c.emitf("%s:", name)
		c.emit("    pushq %rbp")
		c.emit("    movq %rsp, %rbp")
		c.emit("    subq $256, %rsp")

		for _, node := range items {
			if err := c.genNode(node); err != nil {
				return err
			}
		}

		c.emit("    movq %rbp, %rsp")
		c.emit("    popq %rbp")
		c.emit("    ret")

		return nil
	})
}
