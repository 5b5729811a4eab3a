package codegen

import (
	"fmt"
	"strings"

	"github.com/josharian/intern"

	"github.com/zed-coding/zedc/internal/diag"
)

// Context is the single mutable state threaded through code generation: the
// assembly text under construction, the current function's variable-to-slot
// map, the label counter, and the de-duplicated string-literal pool. Modeled
// as an explicit object rather than package-level mutable state, so Generate
// can be called repeatedly (and, if ever needed, concurrently) without one
// call's state leaking into another's.
type Context struct {
	asm *strings.Builder

	labelCount int

	varMap             map[string]int
	currentStackOffset int
	depth              int // outstanding net pushq count in the current frame, for call-site alignment padding

	stringLiterals []string
}

func newContext() *Context {
	return &Context{
		asm:    &strings.Builder{},
		varMap: make(map[string]int),
	}
}

func (c *Context) emit(line string) {
	c.asm.WriteString(line)
	c.asm.WriteString("\n")
}

func (c *Context) emitf(format string, args ...interface{}) {
	c.emit(fmt.Sprintf(format, args...))
}

// pushq emits a pushq of operand (e.g. "%rax", "$5") and tracks it against
// the frame's outstanding-push depth.
func (c *Context) pushq(operand string) {
	c.emitf("    pushq %s", operand)
	c.depth++
}

// popq emits a popq into reg (e.g. "%rax") and tracks it against depth.
func (c *Context) popq(reg string) {
	c.emitf("    popq %s", reg)
	c.depth--
}

// newLabel allocates the next numbered local label, .L0, .L1, ....
func (c *Context) newLabel() string {
	l := fmt.Sprintf(".L%d", c.labelCount)
	c.labelCount++

	return l
}

// varLocation returns the %rbp-relative byte offset for name, allocating a
// fresh 8-byte slot on first use.
func (c *Context) varLocation(name string) int {
	name = intern.String(name)

	if off, ok := c.varMap[name]; ok {
		return off
	}

	c.currentStackOffset -= 8
	c.varMap[name] = c.currentStackOffset

	return c.currentStackOffset
}

// addStringLiteral returns the index of s in the string pool, appending a
// new entry only if s hasn't been seen before. This is the single source of
// truth for string-pool membership: both the pre-emission collection pass
// and the StringLiteralNode emission itself call through here, so every
// reference to the same literal value resolves to the same strN label and
// the .data section never carries duplicate entries for one distinct value.
func (c *Context) addStringLiteral(s string) int {
	s = intern.String(s)

	for i, existing := range c.stringLiterals {
		if existing == s {
			return i
		}
	}

	c.stringLiterals = append(c.stringLiterals, s)

	return len(c.stringLiterals) - 1
}

// withFreshFrame saves the current variable map, stack offset, and push
// depth, resets them for the duration of fn (a function body, an
// include-file init routine, or the entry file's own top-level code), and
// restores them afterward. Generate only calls it for top-level routines,
// one after another (a function declaration nested inside a block is not
// emitted at all), so in practice the save/restore is never observed by a
// caller; it exists so the frame-local state is never accidentally carried
// from one routine into the next.
func (c *Context) withFreshFrame(fn func() *diag.Error) *diag.Error {
	oldVars, oldOffset, oldDepth := c.varMap, c.currentStackOffset, c.depth

	c.varMap = make(map[string]int)
	c.currentStackOffset = 0
	c.depth = 0

	err := fn()

	c.varMap, c.currentStackOffset, c.depth = oldVars, oldOffset, oldDepth

	return err
}
