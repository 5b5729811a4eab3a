package parser

import (
	"testing"

	"github.com/zed-coding/zedc/internal/types"
)

func parseExprString(t *testing.T, src string) types.Node {
	t.Helper()

	p, err := New("test.zed", "", src, NewSharedState("/nonexistent-stdlib"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	node, perr := p.parseExpression()
	if perr != nil {
		t.Fatalf("parseExpression: %v", perr)
	}

	return node
}

func parseProgramString(t *testing.T, src string) *types.Program {
	t.Helper()

	p, err := New("test.zed", "", src, NewSharedState("/nonexistent-stdlib"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	items, perr := p.parseItems()
	if perr != nil {
		t.Fatalf("parseItems: %v", perr)
	}

	return &types.Program{Items: items}
}

func TestArithmeticPrecedence(t *testing.T) {
	node := parseExprString(t, "2 + 3 * 4")

	bin, ok := node.(*types.BinaryOpNode)
	if !ok {
		t.Fatalf("expected *types.BinaryOpNode, got %T", node)
	}

	if bin.Op != types.OpAdd {
		t.Fatalf("expected top-level op Add, got %s", bin.Op)
	}

	right, ok := bin.Right.(*types.BinaryOpNode)
	if !ok || right.Op != types.OpMul {
		t.Fatalf("expected right operand 3*4, got %#v", bin.Right)
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	node := parseExprString(t, "a = b = c")

	outer, ok := node.(*types.AssignmentNode)
	if !ok {
		t.Fatalf("expected *types.AssignmentNode, got %T", node)
	}

	if outer.Name != "a" {
		t.Fatalf("expected outer target a, got %s", outer.Name)
	}

	inner, ok := outer.Value.(*types.AssignmentNode)
	if !ok || inner.Name != "b" {
		t.Fatalf("expected b = c as the assigned value, got %#v", outer.Value)
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	p, err := New("test.zed", "", "1 + 2 = 3", NewSharedState(""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, perr := p.parseExpression(); perr == nil {
		t.Fatalf("expected an invalid-assignment-target error, got none")
	}
}

func TestFunctionPredeclThenDefine(t *testing.T) {
	prog := parseProgramString(t, `
fn helper(a, b);
fn main() {
  return helper(1, 2);
}
fn helper(a, b) {
  return a + b;
}
`)

	if len(prog.Items) != 3 {
		t.Fatalf("expected 3 top-level items, got %d", len(prog.Items))
	}

	if _, ok := prog.Items[0].Node.(*types.FunctionPredeclNode); !ok {
		t.Fatalf("expected first item to be a predecl, got %T", prog.Items[0].Node)
	}
}

func TestCallToUndeclaredFunction(t *testing.T) {
	p, err := New("test.zed", "", "fn main() { return mystery(); }", NewSharedState(""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, perr := p.parseItems(); perr == nil {
		t.Fatalf("expected call-to-undeclared-function error, got none")
	}
}

func TestDuplicateDefinitionIsError(t *testing.T) {
	p, err := New("test.zed", "", "fn f() { return; } fn f() { return; }", NewSharedState(""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, perr := p.parseItems(); perr == nil {
		t.Fatalf("expected duplicate-definition error, got none")
	}
}

func TestRepredeclarationIsAllowed(t *testing.T) {
	parseProgramString(t, `
fn f(a);
fn f(a);
fn f(a) { return a; }
fn f(a);
`)
}

func TestArrayIndexAndAssignment(t *testing.T) {
	node := parseExprString(t, "buf[i] = 65")

	assign, ok := node.(*types.ArrayAssignmentNode)
	if !ok {
		t.Fatalf("expected *types.ArrayAssignmentNode, got %T", node)
	}

	base, ok := assign.Base.(*types.VariableNode)
	if !ok || base.Name != "buf" {
		t.Fatalf("expected base variable buf, got %#v", assign.Base)
	}
}

func TestInlineAsmParsing(t *testing.T) {
	node := parseProgramString(t, `asm "nop" : "=r" out : "r" in : "memory";`).Items[0].Node

	asm, ok := node.(*types.InlineAsmNode)
	if !ok {
		t.Fatalf("expected *types.InlineAsmNode, got %T", node)
	}

	if asm.Template != "nop" {
		t.Fatalf("expected template nop, got %q", asm.Template)
	}

	if len(asm.Outputs) != 1 || asm.Outputs[0].Name != "out" {
		t.Fatalf("expected one output named out, got %#v", asm.Outputs)
	}

	if len(asm.Inputs) != 1 || asm.Inputs[0].Name != "in" {
		t.Fatalf("expected one input named in, got %#v", asm.Inputs)
	}

	if len(asm.Clobbers) != 1 || asm.Clobbers[0] != "memory" {
		t.Fatalf("expected one clobber memory, got %#v", asm.Clobbers)
	}
}

func TestDeclaredButNotDefinedReported(t *testing.T) {
	src := "fn helper(a);\nfn main() { return; }\n"

	p, err := New("test.zed", "", src, NewSharedState(""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, perr := p.parseItems(); perr != nil {
		t.Fatalf("parseItems: %v", perr)
	}

	found := false

	for _, name := range p.shared.DeclOrder {
		if p.shared.DeclaredFunctions[name] && !p.shared.DefinedFunctions[name] {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected helper to be tracked as declared-but-not-defined")
	}
}
