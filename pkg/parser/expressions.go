package parser

import (
	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
	"github.com/zed-coding/zedc/pkg/lexer"
)

// parseExpression is the grammar's top level: expression := assignment.
func (p *Parser) parseExpression() (types.Node, *diag.Error) {
	return p.parseAssignment()
}

// parseAssignment handles '=' right-associatively. Its left-hand operand
// is only legal as a Variable or ArrayIndex target.
func (p *Parser) parseAssignment() (types.Node, *diag.Error) {
	left, err := p.parseLogical()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != lexer.TOKEN_ASSIGN {
		return left, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	switch target := left.(type) {
	case *types.VariableNode:
		return &types.AssignmentNode{Name: target.Name, Value: value}, nil
	case *types.ArrayIndexNode:
		return &types.ArrayAssignmentNode{Base: target.Base, Index: target.Index, Value: value}, nil
	default:
		return nil, p.errorf("invalid assignment target")
	}
}

// parseLogical handles '&&'/'||', left-associatively, below assignment and
// above comparison.
func (p *Parser) parseLogical() (types.Node, *diag.Error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for {
		var op types.BinaryOp

		switch p.cur.Type {
		case lexer.TOKEN_AND:
			op = types.OpAnd
		case lexer.TOKEN_OR:
			op = types.OpOr
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}

		left = &types.BinaryOpNode{Left: left, Op: op, Right: right}
	}
}

// parseComparison handles '==' '!=' '<' '>' '<=' '>=', below logical and
// above additive.
func (p *Parser) parseComparison() (types.Node, *diag.Error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for {
		var op types.BinaryOp

		switch p.cur.Type {
		case lexer.TOKEN_EQ:
			op = types.OpEq
		case lexer.TOKEN_NEQ:
			op = types.OpNotEq
		case lexer.TOKEN_LT:
			op = types.OpLess
		case lexer.TOKEN_GT:
			op = types.OpGreater
		case lexer.TOKEN_LTE:
			op = types.OpLessEq
		case lexer.TOKEN_GTE:
			op = types.OpGreaterEq
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}

		left = &types.BinaryOpNode{Left: left, Op: op, Right: right}
	}
}

// parseAdditive handles '+' '-', below comparison and above multiplicative.
func (p *Parser) parseAdditive() (types.Node, *diag.Error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		var op types.BinaryOp

		switch p.cur.Type {
		case lexer.TOKEN_PLUS:
			op = types.OpAdd
		case lexer.TOKEN_MINUS:
			op = types.OpSub
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		left = &types.BinaryOpNode{Left: left, Op: op, Right: right}
	}
}

// parseMultiplicative handles '*' '/', below additive and above primary,
// the grammar's highest-precedence binary level.
func (p *Parser) parseMultiplicative() (types.Node, *diag.Error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		var op types.BinaryOp

		switch p.cur.Type {
		case lexer.TOKEN_STAR:
			op = types.OpMul
		case lexer.TOKEN_SLASH:
			op = types.OpDiv
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		left = &types.BinaryOpNode{Left: left, Op: op, Right: right}
	}
}

// parsePrimary := NUMBER | STRING | IDENT ('[' expr ']')? | IDENT '(' args ')' | '(' expr ')'
func (p *Parser) parsePrimary() (types.Node, *diag.Error) {
	switch p.cur.Type {
	case lexer.TOKEN_NUMBER:
		n := p.cur.Number
		if err := p.advance(); err != nil {
			return nil, err
		}

		return &types.NumberNode{Value: n}, nil

	case lexer.TOKEN_STRING:
		s := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}

		return &types.StringLiteralNode{Value: s}, nil

	case lexer.TOKEN_IDENT:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}

		switch p.cur.Type {
		case lexer.TOKEN_LPAREN:
			return p.parseFunctionCall(name)
		case lexer.TOKEN_LBRACKET:
			if err := p.advance(); err != nil {
				return nil, err
			}

			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			if _, err := p.eat(lexer.TOKEN_RBRACKET); err != nil {
				return nil, err
			}

			return &types.ArrayIndexNode{Base: &types.VariableNode{Name: name}, Index: index}, nil
		default:
			return &types.VariableNode{Name: name}, nil
		}

	case lexer.TOKEN_LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(lexer.TOKEN_RPAREN); err != nil {
			return nil, err
		}

		return expr, nil

	default:
		return nil, p.errorf("unexpected token in expression: %s", p.cur.Type)
	}
}

// parseFunctionCall parses the '(' args ')' suffix of a call to an
// already-lexed identifier. The callee must already have been declared,
// though its definition may still be pending.
func (p *Parser) parseFunctionCall(name string) (types.Node, *diag.Error) {
	if !p.shared.DeclaredFunctions[name] {
		return nil, p.errorf("call to undeclared function '%s'", name)
	}

	if _, err := p.eat(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}

	var args []types.Node

	if p.cur.Type != lexer.TOKEN_RPAREN {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		for p.cur.Type == lexer.TOKEN_COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}

			next, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			args = append(args, next)
		}
	}

	if _, err := p.eat(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	return &types.FunctionCallNode{Name: name, Args: args}, nil
}
