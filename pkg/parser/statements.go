package parser

import (
	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
	"github.com/zed-coding/zedc/pkg/lexer"
)

// parseStatement := funcDecl | return | if | while | block | asm | expression ';'
func (p *Parser) parseStatement() (types.Node, *diag.Error) {
	switch p.cur.Type {
	case lexer.TOKEN_FN:
		return p.parseFunctionDecl()
	case lexer.TOKEN_RETURN:
		return p.parseReturn()
	case lexer.TOKEN_IF:
		return p.parseIf()
	case lexer.TOKEN_WHILE:
		return p.parseWhile()
	case lexer.TOKEN_LBRACE:
		return p.parseBlock()
	case lexer.TOKEN_ASM:
		return p.parseInlineAsm()
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(lexer.TOKEN_SEMICOLON); err != nil {
			return nil, err
		}

		return expr, nil
	}
}

func (p *Parser) parseBlock() (*types.BlockNode, *diag.Error) {
	if _, err := p.eat(lexer.TOKEN_LBRACE); err != nil {
		return nil, err
	}

	var statements []types.Node

	for p.cur.Type != lexer.TOKEN_RBRACE {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		statements = append(statements, stmt)
	}

	if _, err := p.eat(lexer.TOKEN_RBRACE); err != nil {
		return nil, err
	}

	return &types.BlockNode{Statements: statements}, nil
}

func (p *Parser) parseIf() (types.Node, *diag.Error) {
	if _, err := p.eat(lexer.TOKEN_IF); err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var elseBranch types.Node

	if p.cur.Type == lexer.TOKEN_ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}

		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &types.IfNode{Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) parseWhile() (types.Node, *diag.Error) {
	if _, err := p.eat(lexer.TOKEN_WHILE); err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &types.WhileNode{Condition: cond, Body: body}, nil
}

func (p *Parser) parseReturn() (types.Node, *diag.Error) {
	if _, err := p.eat(lexer.TOKEN_RETURN); err != nil {
		return nil, err
	}

	var value types.Node

	if p.cur.Type != lexer.TOKEN_SEMICOLON {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		value = v
	}

	if _, err := p.eat(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	return &types.ReturnNode{Value: value}, nil
}

// parseFunctionDecl handles both forms of a function header: a trailing
// ';' instead of a body registers a predeclaration (repeatable, even after
// the definition), while a body registers both declaration and definition
// and is an error if the name is already defined.
func (p *Parser) parseFunctionDecl() (types.Node, *diag.Error) {
	if _, err := p.eat(lexer.TOKEN_FN); err != nil {
		return nil, err
	}

	nameTok, err := p.eat(lexer.TOKEN_IDENT)
	if err != nil {
		return nil, err
	}

	name := nameTok.Literal

	if _, err := p.eat(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}

	var params []string

	if p.cur.Type == lexer.TOKEN_IDENT {
		params = append(params, p.cur.Literal)

		if err := p.advance(); err != nil {
			return nil, err
		}

		for p.cur.Type == lexer.TOKEN_COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}

			paramTok, err := p.eat(lexer.TOKEN_IDENT)
			if err != nil {
				return nil, err
			}

			params = append(params, paramTok.Literal)
		}
	}

	if _, err := p.eat(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.TOKEN_SEMICOLON {
		if err := p.advance(); err != nil {
			return nil, err
		}

		p.shared.declare(name)

		return &types.FunctionPredeclNode{Name: name, Params: params}, nil
	}

	if p.shared.DefinedFunctions[name] {
		return nil, diag.New(p.locAt(nameTok), p.lex.Line(nameTok.Line),
			"function '%s' is already defined", name)
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	p.shared.declare(name)
	p.shared.define(name)

	return &types.FunctionDeclNode{Name: name, Params: params, Body: body}, nil
}
