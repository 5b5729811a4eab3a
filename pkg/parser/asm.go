package parser

import (
	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
	"github.com/zed-coding/zedc/pkg/lexer"
)

// parseInlineAsm parses:
//
//	asm "template" ( : operands ( : operands ( : clobbers )? )? )? ;
//
// The points between sections admit unusually free whitespace and
// comments, so the lexer's skip is invoked explicitly there rather than
// relied upon only implicitly via the next token read.
func (p *Parser) parseInlineAsm() (types.Node, *diag.Error) {
	if _, err := p.eat(lexer.TOKEN_ASM); err != nil {
		return nil, err
	}

	p.lex.SkipWhitespaceAndComments()

	tmplTok, err := p.eat(lexer.TOKEN_STRING)
	if err != nil {
		return nil, err
	}

	node := &types.InlineAsmNode{Template: tmplTok.Literal}

	if p.cur.Type == lexer.TOKEN_COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}

		p.lex.SkipWhitespaceAndComments()

		outputs, err := p.parseAsmOperandList()
		if err != nil {
			return nil, err
		}

		node.Outputs = outputs

		if p.cur.Type == lexer.TOKEN_COLON {
			if err := p.advance(); err != nil {
				return nil, err
			}

			p.lex.SkipWhitespaceAndComments()

			inputs, err := p.parseAsmOperandList()
			if err != nil {
				return nil, err
			}

			node.Inputs = inputs

			if p.cur.Type == lexer.TOKEN_COLON {
				if err := p.advance(); err != nil {
					return nil, err
				}

				p.lex.SkipWhitespaceAndComments()

				clobbers, err := p.parseClobberList()
				if err != nil {
					return nil, err
				}

				node.Clobbers = clobbers
			}
		}
	}

	if _, err := p.eat(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	return node, nil
}

// parseAsmOperandList parses a comma-separated, possibly empty list of
// "constraint" [IDENT] pairs.
func (p *Parser) parseAsmOperandList() ([]types.AsmOperand, *diag.Error) {
	if p.cur.Type == lexer.TOKEN_COLON || p.cur.Type == lexer.TOKEN_SEMICOLON {
		return nil, nil
	}

	var operands []types.AsmOperand

	for {
		constraintTok, err := p.eat(lexer.TOKEN_STRING)
		if err != nil {
			return nil, err
		}

		var name string

		if p.cur.Type == lexer.TOKEN_IDENT {
			name = p.cur.Literal

			if err := p.advance(); err != nil {
				return nil, err
			}
		}

		operands = append(operands, types.AsmOperand{Constraint: constraintTok.Literal, Name: name})

		if p.cur.Type != lexer.TOKEN_COMMA {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return operands, nil
}

// parseClobberList parses a comma-separated, possibly empty list of
// quoted clobber names.
func (p *Parser) parseClobberList() ([]string, *diag.Error) {
	if p.cur.Type == lexer.TOKEN_SEMICOLON {
		return nil, nil
	}

	var clobbers []string

	for {
		tok, err := p.eat(lexer.TOKEN_STRING)
		if err != nil {
			return nil, err
		}

		clobbers = append(clobbers, tok.Literal)

		if p.cur.Type != lexer.TOKEN_COMMA {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return clobbers, nil
}
