package parser

import (
	"os"

	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/resolve"
	"github.com/zed-coding/zedc/internal/types"
	"github.com/zed-coding/zedc/pkg/lexer"
)

// parseInclude parses '@include STRING ;', resolves the string literal to
// a canonical path, detects cycles against shared.IncludedFiles, recursively
// parses the target file to completion under the same SharedState, and
// returns its top-level items to be spliced in place of the directive.
func (p *Parser) parseInclude() ([]types.TopLevelItem, *diag.Error) {
	if _, err := p.eat(lexer.TOKEN_INCLUDE); err != nil {
		return nil, err
	}

	pathTok, err := p.eat(lexer.TOKEN_STRING)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	canonical, rerr := resolve.Resolve(pathTok.Literal, p.currentDir, p.shared.StdlibPath)
	if rerr != nil {
		return nil, diag.NewKind(diag.KindIOError, p.locAt(pathTok), p.lex.Line(pathTok.Line),
			"resolving include %q: %v", pathTok.Literal, rerr)
	}

	if p.shared.IncludedFiles[canonical] {
		return nil, diag.New(p.locAt(pathTok), p.lex.Line(pathTok.Line),
			"circular include detected: %s", pathTok.Literal)
	}

	p.shared.IncludedFiles[canonical] = true
	p.shared.IncludedOrder = append(p.shared.IncludedOrder, canonical)

	data, ioerr := os.ReadFile(canonical)
	if ioerr != nil {
		return nil, diag.NewKind(diag.KindIOError, p.locAt(pathTok), p.lex.Line(pathTok.Line),
			"reading include %q: %v", pathTok.Literal, ioerr)
	}

	child, perr := New(canonical, canonical, string(data), p.shared)
	if perr != nil {
		return nil, perr
	}

	return child.parseItems()
}
