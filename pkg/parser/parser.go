package parser

import (
	"os"
	"path/filepath"

	"github.com/zed-coding/zedc/internal/diag"
	"github.com/zed-coding/zedc/internal/types"
	"github.com/zed-coding/zedc/pkg/lexer"
)

// Parser holds one file's cursor over the token stream. path is the real
// filesystem path (used for diagnostics and for resolving relative
// @include directives); tag is what gets stamped onto this file's
// TopLevelItems: "" for the entry file, the file's own canonical path for
// everything @include brings in.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token

	path       string
	tag        string
	currentDir string

	shared *SharedState
}

// New creates a parser over src (already-read file contents) and primes
// its first token.
func New(path, tag, src string, shared *SharedState) (*Parser, *diag.Error) {
	p := &Parser{
		lex:        lexer.New(src, path),
		path:       path,
		tag:        tag,
		currentDir: filepath.Dir(path),
		shared:     shared,
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Parser) advance() *diag.Error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}

	p.cur = tok

	return nil
}

func (p *Parser) loc() diag.Location {
	return diag.Location{File: p.path, Line: p.cur.Line, Column: p.cur.Column}
}

func (p *Parser) locAt(tok lexer.Token) diag.Location {
	return diag.Location{File: p.path, Line: tok.Line, Column: tok.Column}
}

func (p *Parser) sourceLine() string {
	return p.lex.Line(p.cur.Line)
}

func (p *Parser) errorf(format string, args ...interface{}) *diag.Error {
	return diag.New(p.loc(), p.sourceLine(), format, args...)
}

// expect reports an error if the current token is not tt; it does not
// consume anything.
func (p *Parser) expect(tt lexer.TokenType) *diag.Error {
	if p.cur.Type != tt {
		return diag.NewUnexpectedToken(p.loc(), p.sourceLine(), tt.String(), p.cur.Type.String())
	}

	return nil
}

// eat consumes the current token if it has type tt, returning the consumed
// token, or reports an unexpected-token error otherwise.
func (p *Parser) eat(tt lexer.TokenType) (lexer.Token, *diag.Error) {
	if err := p.expect(tt); err != nil {
		return lexer.Token{}, err
	}

	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}

	return tok, nil
}

// parseItems parses this file to EOF, splicing in any @include'd files'
// items in place of the directive, tagging each of this file's own items
// with p.tag.
func (p *Parser) parseItems() ([]types.TopLevelItem, *diag.Error) {
	var items []types.TopLevelItem

	for p.cur.Type != lexer.TOKEN_EOF {
		if p.cur.Type == lexer.TOKEN_INCLUDE {
			spliced, err := p.parseInclude()
			if err != nil {
				return nil, err
			}

			items = append(items, spliced...)

			continue
		}

		node, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		items = append(items, types.TopLevelItem{Node: node, File: p.tag})
	}

	return items, nil
}

// ParseFile reads path, parses it as the entry file of a translation unit,
// and resolves every transitively @include'd file against stdlibPath (the
// empty string selects the default stdlib root). It returns a fully
// spliced Program once every declared function has also been defined.
func ParseFile(path, stdlibPath string) (*types.Program, *diag.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.NewKind(diag.KindIOError, diag.Location{File: path}, "", "reading %q: %v", path, err)
	}

	canonical, absErr := filepath.Abs(path)
	if absErr != nil {
		return nil, diag.NewKind(diag.KindIOError, diag.Location{File: path}, "", "resolving %q: %v", path, absErr)
	}

	canonical = filepath.Clean(canonical)

	shared := NewSharedState(stdlibPath)
	// Seed the entry file into the included set too, so a cycle that loops
	// back through the entry file is caught the same way as a cycle among
	// included files; nothing stops a descendant from naming it.
	shared.IncludedFiles[canonical] = true

	p, perr := New(canonical, "", string(data), shared)
	if perr != nil {
		return nil, perr
	}

	items, perr := p.parseItems()
	if perr != nil {
		return nil, perr
	}

	for _, name := range shared.DeclOrder {
		if shared.DeclaredFunctions[name] && !shared.DefinedFunctions[name] {
			return nil, p.errorf("function '%s' declared but not defined", name)
		}
	}

	return &types.Program{Items: items, IncludedFiles: shared.IncludedOrder}, nil
}
