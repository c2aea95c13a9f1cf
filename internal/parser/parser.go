// Package parser is the recursive-descent, single-token-lookahead parser of
// §4.1: no backtracking, lossless CST, and explicit error recovery via
// match/consume/resume. Grammar and recovery are ported from
// original_source/orcinus/language/parser.py; file layout (one file per
// grammar area) follows the teacher's internal/parser/*.go split.
package parser

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/token"
)

var memberStarts = []token.ID{token.Pass, token.Def, token.Class, token.Struct}
var expressionStarts = []token.ID{token.Number, token.String, token.Name, token.LeftParenthesis, token.Plus, token.Minus, token.Tilde}
var statementStarts = append(append([]token.ID{}, expressionStarts...), token.Pass, token.Return, token.While, token.If)

// Parser consumes a token stream and produces a CST.
type Parser struct {
	diagnostics *diagnostics.Manager
	tokens      []token.Token
	index       int
	errorMode   bool
}

// New creates a Parser over a fully-lexed token stream (§6: the scanner is
// an external collaborator; the parser just consumes its output).
func New(tokens []token.Token, diags *diagnostics.Manager) *Parser {
	return &Parser{diagnostics: diags, tokens: tokens}
}

func (p *Parser) current() token.Token {
	return p.tokens[p.index]
}

func (p *Parser) previousLocation() location.Location {
	loc := p.current().Location
	return location.Point(loc.Filename, loc.Begin)
}

// match peeks at the current token without consuming it.
func (p *Parser) match(ids ...token.ID) bool {
	cur := p.current().ID
	for _, id := range ids {
		if cur == id {
			return true
		}
	}
	return false
}

// consume returns the current token and advances if it matches one of ids
// (or ids is empty); otherwise enters error mode, reports one diagnostic per
// error region, and returns a synthesized Error token without advancing
// (§4.1).
func (p *Parser) consume(ids ...token.ID) *ast.Token {
	if len(ids) == 0 || p.match(ids...) {
		tok := p.current()
		if p.index < len(p.tokens)-1 {
			p.index++
		}
		return &ast.Token{Tok: tok}
	}

	if !p.errorMode {
		p.errorMode = true
		p.diagnostics.Error(p.current().Location, diagnostics.ErrParserExpected, "%s", p.errorMessage(ids))
	}

	return &ast.Token{Tok: token.Token{ID: token.Error, Lexeme: "", Location: p.previousLocation()}}
}

// resume skips tokens until one of ids is seen, then consumes it and clears
// error mode — the synchronizing step after consume() failed (§4.1).
func (p *Parser) resume(ids ...token.ID) *ast.Token {
	for !p.match(ids...) {
		p.consume()
	}
	p.errorMode = false
	return p.consume(ids...)
}

func (p *Parser) errorMessage(ids []token.ID) string {
	existing := displayName(p.current().ID)
	if len(ids) > 1 {
		s := ""
		for i, id := range ids {
			if i > 0 {
				s += ", "
			}
			s += "'" + displayName(id) + "'"
		}
		return "Expected one of " + s + ", but got '" + existing + "'"
	}
	return "Expected '" + displayName(ids[0]) + "', but got '" + existing + "'"
}

func displayName(id token.ID) string {
	return id.String()
}

// Parse parses a full module: `imports members EOF`.
func (p *Parser) Parse(filename string) *ast.Tree {
	_ = filename
	imports := p.parseImports()
	members := p.parseMembers()
	tokEOF := p.consume(token.EndFile)

	return &ast.Tree{Imports: imports, Members: members, TokEOF: tokEOF}
}
