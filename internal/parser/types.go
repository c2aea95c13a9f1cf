package parser

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/token"
)

// parseType is `atom_type ['[' type {',' type} ']']`.
func (p *Parser) parseType() ast.Type {
	atom := p.parseAtomType()
	if !p.match(token.LeftSquare) {
		return atom
	}

	tokOpen := p.consume(token.LeftSquare)
	args := []ast.Type{p.parseType()}
	for p.match(token.Comma) {
		p.consume(token.Comma)
		args = append(args, p.parseType())
	}
	tokClose := p.consume(token.RightSquare)
	return &ast.ParameterizedType{Base: atom, TokOpen: tokOpen, Arguments: args, TokClose: tokClose}
}

// parseAtomType is a bare `Name`.
func (p *Parser) parseAtomType() ast.Type {
	tokName := p.consume(token.Name)
	return &ast.NamedType{TokName: tokName}
}
