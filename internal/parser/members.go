package parser

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/token"
)

// parseMembers is `member*` up to EndFile.
func (p *Parser) parseMembers() []ast.Member {
	var members []ast.Member
	for !p.match(token.EndFile) {
		members = append(members, p.parseMember())
	}
	return members
}

// parseMember dispatches on attributes/pass/def/class/struct. Anything else
// is reported and resumed past the next NewLine.
func (p *Parser) parseMember() ast.Member {
	attrs := p.parseAttributes()

	switch {
	case p.match(token.Pass):
		return p.parsePassMember()
	case p.match(token.Def):
		return p.parseFunction(attrs)
	case p.match(token.Class):
		return p.parseClass(attrs)
	case p.match(token.Struct):
		return p.parseStruct(attrs)
	default:
		bad := p.consume(memberStarts...)
		return &ast.PassMemberAST{TokPass: bad, TokNewLine: p.resume(token.NewLine)}
	}
}

func (p *Parser) parsePassMember() *ast.PassMemberAST {
	tokPass := p.consume(token.Pass)
	tokNewLine := p.consume(token.NewLine)
	return &ast.PassMemberAST{TokPass: tokPass, TokNewLine: tokNewLine}
}

// parseAttributes is `('[' attribute {',' attribute} ']' NL)*`.
func (p *Parser) parseAttributes() []*ast.Attribute {
	var attrs []*ast.Attribute
	for p.match(token.LeftSquare) {
		p.consume(token.LeftSquare)
		attrs = append(attrs, p.parseAttribute())
		for p.match(token.Comma) {
			p.consume(token.Comma)
			attrs = append(attrs, p.parseAttribute())
		}
		p.consume(token.RightSquare)
		p.consume(token.NewLine)
	}
	return attrs
}

// parseAttribute is `Name [ '(' [expression {',' expression}] ')' ]`
// (§C.2 of SPEC_FULL.md: attribute arguments, dropped by the distilled
// spec, are supplemented here since native[(name)] needs exactly one).
func (p *Parser) parseAttribute() *ast.Attribute {
	tokName := p.consume(token.Name)
	if !p.match(token.LeftParenthesis) {
		return &ast.Attribute{TokName: tokName}
	}

	tokOpen := p.consume(token.LeftParenthesis)
	var args []ast.Expression
	if !p.match(token.RightParenthesis) {
		args = append(args, p.parseExpression())
		for p.match(token.Comma) {
			p.consume(token.Comma)
			args = append(args, p.parseExpression())
		}
	}
	tokClose := p.consume(token.RightParenthesis)
	return &ast.Attribute{TokName: tokName, TokOpen: tokOpen, Arguments: args, TokClose: tokClose}
}

// parseGenericParameters is `['[' GenericParameter {',' GenericParameter} ']']`.
func (p *Parser) parseGenericParameters() []*ast.GenericParameter {
	if !p.match(token.LeftSquare) {
		return nil
	}

	p.consume(token.LeftSquare)
	params := []*ast.GenericParameter{{TokName: p.consume(token.Name)}}
	for p.match(token.Comma) {
		p.consume(token.Comma)
		params = append(params, &ast.GenericParameter{TokName: p.consume(token.Name)})
	}
	p.consume(token.RightSquare)
	return params
}

// parseClass is `'class' Name gen_params ':' type_body`.
func (p *Parser) parseClass(attrs []*ast.Attribute) *ast.ClassAST {
	tokClass := p.consume(token.Class)
	tokName := p.consume(token.Name)
	genericParams := p.parseGenericParameters()
	tokColon := p.consume(token.Colon)
	members, tokEnd := p.parseTypeBody()
	return &ast.ClassAST{
		Attributes:    attrs,
		TokClass:      tokClass,
		TokName:       tokName,
		GenericParams: genericParams,
		Members:       members,
		TokColon:      tokColon,
		TokEnd:        tokEnd,
	}
}

// parseStruct is `'struct' Name gen_params ':' type_body` — generic
// parameters before the body, the swapped order from spec §9's struct
// ordering question (see ast.StructAST).
func (p *Parser) parseStruct(attrs []*ast.Attribute) *ast.StructAST {
	tokStruct := p.consume(token.Struct)
	tokName := p.consume(token.Name)
	genericParams := p.parseGenericParameters()
	tokColon := p.consume(token.Colon)
	members, tokEnd := p.parseTypeBody()
	return &ast.StructAST{
		Attributes:    attrs,
		TokStruct:     tokStruct,
		TokName:       tokName,
		GenericParams: genericParams,
		Members:       members,
		TokColon:      tokColon,
		TokEnd:        tokEnd,
	}
}

// parseTypeBody is `NL Indent type_member+ Undent`, or a single `pass NL`
// or `'...' NL` on the same line.
func (p *Parser) parseTypeBody() ([]ast.Member, *ast.Token) {
	if p.match(token.Pass) {
		m := p.parsePassMember()
		return nil, m.TokNewLine
	}
	if p.match(token.Ellipsis) {
		p.consume(token.Ellipsis)
		return nil, p.consume(token.NewLine)
	}

	p.consume(token.NewLine)
	p.consume(token.Indent)

	var members []ast.Member
	for !p.match(token.Undent) {
		members = append(members, p.parseTypeMember())
	}
	tokUndent := p.consume(token.Undent)
	return members, tokUndent
}

// parseTypeMember is a field, a nested function, or `pass`.
func (p *Parser) parseTypeMember() ast.Member {
	attrs := p.parseAttributes()

	switch {
	case p.match(token.Pass):
		return p.parsePassMember()
	case p.match(token.Def):
		return p.parseFunction(attrs)
	case p.match(token.Name):
		return p.parseField(attrs)
	default:
		bad := p.consume(token.Name)
		return &ast.PassMemberAST{TokPass: bad, TokNewLine: p.resume(token.NewLine)}
	}
}

// parseField is `Name ':' type NL`.
func (p *Parser) parseField(attrs []*ast.Attribute) *ast.FieldAST {
	tokName := p.consume(token.Name)
	tokColon := p.consume(token.Colon)
	typ := p.parseType()
	tokNewLine := p.consume(token.NewLine)
	return &ast.FieldAST{Attributes: attrs, TokName: tokName, TokColon: tokColon, Type: typ, TokNewLine: tokNewLine}
}

// parseFunction is `'def' Name gen_params '(' params ')' ['->' type] ':' function_statement`.
func (p *Parser) parseFunction(attrs []*ast.Attribute) *ast.FunctionAST {
	tokDef := p.consume(token.Def)
	tokName := p.consume(token.Name)
	genericParams := p.parseGenericParameters()
	tokOpen := p.consume(token.LeftParenthesis)
	params := p.parseParameters()
	tokClose := p.consume(token.RightParenthesis)

	var tokArrow *ast.Token
	var returnType ast.Type = &ast.AutoType{Loc: tokClose.Location()}
	if p.match(token.Arrow) {
		tokArrow = p.consume(token.Arrow)
		returnType = p.parseType()
	}

	tokColon := p.consume(token.Colon)
	statement := p.parseFunctionStatement()

	return &ast.FunctionAST{
		Attributes:    attrs,
		TokDef:        tokDef,
		TokName:       tokName,
		GenericParams: genericParams,
		TokOpen:       tokOpen,
		Parameters:    params,
		TokClose:      tokClose,
		TokArrow:      tokArrow,
		ReturnType:    returnType,
		TokColon:      tokColon,
		Statement:     statement,
	}
}

// parseParameters is `[parameter {',' parameter}]`.
func (p *Parser) parseParameters() []*ast.Parameter {
	if !p.match(token.Name) {
		return nil
	}

	params := []*ast.Parameter{p.parseParameter()}
	for p.match(token.Comma) {
		p.consume(token.Comma)
		params = append(params, p.parseParameter())
	}
	return params
}

// parseParameter is `Name [':' type]`.
func (p *Parser) parseParameter() *ast.Parameter {
	tokName := p.consume(token.Name)
	if !p.match(token.Colon) {
		return &ast.Parameter{TokName: tokName, Type: &ast.AutoType{Loc: tokName.Location()}}
	}

	tokColon := p.consume(token.Colon)
	typ := p.parseType()
	return &ast.Parameter{TokName: tokName, TokColon: tokColon, Type: typ}
}

// parseFunctionStatement is `'...' NL | NL block_statement`.
func (p *Parser) parseFunctionStatement() ast.Statement {
	if p.match(token.Ellipsis) {
		tokEllipsis := p.consume(token.Ellipsis)
		tokNewLine := p.consume(token.NewLine)
		return &ast.EllipsisStatement{TokEllipsis: tokEllipsis, TokNewLine: tokNewLine}
	}
	p.consume(token.NewLine)
	return p.parseBlockStatement()
}
