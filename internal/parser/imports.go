package parser

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/token"
)

// parseImports is `import* `.
func (p *Parser) parseImports() []ast.Import {
	var imports []ast.Import
	for p.match(token.Import, token.From) {
		imports = append(imports, p.parseImport())
	}
	return imports
}

func (p *Parser) parseImport() ast.Import {
	if p.match(token.From) {
		tokFrom := p.consume(token.From)
		name := p.parseQualifiedName()
		tokImport := p.consume(token.Import)
		aliases := p.parseAliases()
		tokNewLine := p.consume(token.NewLine)
		return &ast.ImportFromAST{
			TokFrom:       tokFrom,
			QualifiedName: name,
			TokImport:     tokImport,
			Aliases:       aliases,
			TokNewLine:    tokNewLine,
		}
	}

	tokImport := p.consume(token.Import)
	aliases := p.parseAliases()
	tokNewLine := p.consume(token.NewLine)
	return &ast.ImportAST{TokImport: tokImport, Aliases: aliases, TokNewLine: tokNewLine}
}

// parseAliases is `alias { ',' alias }`.
func (p *Parser) parseAliases() []*ast.Alias {
	aliases := []*ast.Alias{p.parseAlias()}
	for p.match(token.Comma) {
		p.consume(token.Comma)
		aliases = append(aliases, p.parseAlias())
	}
	return aliases
}

func (p *Parser) parseAlias() *ast.Alias {
	name := p.parseQualifiedName()
	if p.match(token.As) {
		tokAs := p.consume(token.As)
		tokAlias := p.consume(token.Name)
		return &ast.Alias{QualifiedName: name, TokAs: tokAs, TokAlias: tokAlias}
	}
	return &ast.Alias{QualifiedName: name}
}

// parseQualifiedName is `Name { '.' Name }`.
func (p *Parser) parseQualifiedName() *ast.QualifiedName {
	names := []*ast.Token{p.consume(token.Name)}
	var dots []*ast.Token
	for p.match(token.Dot) {
		dots = append(dots, p.consume(token.Dot))
		names = append(names, p.consume(token.Name))
	}
	return &ast.QualifiedName{Names: names, Dots: dots}
}
