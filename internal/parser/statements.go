package parser

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/token"
)

// parseBlockStatement is `Indent statement+ Undent`; the NewLine before it
// belongs to the enclosing statement or function.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tokIndent := p.consume(token.Indent)

	var statements []ast.Statement
	for !p.match(token.Undent, token.EndFile) {
		statements = append(statements, p.parseStatement())
	}
	tokUndent := p.consume(token.Undent)
	return &ast.BlockStatement{TokIndent: tokIndent, Statements: statements, TokUndent: tokUndent}
}

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.match(token.Pass):
		return p.parsePassStatement()
	case p.match(token.Return):
		return p.parseReturnStatement()
	case p.match(token.If):
		return p.parseConditionStatement()
	case p.match(token.While):
		return p.parseWhileStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parsePassStatement() *ast.PassStatement {
	tokPass := p.consume(token.Pass)
	tokNewLine := p.consume(token.NewLine)
	return &ast.PassStatement{TokPass: tokPass, TokNewLine: tokNewLine}
}

// parseReturnStatement is `'return' [expression] NL`.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tokReturn := p.consume(token.Return)

	var value ast.Expression
	if p.match(expressionStarts...) {
		value = p.parseExpression()
	}
	tokNewLine := p.consume(token.NewLine)
	return &ast.ReturnStatement{TokReturn: tokReturn, Value: value, TokNewLine: tokNewLine}
}

// parseConditionStatement is `('if'|'elif') expr ':' NL block [elif_chain | else]`,
// mirroring the original's recursive parse_condition_statement so that a
// chain of `elif`s becomes a right-leaning tree of ConditionStatement nodes.
func (p *Parser) parseConditionStatement() *ast.ConditionStatement {
	return p.parseConditionOrElif(token.If)
}

func (p *Parser) parseConditionOrElif(leading token.ID) *ast.ConditionStatement {
	tokIf := p.consume(leading)
	condition := p.parseExpression()
	tokColon := p.consume(token.Colon)
	tokNewLine := p.consume(token.NewLine)
	then := p.parseBlockStatement()

	stmt := &ast.ConditionStatement{
		TokIf:         tokIf,
		Condition:     condition,
		TokColon:      tokColon,
		TokNewLine:    tokNewLine,
		ThenStatement: then,
	}

	switch {
	case p.match(token.Elif):
		stmt.ElseIf = p.parseConditionOrElif(token.Elif)
	case p.match(token.Else):
		stmt.Else = p.parseElseClause()
	}
	return stmt
}

func (p *Parser) parseElseClause() *ast.ElseClause {
	tokElse := p.consume(token.Else)
	tokColon := p.consume(token.Colon)
	tokNewLine := p.consume(token.NewLine)
	block := p.parseBlockStatement()
	return &ast.ElseClause{TokElse: tokElse, TokColon: tokColon, TokNewLine: tokNewLine, Statement: block}
}

// parseWhileStatement is `'while' expr ':' NL block [else]`.
func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tokWhile := p.consume(token.While)
	condition := p.parseExpression()
	tokColon := p.consume(token.Colon)
	tokNewLine := p.consume(token.NewLine)
	then := p.parseBlockStatement()

	var elseClause *ast.ElseClause
	if p.match(token.Else) {
		elseClause = p.parseElseClause()
	}

	return &ast.WhileStatement{
		TokWhile:      tokWhile,
		Condition:     condition,
		TokColon:      tokColon,
		TokNewLine:    tokNewLine,
		ThenStatement: then,
		Else:          elseClause,
	}
}

// parseExpressionStatement is `expression ['=' expression] NL`: an assignment
// target and a plain expression statement share the same prefix.
func (p *Parser) parseExpressionStatement() ast.Statement {
	value := p.parseExpression()

	if p.match(token.Equals) {
		tokEquals := p.consume(token.Equals)
		source := p.parseExpression()
		tokNewLine := p.consume(token.NewLine)
		return &ast.AssignStatement{Target: value, TokEquals: tokEquals, Source: source, TokNewLine: tokNewLine}
	}

	tokNewLine := p.consume(token.NewLine)
	return &ast.ExpressionStatement{Value: value, TokNewLine: tokNewLine}
}
