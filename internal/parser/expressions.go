package parser

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/token"
)

// parseExpression is the entry point of the precedence chain:
// addition -> multiplication -> unary -> power -> primary (loosest to
// tightest), ported from parse_expression in
// original_source/orcinus/language/parser.py.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAddition()
}

func (p *Parser) parseAddition() ast.Expression {
	left := p.parseMultiplication()
	for p.match(token.Plus, token.Minus) {
		op := ast.BinaryAdd
		if p.match(token.Minus) {
			op = ast.BinarySub
		}
		tokOperator := p.consume(token.Plus, token.Minus)
		right := p.parseMultiplication()
		left = &ast.BinaryExpression{Operator: op, LeftOperand: left, TokOperator: tokOperator, RightOperand: right}
	}
	return left
}

func (p *Parser) parseMultiplication() ast.Expression {
	left := p.parseUnary()
	for p.match(token.Star, token.Slash, token.DoubleSlash) {
		var op ast.BinaryID
		switch {
		case p.match(token.Star):
			op = ast.BinaryMul
		case p.match(token.Slash):
			op = ast.BinaryDiv
		default:
			op = ast.BinaryDoubleDiv
		}
		tokOperator := p.consume(token.Star, token.Slash, token.DoubleSlash)
		right := p.parseUnary()
		left = &ast.BinaryExpression{Operator: op, LeftOperand: left, TokOperator: tokOperator, RightOperand: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.match(token.Plus, token.Minus, token.Tilde) {
		var op ast.UnaryID
		switch {
		case p.match(token.Plus):
			op = ast.UnaryPos
		case p.match(token.Minus):
			op = ast.UnaryNeg
		default:
			op = ast.UnaryInv
		}
		tokOperator := p.consume(token.Plus, token.Minus, token.Tilde)
		operand := p.parseUnary()
		return &ast.UnaryExpression{Operator: op, TokOperator: tokOperator, Operand: operand}
	}
	return p.parsePower()
}

// parsePower is right-associative: `primary ['**' unary]`.
func (p *Parser) parsePower() ast.Expression {
	base := p.parsePrimary()
	if !p.match(token.DoubleStar) {
		return base
	}
	tokOperator := p.consume(token.DoubleStar)
	exponent := p.parseUnary()
	return &ast.BinaryExpression{Operator: ast.BinaryPow, LeftOperand: base, TokOperator: tokOperator, RightOperand: exponent}
}

// parsePrimary is `atom { '(' arguments ')' | '[' arguments ']' | '.' Name }`.
func (p *Parser) parsePrimary() ast.Expression {
	value := p.parseAtom()

	for {
		switch {
		case p.match(token.LeftParenthesis):
			tokOpen := p.consume(token.LeftParenthesis)
			args := p.parseArguments(token.RightParenthesis)
			tokClose := p.consume(token.RightParenthesis)
			value = &ast.CallExpression{Value: value, TokOpen: tokOpen, Arguments: args, TokClose: tokClose}
		case p.match(token.LeftSquare):
			tokOpen := p.consume(token.LeftSquare)
			args := p.parseArguments(token.RightSquare)
			tokClose := p.consume(token.RightSquare)
			value = &ast.SubscribeExpression{Value: value, TokOpen: tokOpen, Arguments: args, TokClose: tokClose}
		case p.match(token.Dot):
			tokDot := p.consume(token.Dot)
			tokName := p.consume(token.Name)
			value = &ast.AttributeExpression{Value: value, TokDot: tokDot, TokName: tokName}
		default:
			return value
		}
	}
}

// parseArguments is `[expression {',' expression}]`, stopping before close.
func (p *Parser) parseArguments(close token.ID) []ast.Expression {
	if p.match(close) {
		return nil
	}

	args := []ast.Expression{p.parseExpression()}
	for p.match(token.Comma) {
		p.consume(token.Comma)
		args = append(args, p.parseExpression())
	}
	return args
}

func (p *Parser) parseAtom() ast.Expression {
	switch {
	case p.match(token.Number):
		return &ast.IntegerExpression{TokNumber: p.consume(token.Number)}
	case p.match(token.String):
		return &ast.StringExpression{TokString: p.consume(token.String)}
	case p.match(token.Name):
		return &ast.NamedExpression{TokName: p.consume(token.Name)}
	case p.match(token.LeftParenthesis):
		tokOpen := p.consume(token.LeftParenthesis)
		inner := p.parseExpression()
		tokClose := p.consume(token.RightParenthesis)
		return &ast.ParenthesizedExpression{TokOpen: tokOpen, Inner: inner, TokClose: tokClose}
	default:
		tokName := p.consume(expressionStarts...)
		return &ast.NamedExpression{TokName: tokName}
	}
}
