package ast

import "github.com/orcinuscc/orcinus/internal/location"

// Expression is implemented by every expression node (§3: "expression
// variants").
type Expression interface {
	Node() Node
	isExpression()
}

// UnaryID identifies a unary operator.
type UnaryID int

const (
	UnaryPos UnaryID = iota
	UnaryNeg
	UnaryInv
)

// BinaryID identifies a binary operator.
type BinaryID int

const (
	BinaryAdd BinaryID = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryDoubleDiv
	BinaryPow
)

// IntegerExpression is an integer literal.
type IntegerExpression struct {
	TokNumber *Token
}

func (e *IntegerExpression) isExpression()            {}
func (e *IntegerExpression) Node() Node                { return e }
func (e *IntegerExpression) Location() location.Location { return e.TokNumber.Location() }
func (e *IntegerExpression) Children() []Node          { return []Node{e.TokNumber} }
func (e *IntegerExpression) Lexeme() string            { return e.TokNumber.Lexeme() }

// StringExpression is a string literal, used by attribute arguments such as
// `native("name")` (§C.2 of SPEC_FULL.md).
type StringExpression struct {
	TokString *Token
}

func (e *StringExpression) isExpression()             {}
func (e *StringExpression) Node() Node                 { return e }
func (e *StringExpression) Location() location.Location { return e.TokString.Location() }
func (e *StringExpression) Children() []Node           { return []Node{e.TokString} }

// Value returns the literal's content with its surrounding quotes stripped.
func (e *StringExpression) Value() string {
	lexeme := e.TokString.Lexeme()
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

// NamedExpression is a bare identifier reference.
type NamedExpression struct {
	TokName *Token
}

func (e *NamedExpression) isExpression()             {}
func (e *NamedExpression) Node() Node                 { return e }
func (e *NamedExpression) Name() string               { return e.TokName.Lexeme() }
func (e *NamedExpression) Location() location.Location { return e.TokName.Location() }
func (e *NamedExpression) Children() []Node           { return []Node{e.TokName} }

// CallExpression is `value '(' arguments ')'`.
type CallExpression struct {
	Value     Expression
	TokOpen   *Token
	Arguments []Expression
	TokClose  *Token
}

func (e *CallExpression) isExpression() {}
func (e *CallExpression) Node() Node     { return e }
func (e *CallExpression) Location() location.Location {
	return location.Merge(e.Value.Node().Location(), e.TokClose.Location())
}
func (e *CallExpression) Children() []Node {
	out := []Node{e.Value.Node(), e.TokOpen}
	for _, a := range e.Arguments {
		out = append(out, a.Node())
	}
	return append(out, e.TokClose)
}

// SubscribeExpression is `value '[' arguments ']'`.
type SubscribeExpression struct {
	Value     Expression
	TokOpen   *Token
	Arguments []Expression
	TokClose  *Token
}

func (e *SubscribeExpression) isExpression() {}
func (e *SubscribeExpression) Node() Node     { return e }
func (e *SubscribeExpression) Location() location.Location {
	return location.Merge(e.Value.Node().Location(), e.TokClose.Location())
}
func (e *SubscribeExpression) Children() []Node {
	out := []Node{e.Value.Node(), e.TokOpen}
	for _, a := range e.Arguments {
		out = append(out, a.Node())
	}
	return append(out, e.TokClose)
}

// AttributeExpression is `value '.' Name`.
type AttributeExpression struct {
	Value   Expression
	TokDot  *Token
	TokName *Token
}

func (e *AttributeExpression) isExpression() {}
func (e *AttributeExpression) Node() Node     { return e }
func (e *AttributeExpression) Name() string   { return e.TokName.Lexeme() }
func (e *AttributeExpression) Location() location.Location {
	return location.Merge(e.Value.Node().Location(), e.TokName.Location())
}
func (e *AttributeExpression) Children() []Node {
	return []Node{e.Value.Node(), e.TokDot, e.TokName}
}

// ParenthesizedExpression is `'(' expression ')'`; the analyzer operates on
// Inner directly, the parentheses exist only so the tree stays lossless.
type ParenthesizedExpression struct {
	TokOpen  *Token
	Inner    Expression
	TokClose *Token
}

func (e *ParenthesizedExpression) isExpression() {}
func (e *ParenthesizedExpression) Node() Node     { return e }
func (e *ParenthesizedExpression) Location() location.Location {
	return location.Merge(e.TokOpen.Location(), e.TokClose.Location())
}
func (e *ParenthesizedExpression) Children() []Node {
	return []Node{e.TokOpen, e.Inner.Node(), e.TokClose}
}

// UnaryExpression is `('+'|'-'|'~') operand`.
type UnaryExpression struct {
	Operator    UnaryID
	TokOperator *Token
	Operand     Expression
}

func (e *UnaryExpression) isExpression() {}
func (e *UnaryExpression) Node() Node     { return e }
func (e *UnaryExpression) Location() location.Location {
	return location.Merge(e.TokOperator.Location(), e.Operand.Node().Location())
}
func (e *UnaryExpression) Children() []Node {
	return []Node{e.TokOperator, e.Operand.Node()}
}

// BinaryExpression is `left op right`.
type BinaryExpression struct {
	Operator     BinaryID
	LeftOperand  Expression
	TokOperator  *Token
	RightOperand Expression
}

func (e *BinaryExpression) isExpression() {}
func (e *BinaryExpression) Node() Node     { return e }
func (e *BinaryExpression) Location() location.Location {
	return location.Merge(e.LeftOperand.Node().Location(), e.RightOperand.Node().Location())
}
func (e *BinaryExpression) Children() []Node {
	return []Node{e.LeftOperand.Node(), e.TokOperator, e.RightOperand.Node()}
}
