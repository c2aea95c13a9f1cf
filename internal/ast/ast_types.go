package ast

import "github.com/orcinuscc/orcinus/internal/location"

// Type is implemented by every type-annotation node: NamedType,
// ParameterizedType, AutoType.
type Type interface {
	Node() Node
	isType()
}

// NamedType is a bare `Name` type reference.
type NamedType struct {
	TokName *Token
}

func (t *NamedType) isType()                   {}
func (t *NamedType) Node() Node                 { return t }
func (t *NamedType) Name() string               { return t.TokName.Lexeme() }
func (t *NamedType) Location() location.Location { return t.TokName.Location() }
func (t *NamedType) Children() []Node           { return []Node{t.TokName} }

// ParameterizedType is `type '[' type {',' type} ']'`.
type ParameterizedType struct {
	Base      Type
	TokOpen   *Token
	Arguments []Type
	TokClose  *Token
}

func (t *ParameterizedType) isType()   {}
func (t *ParameterizedType) Node() Node { return t }
func (t *ParameterizedType) Location() location.Location {
	return location.Merge(t.Base.Node().Location(), t.TokClose.Location())
}
func (t *ParameterizedType) Children() []Node {
	out := []Node{t.Base.Node(), t.TokOpen}
	for _, a := range t.Arguments {
		out = append(out, a.Node())
	}
	return append(out, t.TokClose)
}

// AutoType represents an omitted parameter/return type annotation (§4.1).
// It carries the adjacent name's location so the analyzer can still point
// diagnostics somewhere sensible (§4.6).
type AutoType struct {
	Loc location.Location
}

func (t *AutoType) isType()                   {}
func (t *AutoType) Node() Node                 { return t }
func (t *AutoType) Location() location.Location { return t.Loc }
func (t *AutoType) Children() []Node           { return nil }

// GenericParameter is a single `Name` in a generic parameter list.
type GenericParameter struct {
	TokName *Token
}

func (g *GenericParameter) Name() string               { return g.TokName.Lexeme() }
func (g *GenericParameter) Location() location.Location { return g.TokName.Location() }
func (g *GenericParameter) Children() []Node           { return []Node{g.TokName} }
