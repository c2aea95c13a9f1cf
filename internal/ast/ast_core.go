// Package ast is the concrete syntax tree produced by the parser (§3). Every
// token, including layout tokens, is retained so the tree can be flattened
// back to the original source (§8 property 1). Shape (Node interface,
// children iteration) is ported from the teacher's internal/ast/ast_core.go;
// the node set itself is the grammar of spec.md §4.1.
package ast

import (
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/token"
)

// Node is implemented by every CST node: tokens and composite nodes alike.
type Node interface {
	Location() location.Location
	// Children returns the node's child tokens and subtrees in source
	// order, so the tree can be walked generically (scope annotation,
	// flattening) without a type switch at every call site.
	Children() []Node
}

// Token wraps a lexed token as a leaf CST node.
type Token struct {
	Tok token.Token
}

func (t *Token) Location() location.Location { return t.Tok.Location }
func (t *Token) Children() []Node            { return nil }
func (t *Token) ID() token.ID                { return t.Tok.ID }
func (t *Token) Lexeme() string              { return t.Tok.Lexeme }

// IsMissing reports whether this token was synthesized by Parser.consume
// after an error (§4.1): an Error-id token never present in the real input.
func (t *Token) IsMissing() bool { return t.Tok.ID == token.Error && t.Tok.Lexeme == "" }

// Tree is the root composite node: imports, members, EOF token.
type Tree struct {
	Imports []Import
	Members []Member
	TokEOF  *Token
}

func (t *Tree) Children() []Node {
	var out []Node
	for _, i := range t.Imports {
		out = append(out, i.Node())
	}
	for _, m := range t.Members {
		out = append(out, m.Node())
	}
	out = append(out, t.TokEOF)
	return out
}

func (t *Tree) Location() location.Location {
	if len(t.Members) > 0 {
		return location.Merge(t.Members[0].Node().Location(), t.TokEOF.Location())
	}
	return t.TokEOF.Location()
}

// Member is implemented by every top-level/type-body declaration.
type Member interface {
	Node() Node
	isMember()
}

// Import is implemented by Import and ImportFrom.
type Import interface {
	Node() Node
	isImport()
}

// Alias is `qualified_name [ 'as' Name ]`.
type Alias struct {
	QualifiedName *QualifiedName
	TokAs         *Token // nil if no alias
	TokAlias      *Token // nil if no alias
}

func (a *Alias) Name() string {
	parts := a.QualifiedName.Names
	return parts[len(parts)-1].Lexeme()
}

func (a *Alias) AliasOrName() string {
	if a.TokAlias != nil {
		return a.TokAlias.Lexeme()
	}
	return a.Name()
}

func (a *Alias) Location() location.Location {
	if a.TokAlias != nil {
		return location.Merge(a.QualifiedName.Location(), a.TokAlias.Location())
	}
	return a.QualifiedName.Location()
}

func (a *Alias) Children() []Node {
	out := []Node{a.QualifiedName}
	if a.TokAs != nil {
		out = append(out, a.TokAs, a.TokAlias)
	}
	return out
}

// QualifiedName is `Name { '.' Name }`.
type QualifiedName struct {
	Names []*Token // only the Name tokens
	Dots  []*Token // the '.' tokens between them, len(Names)-1 of them
}

func (q *QualifiedName) Dotted() string {
	s := q.Names[0].Lexeme()
	for _, n := range q.Names[1:] {
		s += "." + n.Lexeme()
	}
	return s
}

func (q *QualifiedName) Location() location.Location {
	return location.Merge(q.Names[0].Location(), q.Names[len(q.Names)-1].Location())
}

func (q *QualifiedName) Children() []Node {
	out := make([]Node, 0, len(q.Names)+len(q.Dots))
	for i, n := range q.Names {
		if i > 0 {
			out = append(out, q.Dots[i-1])
		}
		out = append(out, n)
	}
	return out
}

// ImportAST is `'import' aliases NL`.
type ImportAST struct {
	TokImport  *Token
	Aliases    []*Alias
	TokNewLine *Token
}

func (i *ImportAST) isImport()               {}
func (i *ImportAST) Node() Node               { return i }
func (i *ImportAST) Location() location.Location {
	return location.Merge(i.TokImport.Location(), i.TokNewLine.Location())
}
func (i *ImportAST) Children() []Node {
	out := []Node{i.TokImport}
	for _, a := range i.Aliases {
		out = append(out, a)
	}
	return append(out, i.TokNewLine)
}

// ImportFromAST is `'from' qualified_name 'import' aliases NL`.
type ImportFromAST struct {
	TokFrom       *Token
	QualifiedName *QualifiedName
	TokImport     *Token
	Aliases       []*Alias
	TokNewLine    *Token
}

func (i *ImportFromAST) isImport() {}
func (i *ImportFromAST) Node() Node { return i }
func (i *ImportFromAST) ModuleName() string {
	return i.QualifiedName.Dotted()
}
func (i *ImportFromAST) Location() location.Location {
	return location.Merge(i.TokFrom.Location(), i.TokNewLine.Location())
}
func (i *ImportFromAST) Children() []Node {
	out := []Node{i.TokFrom, i.QualifiedName, i.TokImport}
	for _, a := range i.Aliases {
		out = append(out, a)
	}
	return append(out, i.TokNewLine)
}

// Attribute is `Name [ '(' arguments ')' ]`.
type Attribute struct {
	TokName   *Token
	TokOpen   *Token // nil if no parenthesized argument list (set for `()`)
	Arguments []Expression
	TokClose  *Token
}

func (a *Attribute) Name() string { return a.TokName.Lexeme() }
func (a *Attribute) Location() location.Location {
	if a.TokClose != nil {
		return location.Merge(a.TokName.Location(), a.TokClose.Location())
	}
	return a.TokName.Location()
}
func (a *Attribute) Children() []Node {
	out := []Node{a.TokName}
	if a.TokOpen != nil {
		out = append(out, a.TokOpen)
		for _, arg := range a.Arguments {
			out = append(out, arg.Node())
		}
		out = append(out, a.TokClose)
	}
	return out
}
