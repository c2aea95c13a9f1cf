package ast

import "github.com/orcinuscc/orcinus/internal/location"

// Parameter is `Name [ ':' type ]`.
type Parameter struct {
	TokName  *Token
	TokColon *Token // nil if type was omitted (AutoType)
	Type     Type
}

func (p *Parameter) Name() string               { return p.TokName.Lexeme() }
func (p *Parameter) Location() location.Location { return p.TokName.Location() }
func (p *Parameter) Children() []Node {
	out := []Node{p.TokName}
	if p.TokColon != nil {
		out = append(out, p.TokColon)
	}
	return append(out, p.Type.Node())
}

// FunctionAST is `'def' Name gen_params '(' params ')' ['->' type] ':' body`.
type FunctionAST struct {
	Attributes       []*Attribute
	TokDef           *Token
	TokName          *Token
	GenericParams    []*GenericParameter
	TokOpen          *Token
	Parameters       []*Parameter
	TokClose         *Token
	TokArrow         *Token // nil if return type omitted
	ReturnType       Type
	TokColon         *Token
	Statement        Statement // BlockStatement or EllipsisStatement
}

func (f *FunctionAST) isMember()  {}
func (f *FunctionAST) Node() Node  { return f }
func (f *FunctionAST) Name() string { return f.TokName.Lexeme() }
func (f *FunctionAST) Location() location.Location {
	begin := f.TokDef.Location()
	if len(f.Attributes) > 0 {
		begin = f.Attributes[0].Location()
	}
	return location.Merge(begin, f.Statement.Node().Location())
}
func (f *FunctionAST) Children() []Node {
	var out []Node
	for _, a := range f.Attributes {
		out = append(out, a)
	}
	out = append(out, f.TokDef, f.TokName)
	for _, g := range f.GenericParams {
		out = append(out, g)
	}
	out = append(out, f.TokOpen)
	for _, p := range f.Parameters {
		out = append(out, p)
	}
	out = append(out, f.TokClose)
	if f.TokArrow != nil {
		out = append(out, f.TokArrow)
	}
	out = append(out, f.ReturnType.Node(), f.TokColon, f.Statement.Node())
	return out
}

// TypeDeclaration is implemented by Class and Struct; the analyzer declares
// their members (types, then functions, then others) in the same pass (§4.6).
type TypeDeclaration interface {
	Member
	TypeName() string
	GenericParameters() []*GenericParameter
	TypeMembers() []Member
}

// ClassAST is `'class' Name gen_params type_body`.
type ClassAST struct {
	Attributes    []*Attribute
	TokClass      *Token
	TokName       *Token
	GenericParams []*GenericParameter
	Members       []Member
	TokColon      *Token
	TokEnd        *Token // Undent, or NewLine after `...`
}

func (c *ClassAST) isMember()                        {}
func (c *ClassAST) Node() Node                         { return c }
func (c *ClassAST) TypeName() string                   { return c.TokName.Lexeme() }
func (c *ClassAST) GenericParameters() []*GenericParameter { return c.GenericParams }
func (c *ClassAST) TypeMembers() []Member              { return c.Members }
func (c *ClassAST) Location() location.Location {
	begin := c.TokClass.Location()
	if len(c.Attributes) > 0 {
		begin = c.Attributes[0].Location()
	}
	return location.Merge(begin, c.TokEnd.Location())
}
func (c *ClassAST) Children() []Node {
	var out []Node
	for _, a := range c.Attributes {
		out = append(out, a)
	}
	out = append(out, c.TokClass, c.TokName)
	for _, g := range c.GenericParams {
		out = append(out, g)
	}
	out = append(out, c.TokColon)
	for _, m := range c.Members {
		out = append(out, m.Node())
	}
	return append(out, c.TokEnd)
}

// StructAST is `'struct' Name gen_params type_body` — the original parses
// members before generic parameters (an inverted dependency per spec §9's
// "Open question — struct parser ordering"); this redesign swaps the order
// so field types can resolve generic parameters declared on the struct.
type StructAST struct {
	Attributes    []*Attribute
	TokStruct     *Token
	TokName       *Token
	GenericParams []*GenericParameter
	Members       []Member
	TokColon      *Token
	TokEnd        *Token
}

func (s *StructAST) isMember()                        {}
func (s *StructAST) Node() Node                         { return s }
func (s *StructAST) TypeName() string                   { return s.TokName.Lexeme() }
func (s *StructAST) GenericParameters() []*GenericParameter { return s.GenericParams }
func (s *StructAST) TypeMembers() []Member              { return s.Members }
func (s *StructAST) Location() location.Location {
	begin := s.TokStruct.Location()
	if len(s.Attributes) > 0 {
		begin = s.Attributes[0].Location()
	}
	return location.Merge(begin, s.TokEnd.Location())
}
func (s *StructAST) Children() []Node {
	var out []Node
	for _, a := range s.Attributes {
		out = append(out, a)
	}
	out = append(out, s.TokStruct, s.TokName)
	for _, g := range s.GenericParams {
		out = append(out, g)
	}
	out = append(out, s.TokColon)
	for _, m := range s.Members {
		out = append(out, m.Node())
	}
	return append(out, s.TokEnd)
}

// FieldAST is `Name ':' type NL`.
type FieldAST struct {
	Attributes []*Attribute
	TokName    *Token
	TokColon   *Token
	Type       Type
	TokNewLine *Token
}

func (f *FieldAST) isMember()   {}
func (f *FieldAST) Node() Node   { return f }
func (f *FieldAST) Name() string { return f.TokName.Lexeme() }
func (f *FieldAST) Location() location.Location {
	begin := f.TokName.Location()
	if len(f.Attributes) > 0 {
		begin = f.Attributes[0].Location()
	}
	return location.Merge(begin, f.TokNewLine.Location())
}
func (f *FieldAST) Children() []Node {
	var out []Node
	for _, a := range f.Attributes {
		out = append(out, a)
	}
	return append(out, f.TokName, f.TokColon, f.Type.Node(), f.TokNewLine)
}

// PassMemberAST is a `pass` used as a member (empty type/module body filler).
type PassMemberAST struct {
	TokPass    *Token
	TokNewLine *Token
}

func (p *PassMemberAST) isMember() {}
func (p *PassMemberAST) Node() Node { return p }
func (p *PassMemberAST) Location() location.Location {
	return location.Merge(p.TokPass.Location(), p.TokNewLine.Location())
}
func (p *PassMemberAST) Children() []Node { return []Node{p.TokPass, p.TokNewLine} }
