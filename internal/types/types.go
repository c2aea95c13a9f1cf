// Package types is the semantic type model produced by the analyzer (§4.2,
// §4.3): primitive and declared types, function (arrow) types, and the
// inference-time Var/Ctor representation used for unification during
// overload resolution and generic instantiation. Shape mirrors
// original_source/orcinus/language/semantic.py's Type hierarchy, simplified
// to structs/interfaces instead of a Python multimethod class tree, and
// the unification algorithm's co-induction loop is grounded on the
// teacher's internal/typesystem/unify.go.
package types

// Type is implemented by every semantic type: primitives, struct/class
// types, generic types and their instances, function types, and ErrorType.
type Type interface {
	String() string
	isType()
}

// Primitive is one of the four builtin types wired by the __builtins__
// module (§4.3, §B.3 of SPEC_FULL.md).
type Primitive struct {
	Name string
}

func (t *Primitive) isType()        {}
func (t *Primitive) String() string { return t.Name }

var (
	Void = &Primitive{Name: "void"}
	Bool = &Primitive{Name: "bool"}
	Int  = &Primitive{Name: "int"}
	Str  = &Primitive{Name: "str"}
)

// ErrorType is the poison value of the type system (§4.6, §7): it never
// spuriously matches or unifies with anything, so one bad declaration
// doesn't cascade into unrelated diagnostics.
type ErrorType struct{}

func (t *ErrorType) isType()        {}
func (t *ErrorType) String() string { return "<error>" }

// TheErrorType is the single shared poison instance.
var TheErrorType = &ErrorType{}

// IsError reports whether t is the poison type.
func IsError(t Type) bool {
	_, ok := t.(*ErrorType)
	return ok
}

// GenericParameterType stands for an unbound generic parameter (`T` in
// `def id[T](x: T) -> T`) inside a declaration's own body, before any call
// site instantiates it.
type GenericParameterType struct {
	Name string
}

func (t *GenericParameterType) isType()        {}
func (t *GenericParameterType) String() string { return t.Name }

// StructType is a declared struct, nominal by identity (two StructTypes are
// equal only if they are the same *StructType) except when Origin is set,
// in which case it is a monomorphized instance of a generic struct and is
// cached by (Origin, Arguments) for referential identity (§4.5).
type StructType struct {
	Name        string
	Fields      []*FieldType
	GenericDecl []string // parameter names, empty for a non-generic struct

	Origin    *StructType // non-nil for a monomorphized instance
	Arguments []Type      // the type arguments that produced this instance
}

func (t *StructType) isType() {}
func (t *StructType) String() string {
	if len(t.Arguments) == 0 {
		return t.Name
	}
	s := t.Name + "["
	for i, a := range t.Arguments {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + "]"
}

// IsGeneric reports whether this is an uninstantiated generic declaration.
func (t *StructType) IsGeneric() bool { return t.Origin == nil && len(t.GenericDecl) > 0 }

// FieldType names one struct field.
type FieldType struct {
	Name string
	Type Type
}

// ClassType is a declared class: reference semantics, otherwise identical
// bookkeeping to StructType (nominal identity, same generic-instance
// caching scheme).
type ClassType struct {
	Name        string
	Fields      []*FieldType
	GenericDecl []string

	Origin    *ClassType
	Arguments []Type
}

func (t *ClassType) isType() {}
func (t *ClassType) String() string {
	if len(t.Arguments) == 0 {
		return t.Name
	}
	s := t.Name + "["
	for i, a := range t.Arguments {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + "]"
}

func (t *ClassType) IsGeneric() bool { return t.Origin == nil && len(t.GenericDecl) > 0 }

// FunctionType is a function's signature, compared structurally (two
// FunctionTypes are equal iff their parameter and return types are), unlike
// the nominal StructType/ClassType (§4.3).
type FunctionType struct {
	Parameters []Type
	Return     Type
}

func (t *FunctionType) isType() {}
func (t *FunctionType) String() string {
	s := "("
	for i, p := range t.Parameters {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") -> " + t.Return.String()
}

// Equal reports structural equality, used when two overloads would
// otherwise collide (§4.4).
func (t *FunctionType) Equal(other *FunctionType) bool {
	if len(t.Parameters) != len(other.Parameters) {
		return false
	}
	for i, p := range t.Parameters {
		if !sameType(p, other.Parameters[i]) {
			return false
		}
	}
	return sameType(t.Return, other.Return)
}

func sameType(a, b Type) bool {
	if sa, ok := a.(*StructType); ok {
		sb, ok := b.(*StructType)
		return ok && sa == sb
	}
	if ca, ok := a.(*ClassType); ok {
		cb, ok := b.(*ClassType)
		return ok && ca == cb
	}
	if fa, ok := a.(*FunctionType); ok {
		fb, ok := b.(*FunctionType)
		return ok && fa.Equal(fb)
	}
	return a == b
}
