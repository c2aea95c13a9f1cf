package symbols

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/types"
)

// Parameter is one function parameter, also usable as a Value reference to
// itself inside the function body.
type Parameter struct {
	ParamName string
	Type      types.Type
	Loc       location.Location
	Index     int
}

func (p *Parameter) Name() string               { return p.ParamName }
func (p *Parameter) Location() location.Location { return p.Loc }
func (p *Parameter) ValueType() types.Type       { return p.Type }
func (p *Parameter) isValue()                    {}

// Function is one declared (or monomorphized) function: either a concrete
// signature or, when GenericParams is non-empty and Origin is nil, an
// uninstantiated generic declaration whose body is only emitted once
// instantiated (§4.5).
type Function struct {
	FuncName      string
	Owner         *Module // declaring module, for mangling (§4.7)
	Parameters    []*Parameter
	ReturnType    types.Type
	GenericParams []string
	Attributes    []*Attribute
	Statement     Statement
	Scope         *LexicalScope
	Loc           location.Location
	AST           *ast.FunctionAST // the declaration's syntax, kept so a generic's instances can re-emit their body

	Origin    *Function   // non-nil for a monomorphized instance
	Arguments []types.Type // type arguments that produced this instance

	Mangled string // filled in once by the mangler (§4.7)
}

func (f *Function) Name() string               { return f.FuncName }
func (f *Function) Location() location.Location { return f.Loc }

// IsGeneric reports whether f is an uninstantiated generic declaration.
func (f *Function) IsGeneric() bool { return f.Origin == nil && len(f.GenericParams) > 0 }

// Native reports the `native[(name)]` attribute's override name, and
// whether it was present (§4.7: short-circuits mangling).
func (f *Function) Native() (string, bool) {
	for _, a := range f.Attributes {
		if a.Name() == "native" {
			if len(a.Arguments) == 1 {
				if s, ok := a.Arguments[0].(*StringConstant); ok {
					return s.Value, true
				}
			}
			return f.FuncName, true
		}
	}
	return "", false
}

// FunctionType derives this function's structural type.
func (f *Function) FunctionType() *types.FunctionType {
	params := make([]types.Type, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Type
	}
	return &types.FunctionType{Parameters: params, Return: f.ReturnType}
}

// Overload is the set of Function declarations sharing a name in one scope,
// merged across nested scopes by LexicalScope.Resolve (§4.4).
type Overload struct {
	OverloadName string
	functions    []*Function
}

// NewOverload creates a one-function overload set.
func NewOverload(name string, fn *Function) *Overload {
	return &Overload{OverloadName: name, functions: []*Function{fn}}
}

func (o *Overload) Name() string               { return o.OverloadName }
func (o *Overload) Location() location.Location { return o.functions[0].Loc }
func (o *Overload) Functions() []*Function      { return o.functions }

// Append adds fn if it isn't already present by pointer identity.
func (o *Overload) Append(fn *Function) {
	for _, existing := range o.functions {
		if existing == fn {
			return
		}
	}
	o.functions = append(o.functions, fn)
}

// Extend merges another overload's functions into this one.
func (o *Overload) Extend(other *Overload) {
	for _, fn := range other.functions {
		o.Append(fn)
	}
}
