package types

import "fmt"

// InferenceType is the Var/Ctor representation used only during overload
// resolution and instantiation (§4.4, §4.5): a generic candidate's
// parameter types are converted to InferenceType, unified against the call
// site's argument types, and the resulting substitution both validates the
// candidate and supplies the instantiation's type arguments.
//
// This mirrors semantic.py's InferenceType/InferenceVariable/
// InferenceConstructor, simplified to the spec's invariant unification
// (no row polymorphism, no higher-kinded partial application, no union
// subtyping) — the teacher's unify.go contributes only the co-induction
// cycle-guard shape, not its HKT/union cases.
type InferenceType interface {
	isInferenceType()
}

// InferenceVariable stands for one of a generic declaration's parameters
// (`T`), or a fresh variable introduced while testing a candidate.
type InferenceVariable struct {
	Name string
}

func (*InferenceVariable) isInferenceType() {}

// InferenceConstructor wraps a concrete semantic Type (or a parameterized
// one, with Arguments carrying its own InferenceType arguments so nested
// generics unify structurally, e.g. `Pair[T, int]`).
type InferenceConstructor struct {
	Type      Type
	Arguments []InferenceType
}

func (*InferenceConstructor) isInferenceType() {}

// FromType lifts a concrete Type into the Var/Ctor domain, turning any
// GenericParameterType into a variable named after the parameter (so it can
// be solved for) and recursing into a parameterized struct/class's type
// arguments or a function's parameter/return types, so e.g. `Pair[T, int]`
// unifies structurally against `Pair[str, int]` rather than only by head.
func FromType(t Type) InferenceType {
	switch t := t.(type) {
	case *GenericParameterType:
		return &InferenceVariable{Name: t.Name}
	case *StructType:
		args := make([]InferenceType, len(t.Arguments))
		for i, a := range t.Arguments {
			args[i] = FromType(a)
		}
		return &InferenceConstructor{Type: t, Arguments: args}
	case *ClassType:
		args := make([]InferenceType, len(t.Arguments))
		for i, a := range t.Arguments {
			args[i] = FromType(a)
		}
		return &InferenceConstructor{Type: t, Arguments: args}
	case *FunctionType:
		args := make([]InferenceType, len(t.Parameters)+1)
		for i, p := range t.Parameters {
			args[i] = FromType(p)
		}
		args[len(t.Parameters)] = FromType(t.Return)
		return &InferenceConstructor{Type: t, Arguments: args}
	default:
		return &InferenceConstructor{Type: t}
	}
}

// Context is a single unification run's substitution environment. Variables
// are resolved against it with Prune before every comparison, exactly as
// the original's InferenceContext.
type Context struct {
	substitution map[string]InferenceType
}

// NewContext creates an empty substitution environment.
func NewContext() *Context {
	return &Context{substitution: make(map[string]InferenceType)}
}

// Prune follows a chain of bound variables down to either an unbound
// variable or a constructor.
func (c *Context) Prune(t InferenceType) InferenceType {
	v, ok := t.(*InferenceVariable)
	if !ok {
		return t
	}
	bound, ok := c.substitution[v.Name]
	if !ok {
		return t
	}
	pruned := c.Prune(bound)
	c.substitution[v.Name] = pruned
	return pruned
}

// IsGeneric reports whether t (after pruning) is still an unbound variable.
func (c *Context) IsGeneric(t InferenceType) bool {
	_, ok := c.Prune(t).(*InferenceVariable)
	return ok
}

// occursIn reports whether v occurs in t, preventing an infinite type from
// being constructed by unification (the standard HM occurs-check).
func (c *Context) occursIn(v *InferenceVariable, t InferenceType) bool {
	t = c.Prune(t)
	if other, ok := t.(*InferenceVariable); ok {
		return other.Name == v.Name
	}
	ctor := t.(*InferenceConstructor)
	for _, arg := range ctor.Arguments {
		if c.occursIn(v, arg) {
			return true
		}
	}
	return false
}

// Unify makes a and b equal under c's substitution, binding free variables
// as needed. Two ErrorType constructors always unify successfully, so a
// poisoned argument never produces a second diagnostic (§7).
func (c *Context) Unify(a, b InferenceType) error {
	a, b = c.Prune(a), c.Prune(b)

	if av, ok := a.(*InferenceVariable); ok {
		return c.bind(av, b)
	}
	if bv, ok := b.(*InferenceVariable); ok {
		return c.bind(bv, a)
	}

	ac, bc := a.(*InferenceConstructor), b.(*InferenceConstructor)
	if IsError(ac.Type) || IsError(bc.Type) {
		return nil
	}

	if !ctorHeadsMatch(ac.Type, bc.Type) {
		return fmt.Errorf("type mismatch: %s is not %s", ac.Type, bc.Type)
	}
	if len(ac.Arguments) != len(bc.Arguments) {
		return fmt.Errorf("type mismatch: %s is not %s", ac.Type, bc.Type)
	}
	for i := range ac.Arguments {
		if err := c.Unify(ac.Arguments[i], bc.Arguments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) bind(v *InferenceVariable, t InferenceType) error {
	if tv, ok := t.(*InferenceVariable); ok && tv.Name == v.Name {
		return nil
	}
	if c.occursIn(v, t) {
		return fmt.Errorf("recursive type while binding %s", v.Name)
	}
	c.substitution[v.Name] = t
	return nil
}

// ctorHeadsMatch reports whether two constructor types have the same head:
// identical primitive, the same struct/class identity (for an instance,
// compared by Origin so `Pair[int, str]`'s head matches `Pair[T, U]`'s),
// or structurally-equal function types.
func ctorHeadsMatch(a, b Type) bool {
	switch a := a.(type) {
	case *Primitive:
		bp, ok := b.(*Primitive)
		return ok && a.Name == bp.Name
	case *StructType:
		bs, ok := b.(*StructType)
		return ok && structHead(a) == structHead(bs)
	case *ClassType:
		bc, ok := b.(*ClassType)
		return ok && classHead(a) == classHead(bc)
	case *FunctionType:
		bf, ok := b.(*FunctionType)
		return ok && len(a.Parameters) == len(bf.Parameters)
	default:
		return a == b
	}
}

func structHead(t *StructType) *StructType {
	if t.Origin != nil {
		return t.Origin
	}
	return t
}

func classHead(t *ClassType) *ClassType {
	if t.Origin != nil {
		return t.Origin
	}
	return t
}

// Resolve substitutes every variable in t with its binding, producing a
// concrete Type once unification has succeeded for a whole candidate. A
// variable left unbound (unused generic parameter) resolves to ErrorType.
func (c *Context) Resolve(t InferenceType) Type {
	t = c.Prune(t)
	if _, ok := t.(*InferenceVariable); ok {
		return TheErrorType
	}
	return t.(*InferenceConstructor).Type
}

// Substitutions collects every generic parameter name bound so far into a
// concrete Type, the form the instantiation engine (§4.5) consumes to build
// a monomorphized definition. Each name goes through Resolve, so a name
// bound to a composite constructor yields that constructor's Type as-is,
// and names that resolve to ErrorType are left out.
func (c *Context) Substitutions() map[string]Type {
	out := make(map[string]Type, len(c.substitution))
	for name := range c.substitution {
		resolved := c.Resolve(&InferenceVariable{Name: name})
		if !IsError(resolved) {
			out[name] = resolved
		}
	}
	return out
}
