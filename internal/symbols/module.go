package symbols

import (
	"fmt"

	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/types"
)

// Module is one analyzed source file: its root scope, its declared types
// and functions in source order, and the monomorphization caches that keep
// the instantiation engine idempotent (§4.5 — same (definition, type-args)
// pair must return the identical instance on every call).
type Module struct {
	Name  string
	URI   string
	Scope *LexicalScope

	Types     []types.Type
	Functions []*Function

	functionInstances map[string]*Function
	typeInstances     map[string]types.Type
}

// NewModule creates an empty module rooted at a fresh top-level scope.
func NewModule(name, uri string) *Module {
	return &Module{
		Name:              name,
		URI:               uri,
		Scope:             NewScope(nil),
		functionInstances: make(map[string]*Function),
		typeInstances:     make(map[string]types.Type),
	}
}

// instanceKey identifies a (definition, type-arguments) pair for the cache.
// The definition is keyed by pointer identity (via fmt's %p) rather than
// name, since two distinct generic declarations could share a name across
// modules; arguments are keyed by their String() form.
func instanceKey(definition interface{}, args []types.Type) string {
	key := fmt.Sprintf("%p", definition)
	for _, a := range args {
		key += "|" + a.String()
	}
	return key
}

// FunctionInstance returns the cached monomorphization of origin for args,
// or calls build and caches its result if this is the first request for
// that pair (§4.5, §8 property 4: referential identity across repeated
// calls).
func (m *Module) FunctionInstance(origin *Function, args []types.Type, build func() *Function) *Function {
	key := instanceKey(origin, args)
	if cached, ok := m.functionInstances[key]; ok {
		return cached
	}
	instance := build()
	m.functionInstances[key] = instance
	return instance
}

// TypeInstance is FunctionInstance's counterpart for generic struct/class
// instantiation.
func (m *Module) TypeInstance(origin types.Type, args []types.Type, build func() types.Type) types.Type {
	key := instanceKey(origin, args)
	if cached, ok := m.typeInstances[key]; ok {
		return cached
	}
	instance := build()
	m.typeInstances[key] = instance
	return instance
}

// Declare appends symbol to the module's root scope and, when it's a
// Function or a declared type, to the corresponding ordered list used for
// emission (§4.6: types, then functions, then others).
func (m *Module) Declare(symbol NamedSymbol, declaredType types.Type) error {
	if err := m.Scope.Append(symbol, ""); err != nil {
		return err
	}
	if fn, ok := symbol.(*Function); ok {
		m.Functions = append(m.Functions, fn)
	}
	if declaredType != nil {
		m.Types = append(m.Types, declaredType)
	}
	return nil
}

func (m *Module) Location() location.Location {
	if len(m.Functions) > 0 {
		return m.Functions[0].Location()
	}
	return location.Location{Filename: m.URI}
}
