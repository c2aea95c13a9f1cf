package analyzer

import (
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/mangler"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// instantiateType monomorphizes a generic struct/class with concrete type
// arguments, on demand and cached by (definition, args) for referential
// identity (§4.5, §8 property 4) — ported from semantic.py's
// Type.instantiate + InstantiateContext, simplified: a struct/class's only
// substitutable members are its own fields' types.
func (a *Analyzer) instantiateType(base types.Type, args []types.Type, loc location.Location) types.Type {
	switch base := base.(type) {
	case *types.StructType:
		if !base.IsGeneric() {
			a.diags.Error(loc, diagnostics.ErrNotImplemented, "type %q is not generic", base.Name)
			return types.TheErrorType
		}
		if len(args) != len(base.GenericDecl) {
			a.diags.Error(loc, diagnostics.ErrTypeMismatch, "type %q expects %d type arguments, got %d", base.Name, len(base.GenericDecl), len(args))
			return types.TheErrorType
		}
		return a.module.TypeInstance(base, args, func() types.Type {
			substitution := make(map[string]types.Type, len(args))
			for i, name := range base.GenericDecl {
				substitution[name] = args[i]
			}
			instance := &types.StructType{Name: base.Name, Origin: base, Arguments: args}
			instance.Fields = make([]*types.FieldType, len(base.Fields))
			for i, f := range base.Fields {
				instance.Fields[i] = &types.FieldType{Name: f.Name, Type: substituteType(f.Type, substitution)}
			}
			return instance
		})
	case *types.ClassType:
		if !base.IsGeneric() {
			a.diags.Error(loc, diagnostics.ErrNotImplemented, "type %q is not generic", base.Name)
			return types.TheErrorType
		}
		if len(args) != len(base.GenericDecl) {
			a.diags.Error(loc, diagnostics.ErrTypeMismatch, "type %q expects %d type arguments, got %d", base.Name, len(base.GenericDecl), len(args))
			return types.TheErrorType
		}
		return a.module.TypeInstance(base, args, func() types.Type {
			substitution := make(map[string]types.Type, len(args))
			for i, name := range base.GenericDecl {
				substitution[name] = args[i]
			}
			instance := &types.ClassType{Name: base.Name, Origin: base, Arguments: args}
			instance.Fields = make([]*types.FieldType, len(base.Fields))
			for i, f := range base.Fields {
				instance.Fields[i] = &types.FieldType{Name: f.Name, Type: substituteType(f.Type, substitution)}
			}
			return instance
		})
	default:
		a.diags.Error(loc, diagnostics.ErrNotImplemented, "type is not generic")
		return types.TheErrorType
	}
}

// substituteType replaces every GenericParameterType named in substitution
// with its bound concrete type, recursing into a still-generic struct/class
// instance's own arguments so nested generics (`Pair[T, Box[U]]`) resolve.
func substituteType(t types.Type, substitution map[string]types.Type) types.Type {
	switch t := t.(type) {
	case *types.GenericParameterType:
		if concrete, ok := substitution[t.Name]; ok {
			return concrete
		}
		return t
	case *types.StructType:
		if len(t.Arguments) == 0 {
			return t
		}
		args := make([]types.Type, len(t.Arguments))
		for i, a := range t.Arguments {
			args[i] = substituteType(a, substitution)
		}
		return &types.StructType{Name: t.Name, Origin: t.Origin, Arguments: args, Fields: t.Fields}
	case *types.ClassType:
		if len(t.Arguments) == 0 {
			return t
		}
		args := make([]types.Type, len(t.Arguments))
		for i, a := range t.Arguments {
			args[i] = substituteType(a, substitution)
		}
		return &types.ClassType{Name: t.Name, Origin: t.Origin, Arguments: args, Fields: t.Fields}
	default:
		return t
	}
}

// instantiateFunction monomorphizes a generic function for a concrete
// type-argument tuple (one per the function's declared generic
// parameters, in declaration order), on demand and cached for identity
// (§4.5). It does not re-run declare on the origin's AST: it rewrites the
// already-declared origin's parameter/return types, then re-emits the
// origin's body for the instance through emitInstanceBody.
func (a *Analyzer) instantiateFunction(origin *symbols.Function, args []types.Type, loc location.Location) *symbols.Function {
	return a.module.FunctionInstance(origin, args, func() *symbols.Function {
		substitution := make(map[string]types.Type, len(args))
		for i, name := range origin.GenericParams {
			substitution[name] = args[i]
		}

		params := make([]*symbols.Parameter, len(origin.Parameters))
		for i, p := range origin.Parameters {
			params[i] = &symbols.Parameter{ParamName: p.ParamName, Type: substituteType(p.Type, substitution), Loc: p.Loc, Index: p.Index}
		}

		instance := &symbols.Function{
			FuncName:   origin.FuncName,
			Owner:      origin.Owner,
			Parameters: params,
			ReturnType: substituteType(origin.ReturnType, substitution),
			Attributes: origin.Attributes,
			Loc:        loc,
			Origin:     origin,
			Arguments:  args,
		}
		a.emitInstanceBody(origin, instance, substitution)
		instance.Mangled = mangler.Function(instance)
		return instance
	})
}
