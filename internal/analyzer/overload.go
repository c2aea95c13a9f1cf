package analyzer

import (
	"sort"

	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// getFunctions collects every Function named `name` visible from scope,
// plus (if selfType is non-nil, i.e. the first argument has a receiver
// type) every method of that type — this is how `x.add(y)` and `add(x, y)`
// reach the same candidate set under Uniform Function Call (§C.4 of
// SPEC_FULL.md).
func (a *Analyzer) getFunctions(scope *symbols.LexicalScope, name string, selfType types.Type) []*symbols.Function {
	var functions []*symbols.Function
	if overload, ok := scope.Resolve(name).(*symbols.Overload); ok {
		functions = append(functions, overload.Functions()...)
	}
	if ts, ok := a.selfTypeScope(selfType); ok {
		if overload, ok := ts.Resolve(name).(*symbols.Overload); ok {
			functions = append(functions, overload.Functions()...)
		}
	}
	return functions
}

// selfTypeScope finds the scope a receiver type's own methods were
// declared into — for a monomorphized generic instance, that's its
// origin's scope, since instances don't redeclare methods of their own
// (§4.5: only the origin's declaration is walked for members).
func (a *Analyzer) selfTypeScope(selfType types.Type) (*symbols.LexicalScope, bool) {
	switch t := selfType.(type) {
	case *types.StructType:
		if t.Origin != nil {
			selfType = t.Origin
		}
	case *types.ClassType:
		if t.Origin != nil {
			selfType = t.Origin
		}
	}
	scope, ok := a.typeScopes[selfType]
	return scope, ok
}

// candidate pairs a checked Function with the priority check_function gave
// it and the order it was examined in, used only to break ties the same
// way the original's itertools.count()-keyed heap does (insertion order,
// not Function identity).
type candidate struct {
	priority int
	order    int
	fn       *symbols.Function
}

// checkNaiveFunction is `check_naive_function` (§4.4): priority is twice
// the arity when every parameter type matches exactly (invariant, no
// coercion), else the candidate is rejected.
func checkNaiveFunction(fn *symbols.Function, arguments []symbols.Value) (int, bool) {
	if len(fn.Parameters) != len(arguments) {
		return 0, false
	}
	for i, param := range fn.Parameters {
		if !sameHead(param.Type, arguments[i].ValueType()) {
			return 0, false
		}
	}
	return 2 * len(fn.Parameters), true
}

func sameHead(a, b types.Type) bool {
	if types.IsError(a) || types.IsError(b) {
		return true
	}
	return a == b
}

// checkGenericFunction is `check_generic_function` (§4.4, §9 Open Question
// 1): a generic candidate that unifies against the call's argument types
// always wins with priority -1, regardless of how many naive candidates
// also matched — preserved here exactly as specified, not "fixed" to rank
// by arity like the naive case.
func (a *Analyzer) checkGenericFunction(fn *symbols.Function, arguments []symbols.Value, loc location.Location) (int, *symbols.Function, bool) {
	if len(fn.Parameters) != len(arguments) {
		return 0, nil, false
	}

	ctx := types.NewContext()
	for i, param := range fn.Parameters {
		paramType := types.FromType(param.Type)
		argType := types.FromType(arguments[i].ValueType())
		if err := ctx.Unify(paramType, argType); err != nil {
			return 0, nil, false
		}
	}

	substitutions := ctx.Substitutions()
	args := make([]types.Type, len(fn.GenericParams))
	for i, name := range fn.GenericParams {
		if t, ok := substitutions[name]; ok {
			args[i] = t
		} else {
			args[i] = types.TheErrorType
		}
	}

	return -1, a.instantiateFunction(fn, args, loc), true
}

func (a *Analyzer) checkFunction(fn *symbols.Function, arguments []symbols.Value, loc location.Location) (int, *symbols.Function, bool) {
	if fn.IsGeneric() {
		return a.checkGenericFunction(fn, arguments, loc)
	}
	priority, ok := checkNaiveFunction(fn, arguments)
	return priority, fn, ok
}

// findFunction is `find_function` (§4.4): collects every candidate's
// priority, then returns the first (insertion order) candidate among those
// sharing the minimal priority — ties beyond the first are silently
// dropped, exactly as the original's heap-pop loop does.
func (a *Analyzer) findFunction(scope *symbols.LexicalScope, name string, arguments []symbols.Value, loc location.Location) *symbols.Function {
	var selfType types.Type
	if len(arguments) > 0 {
		selfType = arguments[0].ValueType()
	}

	functions := a.getFunctions(scope, name, selfType)

	var candidates []candidate
	for i, fn := range functions {
		if priority, instance, ok := a.checkFunction(fn, arguments, loc); ok {
			candidates = append(candidates, candidate{priority: priority, order: i, fn: instance})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority < candidates[j].priority
		}
		return candidates[i].order < candidates[j].order
	})
	return candidates[0].fn
}

// resolveFunction is `resolve_function`: findFunction plus the
// not-found diagnostic.
func (a *Analyzer) resolveFunction(scope *symbols.LexicalScope, name string, arguments []symbols.Value, loc location.Location) *symbols.Function {
	fn := a.findFunction(scope, name, arguments, loc)
	if fn == nil {
		a.diags.Error(loc, diagnostics.ErrOverloadFailed, "not found function %q for the given argument types", name)
		return nil
	}
	return fn
}
