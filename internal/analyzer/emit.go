package analyzer

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// emitFunctionBodies is `emit_functions` (§4.2): walks every top-level
// function once its signature is already declared. Generic declarations'
// bodies are not emitted here — they're emitted lazily, once per distinct
// type-argument tuple, the first time overload resolution instantiates
// them (§4.5).
func (a *Analyzer) emitFunctionBodies(members []ast.Member) {
	for _, m := range members {
		switch m := m.(type) {
		case *ast.FunctionAST:
			a.emitTopLevelFunction(m)
		case *ast.ClassAST:
			a.emitTypeBodyFunctions(m.Members)
		case *ast.StructAST:
			a.emitTypeBodyFunctions(m.Members)
		}
	}
}

func (a *Analyzer) emitTypeBodyFunctions(members []ast.Member) {
	for _, m := range members {
		if fnAST, ok := m.(*ast.FunctionAST); ok {
			a.emitTopLevelFunction(fnAST)
		}
	}
}

func (a *Analyzer) emitTopLevelFunction(node *ast.FunctionAST) {
	overload, ok := a.module.Scope.Resolve(node.Name()).(*symbols.Overload)
	if !ok {
		return
	}

	var fn *symbols.Function
	for _, candidate := range overload.Functions() {
		if candidate.AST == node {
			fn = candidate
			break
		}
	}
	if fn == nil {
		return
	}

	if fn.IsGeneric() {
		return
	}
	if _, native := fn.Native(); native {
		return
	}

	a.emitBody(fn, node, fn.Scope)
}

// emitInstanceBody re-emits a generic function's body for one monomorphized
// instance: a fresh block scope nested in the origin's own declaration
// scope, with the instance's parameters (already concrete, see
// instantiateFunction) appended and the origin's generic parameter names
// rebound to their concrete arguments (§4.5).
func (a *Analyzer) emitInstanceBody(origin, instance *symbols.Function, substitution map[string]types.Type) {
	if _, native := origin.Native(); native {
		return
	}

	scope := symbols.NewScope(origin.Scope)
	for name, concrete := range substitution {
		scope.Append(&genericParamSymbol{param: &types.GenericParameterType{Name: name}, bound: concrete}, name)
	}

	a.emitBody(instance, origin.AST, scope)
}

// emitBody declares fn's parameters into a fresh body scope, pushes fn onto
// the current-function stack, lowers its statement, and pops.
func (a *Analyzer) emitBody(fn *symbols.Function, node *ast.FunctionAST, outer *symbols.LexicalScope) {
	scope := symbols.NewScope(outer)
	for _, param := range fn.Parameters {
		scope.Append(param, param.Name())
	}

	a.pushFunction(fn)
	fn.Statement = a.emitStatement(node.Statement, scope)
	a.popFunction()
}
