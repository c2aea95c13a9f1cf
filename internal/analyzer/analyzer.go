// Package analyzer is the semantic analyzer (§4.2-§4.7): four passes over
// one module's CST (annotate scopes, import symbols, declare symbols, emit
// function bodies), overload resolution with on-demand generic
// instantiation, and name mangling. Pass structure and every lowering rule
// is ported from original_source/orcinus/language/semantic.py's
// SemanticModel, recast as Go type-switch dispatch in place of Python's
// @multimethod (per spec's own design note on this translation), with
// lexical scope threaded explicitly through each emit call instead of
// looked up from a node->scope map — needed so a generic function's body
// can be re-emitted once per instantiation against a fresh scope binding
// its generic parameters to that call's concrete type arguments (§4.5).
package analyzer

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/mangler"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// Importer resolves `from M import ...` to an already-analyzed module,
// implemented by internal/workspace so the analyzer itself stays free of
// file-system/caching concerns (§5).
type Importer interface {
	Load(moduleName string) (*symbols.Module, error)
}

// Analyzer runs the four-pass analysis described in §4.2 over one module.
type Analyzer struct {
	diags    *diagnostics.Manager
	importer Importer
	builtins *symbols.Module

	module *symbols.Module

	// typeScopes maps a declared struct/class type to the scope its own
	// members (fields, methods) were declared into, so a method call
	// through Uniform Function Call (x.add(y) or add(x, y), §C.4 of
	// SPEC_FULL.md) can find it from outside the type's own declaration.
	typeScopes map[types.Type]*symbols.LexicalScope

	// functionStack is the current_function stack (§9 Open Question 3):
	// pushed on entry to a function body, popped on exit. current() reads
	// the BACK of the stack (the most recently pushed, i.e. the innermost
	// enclosing function) — the original reads the deque's FRONT instead,
	// a bug this redesign fixes rather than reproduces.
	functionStack []*symbols.Function
}

// New creates an Analyzer. builtins may be nil only while analyzing the
// builtins module itself (internal/builtins).
func New(diags *diagnostics.Manager, importer Importer, builtins *symbols.Module) *Analyzer {
	return &Analyzer{diags: diags, importer: importer, builtins: builtins, typeScopes: make(map[types.Type]*symbols.LexicalScope)}
}

// Analyze runs all four passes and returns the resulting module.
func (a *Analyzer) Analyze(tree *ast.Tree, moduleName, uri string) *symbols.Module {
	a.module = symbols.NewModule(moduleName, uri)
	a.importSymbols(tree)
	a.declareMembers(tree.Members, a.module.Scope, nil)
	a.emitFunctionBodies(tree.Members)
	a.mangleFunctions()
	return a.module
}

// mangleFunctions fills in Mangled for every top-level declared function
// (§4.7); monomorphized instances are mangled lazily the first time a
// caller asks for one, since Function.Owner/Arguments are already fixed by
// instantiateFunction.
func (a *Analyzer) mangleFunctions() {
	for _, fn := range a.module.Functions {
		fn.Mangled = mangler.Function(fn)
	}
}

func (a *Analyzer) pushFunction(fn *symbols.Function) {
	a.functionStack = append(a.functionStack, fn)
}

func (a *Analyzer) popFunction() {
	a.functionStack = a.functionStack[:len(a.functionStack)-1]
}

// currentFunction returns the innermost function body currently being
// emitted — the back of the stack (see functionStack's doc comment).
func (a *Analyzer) currentFunction() *symbols.Function {
	return a.functionStack[len(a.functionStack)-1]
}

// importSymbols resolves `import`/`from ... import ...` into the module's
// root scope (§4.2); the dotted module name is passed whole to the Importer.
// The builtins module (int/bool/void/str and their dunder overloads) is
// always imported first, so every module sees them without writing an
// explicit import (§B.3 of SPEC_FULL.md).
func (a *Analyzer) importSymbols(tree *ast.Tree) {
	if a.builtins != nil {
		a.importAllFrom(a.builtins)
	}

	for _, imp := range tree.Imports {
		switch imp := imp.(type) {
		case *ast.ImportFromAST:
			imported, err := a.importer.Load(imp.ModuleName())
			if err != nil {
				a.diags.Error(imp.Location(), diagnostics.ErrImportUnresolved, "cannot import module %q: %s", imp.ModuleName(), err)
				continue
			}
			for _, alias := range imp.Aliases {
				symbol := imported.Scope.Resolve(alias.Name())
				if symbol == nil {
					a.diags.Error(imp.Location(), diagnostics.ErrImportUnresolved, "module %q has no member %q", imp.ModuleName(), alias.Name())
					continue
				}
				a.module.Scope.Append(symbol, alias.AliasOrName())
			}
		case *ast.ImportAST:
			for _, alias := range imp.Aliases {
				if _, err := a.importer.Load(alias.QualifiedName.Dotted()); err != nil {
					a.diags.Error(imp.Location(), diagnostics.ErrImportUnresolved, "cannot import module %q: %s", alias.QualifiedName.Dotted(), err)
				}
			}
		}
	}
}

func (a *Analyzer) importAllFrom(module *symbols.Module) {
	for _, fn := range module.Functions {
		a.module.Scope.Append(fn, "")
	}
	for _, typ := range module.Types {
		if name, ok := typeName(typ); ok {
			a.module.Scope.Append(&typeSymbol{t: typ, name: name, loc: module.Location()}, "")
		}
	}
}

func typeName(t types.Type) (string, bool) {
	switch t := t.(type) {
	case *types.StructType:
		return t.Name, true
	case *types.ClassType:
		return t.Name, true
	case *types.Primitive:
		return t.Name, true
	default:
		return "", false
	}
}

// typeSymbol lets a types.Type (which has no Location of its own) live in a
// LexicalScope, which indexes on symbols.NamedSymbol.
type typeSymbol struct {
	t    types.Type
	name string
	loc  location.Location
}

func (s *typeSymbol) Name() string                { return s.name }
func (s *typeSymbol) Location() location.Location { return s.loc }
func (s *typeSymbol) Type() types.Type             { return s.t }

// genericParamSymbol lets a generic parameter (`T` in `id[T](x: T)`) live in
// the function's own scope during body analysis, binding to a concrete Type
// when a generic instance's body is re-emitted (§4.5).
type genericParamSymbol struct {
	param *types.GenericParameterType
	bound types.Type // non-nil while emitting a monomorphized instance's body
	loc   location.Location
}

func (s *genericParamSymbol) Name() string                { return s.param.Name }
func (s *genericParamSymbol) Location() location.Location { return s.loc }
func (s *genericParamSymbol) Type() types.Type {
	if s.bound != nil {
		return s.bound
	}
	return s.param
}
