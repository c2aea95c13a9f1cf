package analyzer

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/config"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// resolveType is `resolve_type` (§4.3): a NamedType either names one of the
// four primitives, a generic parameter in scope, or a declared type found
// by scope lookup; a ParameterizedType additionally instantiates.
func (a *Analyzer) resolveType(node ast.Type, scope *symbols.LexicalScope) types.Type {
	switch node := node.(type) {
	case *ast.AutoType:
		// Reached only for a parameter whose type was omitted outside the
		// two cases §4.3 resolves an AutoType itself (implicit self, the
		// function's own return type — both special-cased by their callers
		// before resolveType runs): every other omission is a genuine
		// missing annotation.
		a.diags.Error(node.Location(), diagnostics.ErrMissingType, "parameter requires an explicit type annotation")
		return types.TheErrorType
	case *ast.NamedType:
		return a.resolveNamedType(node, scope)
	case *ast.ParameterizedType:
		base := a.resolveType(node.Base, scope)
		args := make([]types.Type, len(node.Arguments))
		for i, arg := range node.Arguments {
			args[i] = a.resolveType(arg, scope)
		}
		return a.instantiateType(base, args, node.Location())
	default:
		a.diags.Error(node.Node().Location(), diagnostics.ErrNotImplemented, "unsupported type node")
		return types.TheErrorType
	}
}

func (a *Analyzer) resolveNamedType(node *ast.NamedType, scope *symbols.LexicalScope) types.Type {
	switch node.Name() {
	case config.VoidTypeName:
		return types.Void
	case config.BoolTypeName:
		return types.Bool
	case config.IntTypeName:
		return types.Int
	case config.StrTypeName:
		return types.Str
	}

	symbol := scope.Resolve(node.Name())
	switch symbol := symbol.(type) {
	case *typeSymbol:
		return symbol.Type()
	case *genericParamSymbol:
		return symbol.Type()
	}

	a.diags.Error(node.Location(), diagnostics.ErrUnresolvedName, "not found type %q in current scope", node.Name())
	return types.TheErrorType
}
