package analyzer

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/config"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// declareMembers declares every type header first, so a field or signature
// can name a type declared later in the same file; then the type bodies
// (field types and nested members); then the functions, so a signature
// that instantiates a generic type sees that type's fields — mirroring
// the original's "types, then functions, then others" declaration order
// (§4.2, §4.6).
func (a *Analyzer) declareMembers(members []ast.Member, scope *symbols.LexicalScope, ownerType types.Type) {
	for _, m := range members {
		switch m := m.(type) {
		case *ast.ClassAST, *ast.StructAST:
			a.declareTypeHeader(m, scope)
		}
	}
	for _, m := range members {
		switch m := m.(type) {
		case *ast.ClassAST:
			a.declareTypeBody(m, m.Members, scope)
		case *ast.StructAST:
			a.declareTypeBody(m, m.Members, scope)
		}
	}
	for _, m := range members {
		switch m := m.(type) {
		case *ast.FunctionAST:
			a.declareFunction(m, scope, ownerType)
		}
	}
}

func (a *Analyzer) declareTypeHeader(m ast.Member, scope *symbols.LexicalScope) {
	switch m := m.(type) {
	case *ast.ClassAST:
		var decl types.Type
		if a.builtins == nil && m.TypeName() == config.StrTypeName {
			decl = types.Str
		} else {
			decl = &types.ClassType{Name: m.TypeName(), GenericDecl: genericNames(m.GenericParams)}
		}
		a.declare(&typeSymbol{t: decl, name: m.TypeName(), loc: m.Location()}, scope, decl)
	case *ast.StructAST:
		var decl types.Type
		switch {
		case a.builtins == nil && m.TypeName() == config.IntTypeName:
			decl = types.Int
		case a.builtins == nil && m.TypeName() == config.BoolTypeName:
			decl = types.Bool
		case a.builtins == nil && m.TypeName() == config.VoidTypeName:
			decl = types.Void
		default:
			decl = &types.StructType{Name: m.TypeName(), GenericDecl: genericNames(m.GenericParams)}
		}
		a.declare(&typeSymbol{t: decl, name: m.TypeName(), loc: m.Location()}, scope, decl)
	}
}

func genericNames(params []*ast.GenericParameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name()
	}
	return names
}

// typeScope extends scope with the type's own generic parameters bound as
// GenericParameterType, so field/method signatures inside the body can
// reference them.
func (a *Analyzer) typeScope(parent *symbols.LexicalScope, generics []*ast.GenericParameter) *symbols.LexicalScope {
	scope := symbols.NewScope(parent)
	for _, g := range generics {
		scope.Append(&genericParamSymbol{param: &types.GenericParameterType{Name: g.Name()}, loc: g.Location()}, g.Name())
	}
	return scope
}

func (a *Analyzer) declareTypeBody(m ast.TypeDeclaration, members []ast.Member, parentScope *symbols.LexicalScope) {
	resolved := parentScope.Resolve(m.TypeName())
	ts, ok := resolved.(*typeSymbol)
	if !ok {
		return
	}

	scope := a.typeScope(parentScope, m.GenericParameters())
	a.typeScopes[ts.Type()] = scope

	var fields []*types.FieldType
	for _, member := range members {
		field, ok := member.(*ast.FieldAST)
		if !ok {
			continue
		}
		fieldType := a.resolveType(field.Type, scope)
		fields = append(fields, &types.FieldType{Name: field.Name(), Type: fieldType})
	}

	switch t := ts.Type().(type) {
	case *types.StructType:
		t.Fields = fields
	case *types.ClassType:
		t.Fields = fields
	}

	a.declareMembers(members, scope, ts.Type())
}

// declareFunction is `annotate_symbol(FunctionAST)` (§4.2): builds the
// Function symbol (parameters/return resolved against a scope that already
// has the function's own generic parameters bound) and appends it to
// scope's Overload for its name.
func (a *Analyzer) declareFunction(node *ast.FunctionAST, scope *symbols.LexicalScope, ownerType types.Type) *symbols.Function {
	fnScope := a.typeScope(scope, node.GenericParams)

	params := make([]*symbols.Parameter, len(node.Parameters))
	for i, p := range node.Parameters {
		var paramType types.Type
		if _, isAuto := p.Type.(*ast.AutoType); isAuto && i == 0 && ownerType != nil {
			paramType = ownerType
		} else {
			paramType = a.resolveType(p.Type, fnScope)
		}
		params[i] = &symbols.Parameter{ParamName: p.Name(), Type: paramType, Loc: p.Location(), Index: i}
	}

	// A function's own AutoType return type (no `-> T` written) becomes
	// Void (§4.3); any other AutoType that reaches resolveType is a real
	// missing annotation and is reported there.
	var returnType types.Type
	if _, isAuto := node.ReturnType.(*ast.AutoType); isAuto {
		returnType = types.Void
	} else {
		returnType = a.resolveType(node.ReturnType, fnScope)
	}

	var attrs []*symbols.Attribute
	for _, attr := range node.Attributes {
		var args []symbols.Value
		for _, argExpr := range attr.Arguments {
			args = append(args, a.emitValue(argExpr, fnScope))
		}
		attrs = append(attrs, &symbols.Attribute{AttrName: attr.Name(), Arguments: args, Loc: attr.Location()})
	}

	fn := &symbols.Function{
		FuncName:      node.Name(),
		Owner:         a.module,
		Parameters:    params,
		ReturnType:    returnType,
		GenericParams: genericNames(node.GenericParams),
		Attributes:    attrs,
		Scope:         fnScope,
		Loc:           node.Location(),
		AST:           node,
	}

	a.declare(fn, scope, nil)
	return fn
}

// declare appends symbol to scope; when scope is the module's own root
// scope it also records the symbol in the module's ordered Functions/Types
// lists used for emission and mangling (§4.6). A nested type/function
// (declared into a type's own scope) is reachable only via its owner's
// Fields/methods, not the module's top-level lists.
func (a *Analyzer) declare(symbol symbols.NamedSymbol, scope *symbols.LexicalScope, declaredType types.Type) {
	if scope == a.module.Scope {
		if err := a.module.Declare(symbol, declaredType); err != nil {
			a.diags.Error(symbol.Location(), diagnostics.ErrDuplicateSymbol, "%s", err)
		}
		return
	}
	if err := scope.Append(symbol, ""); err != nil {
		a.diags.Error(symbol.Location(), diagnostics.ErrDuplicateSymbol, "%s", err)
	}
}
