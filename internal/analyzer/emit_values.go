package analyzer

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/config"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// boundMethod is `instance.method` before it is applied: a receiver value
// paired with the overload set found on its type, resolved to a concrete
// CallInstruction only once emitValue sees the enclosing CallExpression
// (§4.6, Uniform Function Call per §C.4 of SPEC_FULL.md).
type boundMethod struct {
	instance symbols.Value
	overload *symbols.Overload
	loc      location.Location
}

func (b *boundMethod) Location() location.Location { return b.loc }

// emitValue is `emit_value` (§4.6): lowers an expression to a Value,
// dispatching most node kinds through emitSymbol and requiring the result
// to actually be a Value (a bare type name or unapplied method reference
// used where a value is expected is an error).
func (a *Analyzer) emitValue(node ast.Expression, scope *symbols.LexicalScope) symbols.Value {
	switch node := node.(type) {
	case *ast.CallExpression:
		return a.emitCallExpression(node, scope)
	case *ast.UnaryExpression:
		return a.emitUnaryExpression(node, scope)
	case *ast.BinaryExpression:
		return a.emitBinaryExpression(node, scope)
	case *ast.ParenthesizedExpression:
		return a.emitValue(node.Inner, scope)
	default:
		symbol := a.emitSymbol(node, scope, true)
		if value, ok := symbol.(symbols.Value); ok {
			return value
		}
		a.diags.Error(node.Node().Location(), diagnostics.ErrTypeMismatch, "required value, but got another object")
		return &symbols.ErrorValue{Loc: node.Node().Location()}
	}
}

func (a *Analyzer) emitCallExpression(node *ast.CallExpression, scope *symbols.LexicalScope) symbols.Value {
	arguments := make([]symbols.Value, len(node.Arguments))
	hasError := false
	for i, arg := range node.Arguments {
		arguments[i] = a.emitValue(arg, scope)
		if types.IsError(arguments[i].ValueType()) {
			hasError = true
		}
	}
	if hasError {
		return &symbols.ErrorValue{Loc: node.Location()}
	}

	symbol := a.emitSymbol(node.Value, scope, false)

	switch symbol := symbol.(type) {
	case *symbols.Overload:
		fn := a.resolveFunction(scope, symbol.Name(), arguments, node.Location())
		if fn == nil {
			return &symbols.ErrorValue{Loc: node.Location()}
		}
		return &symbols.CallInstruction{Function: fn, Arguments: arguments, Loc: node.Location()}
	case *typeSymbol:
		return &symbols.NewInstruction{Type: symbol.Type(), Arguments: arguments, Loc: node.Location()}
	case *boundMethod:
		allArgs := append([]symbols.Value{symbol.instance}, arguments...)
		fn := a.resolveFunction(scope, symbol.overload.Name(), allArgs, node.Location())
		if fn == nil {
			return &symbols.ErrorValue{Loc: node.Location()}
		}
		return &symbols.CallInstruction{Function: fn, Arguments: allArgs, Loc: node.Location()}
	}

	if symbol == nil {
		if named, ok := node.Value.(*ast.NamedExpression); ok {
			fn := a.resolveFunction(scope, named.Name(), arguments, node.Location())
			if fn == nil {
				return &symbols.ErrorValue{Loc: node.Location()}
			}
			return &symbols.CallInstruction{Function: fn, Arguments: arguments, Loc: node.Location()}
		}
	}

	a.diags.Error(node.Location(), diagnostics.ErrOverloadFailed, "not found function for call")
	return &symbols.ErrorValue{Loc: node.Location()}
}

func (a *Analyzer) emitUnaryExpression(node *ast.UnaryExpression, scope *symbols.LexicalScope) symbols.Value {
	arguments := []symbols.Value{a.emitValue(node.Operand, scope)}
	if types.IsError(arguments[0].ValueType()) {
		return &symbols.ErrorValue{Loc: node.Location()}
	}

	var name string
	switch node.Operator {
	case ast.UnaryPos:
		name = config.DunderPos
	case ast.UnaryNeg:
		name = config.DunderNeg
	case ast.UnaryInv:
		name = config.DunderNot
	default:
		a.diags.Error(node.Location(), diagnostics.ErrNotImplemented, "unsupported unary operator")
		return &symbols.ErrorValue{Loc: node.Location()}
	}

	fn := a.resolveFunction(scope, name, arguments, node.Location())
	if fn == nil {
		return &symbols.ErrorValue{Loc: node.Location()}
	}
	return &symbols.CallInstruction{Function: fn, Arguments: arguments, Loc: node.Location()}
}

func (a *Analyzer) emitBinaryExpression(node *ast.BinaryExpression, scope *symbols.LexicalScope) symbols.Value {
	arguments := []symbols.Value{a.emitValue(node.LeftOperand, scope), a.emitValue(node.RightOperand, scope)}
	if types.IsError(arguments[0].ValueType()) || types.IsError(arguments[1].ValueType()) {
		return &symbols.ErrorValue{Loc: node.Location()}
	}

	var name string
	switch node.Operator {
	case ast.BinaryAdd:
		name = config.DunderAdd
	case ast.BinarySub:
		name = config.DunderSub
	case ast.BinaryMul:
		name = config.DunderMul
	case ast.BinaryDiv, ast.BinaryDoubleDiv:
		name = config.DunderDiv
	default:
		a.diags.Error(node.Location(), diagnostics.ErrNotImplemented, "unsupported binary operator")
		return &symbols.ErrorValue{Loc: node.Location()}
	}

	fn := a.resolveFunction(scope, name, arguments, node.Location())
	if fn == nil {
		return &symbols.ErrorValue{Loc: node.Location()}
	}
	return &symbols.CallInstruction{Function: fn, Arguments: arguments, Loc: node.Location()}
}

// emitSymbol is `emit_symbol` (§4.6): resolves an expression to whatever it
// actually names — a value, a type (for subscript-instantiation or
// construction), an overload set, or a bound method — without yet requiring
// it to be a usable Value. isExists controls whether an unresolved name is
// reported (false lets a caller fall back to Uniform Function Call lookup).
func (a *Analyzer) emitSymbol(node ast.Expression, scope *symbols.LexicalScope, isExists bool) symbols.Symbol {
	switch node := node.(type) {
	case *ast.IntegerExpression:
		return a.emitIntegerSymbol(node)
	case *ast.StringExpression:
		return &symbols.StringConstant{Value: node.Value(), Loc: node.Location()}
	case *ast.NamedExpression:
		return a.emitNamedSymbol(node, scope, isExists)
	case *ast.AttributeExpression:
		return a.emitAttributeSymbol(node, scope, isExists)
	case *ast.SubscribeExpression:
		return a.emitSubscribeSymbol(node, scope)
	case *ast.ParenthesizedExpression:
		return a.emitSymbol(node.Inner, scope, isExists)
	default:
		return a.emitValue(node, scope)
	}
}

func (a *Analyzer) emitIntegerSymbol(node *ast.IntegerExpression) symbols.Symbol {
	var value int64
	for _, c := range node.Lexeme() {
		value = value*10 + int64(c-'0')
	}
	return &symbols.IntegerConstant{Value: value, Loc: node.Location()}
}

func (a *Analyzer) emitNamedSymbol(node *ast.NamedExpression, scope *symbols.LexicalScope, isExists bool) symbols.Symbol {
	switch node.Name() {
	case "True", "False":
		return &symbols.BooleanConstant{Value: node.Name() == "True", Loc: node.Location()}
	case config.VoidTypeName:
		return &typeSymbol{t: types.Void, name: config.VoidTypeName, loc: node.Location()}
	case config.BoolTypeName:
		return &typeSymbol{t: types.Bool, name: config.BoolTypeName, loc: node.Location()}
	case config.IntTypeName:
		return &typeSymbol{t: types.Int, name: config.IntTypeName, loc: node.Location()}
	case config.StrTypeName:
		return &typeSymbol{t: types.Str, name: config.StrTypeName, loc: node.Location()}
	}

	symbol := scope.Resolve(node.Name())
	if symbol == nil {
		if isExists {
			a.diags.Error(node.Location(), diagnostics.ErrUnresolvedName, "not found symbol %q in current scope", node.Name())
			return &symbols.ErrorSymbol{SymbolName: node.Name(), Loc: node.Location()}
		}
		return nil
	}
	return symbol
}

func (a *Analyzer) emitAttributeSymbol(node *ast.AttributeExpression, scope *symbols.LexicalScope, isExists bool) symbols.Symbol {
	instance := a.emitValue(node.Value, scope)
	valueType := instance.ValueType()
	if types.IsError(valueType) {
		return &symbols.ErrorSymbol{SymbolName: node.Name(), Loc: node.Location()}
	}

	for _, field := range fieldsOf(valueType) {
		if field.Name == node.Name() {
			f := &symbols.Field{FieldName: field.Name, Owner: valueType, Type: field.Type, Loc: node.Location()}
			return &symbols.BoundedField{Instance: instance, Field: f, Loc: node.Location()}
		}
	}

	// Uniform Function Call (§C.4 of SPEC_FULL.md): instance.method(args)
	// must reach the exact same candidate set method(instance, args) would,
	// so a method declared inside the type and a free function of the same
	// name taking the type as its first parameter are merged here rather
	// than only searching the type's own method scope.
	var methodOverload *symbols.Overload
	if methodScope, ok := a.selfTypeScope(valueType); ok {
		methodOverload, _ = methodScope.Resolve(node.Name()).(*symbols.Overload)
	}
	moduleOverload, _ := scope.Resolve(node.Name()).(*symbols.Overload)

	switch {
	case methodOverload != nil && moduleOverload != nil:
		methodOverload.Extend(moduleOverload)
		return &boundMethod{instance: instance, overload: methodOverload, loc: node.Location()}
	case methodOverload != nil:
		return &boundMethod{instance: instance, overload: methodOverload, loc: node.Location()}
	case moduleOverload != nil:
		return &boundMethod{instance: instance, overload: moduleOverload, loc: node.Location()}
	}

	if isExists {
		a.diags.Error(node.Location(), diagnostics.ErrUnresolvedName, "not found symbol %q in type %q", node.Name(), valueType.String())
		return &symbols.ErrorSymbol{SymbolName: node.Name(), Loc: node.Location()}
	}
	return nil
}

func fieldsOf(t types.Type) []*types.FieldType {
	switch t := t.(type) {
	case *types.StructType:
		return t.Fields
	case *types.ClassType:
		return t.Fields
	default:
		return nil
	}
}

// emitSubscribeSymbol is `emit_symbol(SubscribeExpressionAST)`: every
// argument must itself name a type, and the base must be a generic
// struct/class, producing (or reusing, per the instance cache) its
// monomorphized instance (§4.5).
func (a *Analyzer) emitSubscribeSymbol(node *ast.SubscribeExpression, scope *symbols.LexicalScope) symbols.Symbol {
	base := a.emitSymbol(node.Value, scope, true)
	baseType, ok := base.(*typeSymbol)
	if !ok {
		a.diags.Error(node.Location(), diagnostics.ErrNotImplemented, "not found type for subscript")
		return &symbols.ErrorSymbol{Loc: node.Location()}
	}

	args := make([]types.Type, len(node.Arguments))
	for i, argExpr := range node.Arguments {
		args[i] = a.expressionAsType(argExpr, scope)
	}

	instantiated := a.instantiateType(baseType.Type(), args, node.Location())
	return &typeSymbol{t: instantiated, name: instantiated.String(), loc: node.Location()}
}

// expressionAsType evaluates expr as a type-name expression (used only by
// SubscribeExpression's arguments), rather than as a runtime Value.
func (a *Analyzer) expressionAsType(expr ast.Expression, scope *symbols.LexicalScope) types.Type {
	symbol := a.emitSymbol(expr, scope, true)
	switch symbol := symbol.(type) {
	case *typeSymbol:
		return symbol.Type()
	case *genericParamSymbol:
		return symbol.Type()
	}
	a.diags.Error(expr.Node().Location(), diagnostics.ErrUnresolvedName, "expected a type")
	return types.TheErrorType
}
