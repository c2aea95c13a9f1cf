package analyzer

import (
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// emitStatement is `emit_statement` (§4.6): lowers one statement node,
// threading scope explicitly (a block statement introduces a child scope
// for names declared by assignment within it).
func (a *Analyzer) emitStatement(node ast.Statement, scope *symbols.LexicalScope) symbols.Statement {
	switch node := node.(type) {
	case *ast.BlockStatement:
		return a.emitBlockStatement(node, scope)
	case *ast.EllipsisStatement:
		return &symbols.BlockStatement{Loc: node.Location()}
	case *ast.PassStatement:
		return &symbols.PassStatement{Loc: node.Location()}
	case *ast.ReturnStatement:
		return a.emitReturnStatement(node, scope)
	case *ast.ConditionStatement:
		return a.emitConditionStatement(node, scope)
	case *ast.WhileStatement:
		return a.emitWhileStatement(node, scope)
	case *ast.ExpressionStatement:
		value := a.emitValue(node.Value, scope)
		return &symbols.ExpressionStatement{Value: value, Loc: node.Location()}
	case *ast.AssignStatement:
		return a.emitAssignStatement(node, scope)
	default:
		a.diags.Error(node.Node().Location(), diagnostics.ErrNotImplemented, "unsupported statement node")
		return &symbols.PassStatement{Loc: node.Node().Location()}
	}
}

func (a *Analyzer) emitBlockStatement(node *ast.BlockStatement, outer *symbols.LexicalScope) *symbols.BlockStatement {
	scope := symbols.NewScope(outer)
	statements := make([]symbols.Statement, len(node.Statements))
	for i, st := range node.Statements {
		statements[i] = a.emitStatement(st, scope)
	}
	return &symbols.BlockStatement{Statements: statements, Loc: node.Location()}
}

// emitReturnStatement is `emit_return_statement`: the returned value's type
// must match the currently-emitting function's declared return type (§4.6).
// currentFunction reads the fixed, top-of-stack definition (§9 Open
// Question 3).
func (a *Analyzer) emitReturnStatement(node *ast.ReturnStatement, scope *symbols.LexicalScope) *symbols.ReturnStatement {
	fn := a.currentFunction()

	var value symbols.Value
	if node.Value != nil {
		value = a.emitValue(node.Value, scope)
	}

	var actual types.Type = types.Void
	if value != nil {
		actual = value.ValueType()
	}

	if !types.IsError(actual) && !types.IsError(fn.ReturnType) && actual != fn.ReturnType {
		a.diags.Error(node.Location(), diagnostics.ErrTypeMismatch,
			"return statement value must have %q type, got %q", fn.ReturnType.String(), actual.String())
	}

	return &symbols.ReturnStatement{Value: value, Loc: node.Location()}
}

func (a *Analyzer) emitConditionStatement(node *ast.ConditionStatement, scope *symbols.LexicalScope) *symbols.ConditionStatement {
	condition := a.emitValue(node.Condition, scope)
	a.checkConditionType(condition)

	then := a.emitBlockStatement(node.ThenStatement, scope)

	var elseStatement symbols.Statement
	switch {
	case node.ElseIf != nil:
		elseStatement = a.emitConditionStatement(node.ElseIf, scope)
	case node.Else != nil:
		elseStatement = a.emitBlockStatement(node.Else.Statement, scope)
	}

	return &symbols.ConditionStatement{Condition: condition, Then: then, Else: elseStatement, Loc: node.Location()}
}

func (a *Analyzer) emitWhileStatement(node *ast.WhileStatement, scope *symbols.LexicalScope) *symbols.WhileStatement {
	condition := a.emitValue(node.Condition, scope)
	a.checkConditionType(condition)

	then := a.emitBlockStatement(node.ThenStatement, scope)

	var elseBlock *symbols.BlockStatement
	if node.Else != nil {
		elseBlock = a.emitBlockStatement(node.Else.Statement, scope)
	}

	return &symbols.WhileStatement{Condition: condition, Then: then, Else: elseBlock, Loc: node.Location()}
}

func (a *Analyzer) checkConditionType(condition symbols.Value) {
	if types.IsError(condition.ValueType()) {
		return
	}
	if condition.ValueType() != types.Bool {
		a.diags.Error(condition.Location(), diagnostics.ErrTypeMismatch,
			"condition must have %q type, got %q", types.Bool.String(), condition.ValueType().String())
	}
}

// emitAssignStatement is `emit_assignment` (§4.6): a bare name target not
// yet bound in the current scope is declared as a fresh Variable typed by
// the source's value; any other target (an already-bound name, a field)
// must already match the source's type.
func (a *Analyzer) emitAssignStatement(node *ast.AssignStatement, scope *symbols.LexicalScope) *symbols.AssignStatement {
	source := a.emitValue(node.Source, scope)

	target := a.emitAssignTarget(node.Target, source, scope)

	return &symbols.AssignStatement{Target: &symbols.TargetValue{Target: target, Loc: node.Target.Node().Location()}, Source: source, Loc: node.Location()}
}

func (a *Analyzer) emitAssignTarget(node ast.Expression, source symbols.Value, scope *symbols.LexicalScope) symbols.Value {
	named, ok := node.(*ast.NamedExpression)
	if !ok {
		// Any other target (attribute, etc.) must already resolve to an
		// assignable value of a matching type.
		existing := a.emitValue(node, scope)
		a.checkAssignable(node.Node().Location(), existing.ValueType(), source.ValueType())
		return existing
	}

	if existing, ok := scope.Resolve(named.Name()).(symbols.Value); ok {
		a.checkAssignable(node.Node().Location(), existing.ValueType(), source.ValueType())
		return existing
	}

	variable := &symbols.Variable{VarName: named.Name(), Type: source.ValueType(), Loc: named.Location()}
	if err := scope.Append(variable, named.Name()); err != nil {
		a.diags.Error(named.Location(), diagnostics.ErrDuplicateSymbol, "%s", err)
	}
	return variable
}

// checkAssignable is `emit_assignment`'s re-assignment case: the source's
// type must already match the existing symbol's declared type exactly —
// the language has no implicit coercion (§4.6).
func (a *Analyzer) checkAssignable(loc location.Location, existing, source types.Type) {
	if types.IsError(existing) || types.IsError(source) {
		return
	}
	if existing != source {
		a.diags.Error(loc, diagnostics.ErrTypeMismatch,
			"can not cast from type %q, got %q", source.String(), existing.String())
	}
}
