package symbols

import "github.com/orcinuscc/orcinus/internal/location"

// Statement is the lowered form of an ast.Statement (§4.6): block structure
// survives, but condition/while/assign carry resolved Values instead of
// unresolved ast.Expression nodes.
type Statement interface {
	Location() location.Location
	isStatement()
}

// BlockStatement is a sequence of lowered statements.
type BlockStatement struct {
	Statements []Statement
	Loc        location.Location
}

func (s *BlockStatement) Location() location.Location { return s.Loc }
func (s *BlockStatement) isStatement()                 {}

// PassStatement does nothing.
type PassStatement struct {
	Loc location.Location
}

func (s *PassStatement) Location() location.Location { return s.Loc }
func (s *PassStatement) isStatement()                 {}

// ReturnStatement returns Value (nil for a bare `return`, only valid when
// the enclosing function's return type is void).
type ReturnStatement struct {
	Value Value
	Loc   location.Location
}

func (s *ReturnStatement) Location() location.Location { return s.Loc }
func (s *ReturnStatement) isStatement()                 {}

// ConditionStatement is a lowered `if`/`elif`/`else` chain, Else holding
// either another ConditionStatement (the next `elif`) or a BlockStatement
// (the terminal `else`), or nil.
type ConditionStatement struct {
	Condition Value
	Then      *BlockStatement
	Else      Statement // *ConditionStatement, *BlockStatement, or nil
	Loc       location.Location
}

func (s *ConditionStatement) Location() location.Location { return s.Loc }
func (s *ConditionStatement) isStatement()                 {}

// WhileStatement is a lowered `while`/`else` loop.
type WhileStatement struct {
	Condition Value
	Then      *BlockStatement
	Else      *BlockStatement
	Loc       location.Location
}

func (s *WhileStatement) Location() location.Location { return s.Loc }
func (s *WhileStatement) isStatement()                 {}

// ExpressionStatement evaluates Value for its side effects and discards
// the result.
type ExpressionStatement struct {
	Value Value
	Loc   location.Location
}

func (s *ExpressionStatement) Location() location.Location { return s.Loc }
func (s *ExpressionStatement) isStatement()                 {}

// AssignStatement writes Source into Target (a *TargetValue wrapping a
// Variable, Parameter, or Field).
type AssignStatement struct {
	Target *TargetValue
	Source Value
	Loc    location.Location
}

func (s *AssignStatement) Location() location.Location { return s.Loc }
func (s *AssignStatement) isStatement()                 {}
