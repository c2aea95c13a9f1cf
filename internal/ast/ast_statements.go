package ast

import "github.com/orcinuscc/orcinus/internal/location"

// Statement is implemented by every statement node (§3).
type Statement interface {
	Node() Node
	isStatement()
}

// BlockStatement is `Indent statement+ Undent`.
type BlockStatement struct {
	TokIndent  *Token
	Statements []Statement
	TokUndent  *Token
}

func (s *BlockStatement) isStatement() {}
func (s *BlockStatement) Node() Node    { return s }
func (s *BlockStatement) Location() location.Location {
	return location.Merge(s.TokIndent.Location(), s.TokUndent.Location())
}
func (s *BlockStatement) Children() []Node {
	out := []Node{s.TokIndent}
	for _, st := range s.Statements {
		out = append(out, st.Node())
	}
	return append(out, s.TokUndent)
}

// EllipsisStatement is a `...` function/type body.
type EllipsisStatement struct {
	TokEllipsis *Token
	TokNewLine  *Token
}

func (s *EllipsisStatement) isStatement() {}
func (s *EllipsisStatement) Node() Node    { return s }
func (s *EllipsisStatement) Location() location.Location {
	return location.Merge(s.TokEllipsis.Location(), s.TokNewLine.Location())
}
func (s *EllipsisStatement) Children() []Node { return []Node{s.TokEllipsis, s.TokNewLine} }

// PassStatement is a `pass` statement.
type PassStatement struct {
	TokPass    *Token
	TokNewLine *Token
}

func (s *PassStatement) isStatement() {}
func (s *PassStatement) Node() Node    { return s }
func (s *PassStatement) Location() location.Location {
	return location.Merge(s.TokPass.Location(), s.TokNewLine.Location())
}
func (s *PassStatement) Children() []Node { return []Node{s.TokPass, s.TokNewLine} }

// ReturnStatement is `'return' [ expression ] NL`.
type ReturnStatement struct {
	TokReturn  *Token
	Value      Expression // nil if bare `return`
	TokNewLine *Token
}

func (s *ReturnStatement) isStatement() {}
func (s *ReturnStatement) Node() Node    { return s }
func (s *ReturnStatement) Location() location.Location {
	return location.Merge(s.TokReturn.Location(), s.TokNewLine.Location())
}
func (s *ReturnStatement) Children() []Node {
	out := []Node{s.TokReturn}
	if s.Value != nil {
		out = append(out, s.Value.Node())
	}
	return append(out, s.TokNewLine)
}

// ElseClause is `'else' ':' NL block_statement`.
type ElseClause struct {
	TokElse    *Token
	TokColon   *Token
	TokNewLine *Token
	Statement  *BlockStatement
}

func (e *ElseClause) Location() location.Location {
	return location.Merge(e.TokElse.Location(), e.Statement.Location())
}
func (e *ElseClause) Children() []Node {
	return []Node{e.TokElse, e.TokColon, e.TokNewLine, e.Statement}
}

// ConditionStatement is `'if'|'elif' expr ':' NL block [elif|else]`. An
// `elif` chain is represented as a right-leaning chain of ConditionStatement
// nodes stored in Else (§C.1 of SPEC_FULL.md), matching the original
// recursive parse_condition_statement.
type ConditionStatement struct {
	TokIf         *Token // holds either `if` or `elif`
	Condition     Expression
	TokColon      *Token
	TokNewLine    *Token
	ThenStatement *BlockStatement
	ElseIf        *ConditionStatement // non-nil for a chained `elif`
	Else          *ElseClause         // non-nil for a terminal `else`
}

func (s *ConditionStatement) isStatement() {}
func (s *ConditionStatement) Node() Node    { return s }
func (s *ConditionStatement) Location() location.Location {
	end := s.ThenStatement.Location()
	if s.ElseIf != nil {
		end = s.ElseIf.Location()
	} else if s.Else != nil {
		end = s.Else.Location()
	}
	return location.Merge(s.TokIf.Location(), end)
}
func (s *ConditionStatement) Children() []Node {
	out := []Node{s.TokIf, s.Condition.Node(), s.TokColon, s.TokNewLine, s.ThenStatement}
	if s.ElseIf != nil {
		out = append(out, s.ElseIf)
	}
	if s.Else != nil {
		out = append(out, s.Else)
	}
	return out
}

// WhileStatement is `'while' expr ':' NL block [else]`.
type WhileStatement struct {
	TokWhile      *Token
	Condition     Expression
	TokColon      *Token
	TokNewLine    *Token
	ThenStatement *BlockStatement
	Else          *ElseClause
}

func (s *WhileStatement) isStatement() {}
func (s *WhileStatement) Node() Node    { return s }
func (s *WhileStatement) Location() location.Location {
	end := s.ThenStatement.Location()
	if s.Else != nil {
		end = s.Else.Location()
	}
	return location.Merge(s.TokWhile.Location(), end)
}
func (s *WhileStatement) Children() []Node {
	out := []Node{s.TokWhile, s.Condition.Node(), s.TokColon, s.TokNewLine, s.ThenStatement}
	if s.Else != nil {
		out = append(out, s.Else)
	}
	return out
}

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	Value      Expression
	TokNewLine *Token
}

func (s *ExpressionStatement) isStatement() {}
func (s *ExpressionStatement) Node() Node    { return s }
func (s *ExpressionStatement) Location() location.Location {
	return location.Merge(s.Value.Node().Location(), s.TokNewLine.Location())
}
func (s *ExpressionStatement) Children() []Node {
	return []Node{s.Value.Node(), s.TokNewLine}
}

// AssignStatement is `target '=' source NL`.
type AssignStatement struct {
	Target     Expression
	TokEquals  *Token
	Source     Expression
	TokNewLine *Token
}

func (s *AssignStatement) isStatement() {}
func (s *AssignStatement) Node() Node    { return s }
func (s *AssignStatement) Location() location.Location {
	return location.Merge(s.Target.Node().Location(), s.TokNewLine.Location())
}
func (s *AssignStatement) Children() []Node {
	return []Node{s.Target.Node(), s.TokEquals, s.Source.Node(), s.TokNewLine}
}
