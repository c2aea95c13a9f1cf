// Package symbols is the semantic symbol table built by the analyzer
// (§4.2-§4.4): lexical scopes, modules, functions and their overload sets,
// fields, values and lowered statements. Names and shape are ported from
// original_source/orcinus/language/semantic.py's Symbol hierarchy, recast
// as Go interfaces/structs instead of a Python class tree.
package symbols

import (
	"github.com/orcinuscc/orcinus/internal/location"
)

// Symbol is implemented by everything that lives in a scope or a module's
// member list.
type Symbol interface {
	Location() location.Location
}

// NamedSymbol additionally carries a name, the thing a scope indexes by.
type NamedSymbol interface {
	Symbol
	Name() string
}

// ErrorSymbol stands in for a declaration that failed to analyze, so later
// passes can keep walking without re-reporting the same failure (§7).
type ErrorSymbol struct {
	SymbolName string
	Loc        location.Location
}

func (s *ErrorSymbol) Name() string               { return s.SymbolName }
func (s *ErrorSymbol) Location() location.Location { return s.Loc }

// Attribute is an analyzed `[name(args...)]` annotation attached to a
// function or type declaration (§C.2 of SPEC_FULL.md). Arguments are real
// emitted Values (e.g. `native("orx_str_upper")`'s argument is a
// StringConstant), not raw tokens — the original emits attribute arguments
// through the same emit_value path as any other expression.
type Attribute struct {
	AttrName  string
	Arguments []Value
	Loc       location.Location
}

func (a *Attribute) Name() string               { return a.AttrName }
func (a *Attribute) Location() location.Location { return a.Loc }
