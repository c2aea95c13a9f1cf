package symbols

import (
	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/types"
)

// Value is implemented by every lowered expression result: constants,
// parameter/variable/field references, and instructions (§4.6).
type Value interface {
	Location() location.Location
	ValueType() types.Type
	isValue()
}

// ErrorValue is the poison value (§4.6, §7): its type is always ErrorType,
// so it unifies/compares as a match against anything and never produces a
// second diagnostic once one has already fired for its expression.
type ErrorValue struct {
	Loc location.Location
}

func (v *ErrorValue) Location() location.Location { return v.Loc }
func (v *ErrorValue) ValueType() types.Type        { return types.TheErrorType }
func (v *ErrorValue) isValue()                     {}

// IntegerConstant is an integer literal value.
type IntegerConstant struct {
	Value int64
	Loc   location.Location
}

func (v *IntegerConstant) Location() location.Location { return v.Loc }
func (v *IntegerConstant) ValueType() types.Type        { return types.Int }
func (v *IntegerConstant) isValue()                     {}

// BooleanConstant is a `True`/`False` literal value.
type BooleanConstant struct {
	Value bool
	Loc   location.Location
}

func (v *BooleanConstant) Location() location.Location { return v.Loc }
func (v *BooleanConstant) ValueType() types.Type        { return types.Bool }
func (v *BooleanConstant) isValue()                     {}

// StringConstant is a string literal value.
type StringConstant struct {
	Value string
	Loc   location.Location
}

func (v *StringConstant) Location() location.Location { return v.Loc }
func (v *StringConstant) ValueType() types.Type        { return types.Str }
func (v *StringConstant) isValue()                     {}

// Variable is a local, mutable slot introduced by an AssignStatement
// (§4.6: "a name is declared on its first assignment").
type Variable struct {
	VarName string
	Type    types.Type
	Loc     location.Location
}

func (v *Variable) Name() string               { return v.VarName }
func (v *Variable) Location() location.Location { return v.Loc }
func (v *Variable) ValueType() types.Type        { return v.Type }
func (v *Variable) isValue()                     {}

// Field is a declared struct/class member.
type Field struct {
	FieldName string
	Owner     types.Type
	Type      types.Type
	Loc       location.Location
}

func (f *Field) Name() string               { return f.FieldName }
func (f *Field) Location() location.Location { return f.Loc }
func (f *Field) ValueType() types.Type        { return f.Type }
func (f *Field) isValue()                     {}

// BoundedField is `instance.field`: a field access bound to a receiver
// value (§4.6).
type BoundedField struct {
	Instance Value
	Field    *Field
	Loc      location.Location
}

func (v *BoundedField) Location() location.Location { return v.Loc }
func (v *BoundedField) ValueType() types.Type        { return v.Field.Type }
func (v *BoundedField) isValue()                     {}

// BoundedValue is `instance.method`, a function reference bound to a
// receiver. No lowering rule in internal/analyzer produces one: Uniform
// Function Call (§C.4 of SPEC_FULL.md) lowers `instance.method(args)`
// straight to a CallInstruction.
type BoundedValue struct {
	Instance Value
	Function *Function
	Loc      location.Location
}

func (v *BoundedValue) Location() location.Location { return v.Loc }
func (v *BoundedValue) ValueType() types.Type        { return v.Function.FunctionType() }
func (v *BoundedValue) isValue()                     {}

// TargetValue is the lowered form of an assignment/return target: either a
// fresh Variable, an existing one, a Parameter, or a Field being written.
type TargetValue struct {
	Target Value
	Loc    location.Location
}

func (v *TargetValue) Location() location.Location { return v.Loc }
func (v *TargetValue) ValueType() types.Type        { return v.Target.ValueType() }
func (v *TargetValue) isValue()                     {}

// CallInstruction is a resolved function call: Function has already been
// selected by overload resolution (§4.4), possibly after on-demand
// instantiation (§4.5).
type CallInstruction struct {
	Function  *Function
	Arguments []Value
	Loc       location.Location
}

func (v *CallInstruction) Location() location.Location { return v.Loc }
func (v *CallInstruction) ValueType() types.Type        { return v.Function.ReturnType }
func (v *CallInstruction) isValue()                     {}

// NewInstruction constructs a struct/class instance from field values, in
// declaration order (§4.6: implicit constructor).
type NewInstruction struct {
	Type      types.Type
	Arguments []Value
	Loc       location.Location
}

func (v *NewInstruction) Location() location.Location { return v.Loc }
func (v *NewInstruction) ValueType() types.Type        { return v.Type }
func (v *NewInstruction) isValue()                     {}
