// Package mangler produces linker-stable names for functions and
// instantiated generic types (§4.7). The algorithm is ported from
// original_source/orcinus/language/semantic.py's MangledContext: parts are
// appended in logical (innermost-first) order, then the final name is the
// concatenation of those parts in REVERSE append order — so the outermost
// piece (the "ORX_FUNC_"/"ORX_TYPE_" tag) ends up first in the string
// without ever computing a prefix length.
package mangler

import (
	"strconv"
	"strings"

	"github.com/orcinuscc/orcinus/internal/config"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
	"github.com/orcinuscc/orcinus/internal/utils"
)

// context accumulates mangled parts; construct joins them in reverse.
type context struct {
	parts []string
}

func (c *context) raw(s string) { c.parts = append(c.parts, s) }

// name appends s followed by its length, so a variable-length piece is
// still unambiguously delimited once the parts are reversed and joined.
func (c *context) name(s string) {
	c.raw(s)
	c.raw(strconv.Itoa(len(s)))
}

func (c *context) generic(items []string) {
	for i := len(items) - 1; i >= 0; i-- {
		c.raw(items[i])
	}
	c.raw(strconv.Itoa(len(items)))
	c.raw("G")
}

func (c *context) construct() string {
	var b strings.Builder
	for i := len(c.parts) - 1; i >= 0; i-- {
		b.WriteString(c.parts[i])
	}
	return b.String()
}

// primitiveMangle is the short, stable spelling for each builtin type
// (§4.7) — std naming the teacher's backends use for extern linkage.
func primitiveMangle(t *types.Primitive) string {
	switch t.Name {
	case config.IntTypeName:
		return "i32"
	case config.BoolTypeName:
		return "b"
	case config.VoidTypeName:
		return "v"
	case config.StrTypeName:
		return "str"
	default:
		return t.Name
	}
}

func hasExplicitNativeName(fn *symbols.Function) bool {
	for _, attr := range fn.Attributes {
		if attr.Name() == config.NativeAttributeName && len(attr.Arguments) == 1 {
			return true
		}
	}
	return false
}

func typeArgNames(args []types.Type) []string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.String()
	}
	return names
}

// Type mangles a type reference as it appears in a parameter/return
// position: primitives get their short spelling, a struct/class
// (generic or monomorphized) gets a full ORX_TYPE_ name.
func Type(moduleName string, t types.Type) string {
	if p, ok := t.(*types.Primitive); ok {
		return primitiveMangle(p)
	}

	c := &context{}
	switch t := t.(type) {
	case *types.StructType:
		origin := t
		if t.Origin != nil {
			origin = t.Origin
		}
		if len(t.Arguments) > 0 {
			c.generic(typeArgNames(t.Arguments))
		} else if len(origin.GenericDecl) > 0 {
			c.generic(origin.GenericDecl)
		}
		c.name(origin.Name)
		c.raw("T")
		c.raw("::")
		c.name(moduleName)
		c.raw("ORX_TYPE_")
		return c.construct()
	case *types.ClassType:
		origin := t
		if t.Origin != nil {
			origin = t.Origin
		}
		if len(t.Arguments) > 0 {
			c.generic(typeArgNames(t.Arguments))
		} else if len(origin.GenericDecl) > 0 {
			c.generic(origin.GenericDecl)
		}
		c.name(origin.Name)
		c.raw("T")
		c.raw("::")
		c.name(moduleName)
		c.raw("ORX_TYPE_")
		return c.construct()
	default:
		return t.String()
	}
}

// Function computes fn's mangled (linker) name, or its `native[(name)]`
// override when present (§4.7: a native function is never mangled, it
// must match an externally-linked symbol verbatim).
func Function(fn *symbols.Function) string {
	if name, native := fn.Native(); native {
		// `[native]` with no explicit override links by a disambiguated
		// fallback name (moduleMember -> moduleMember), so two modules'
		// same-named native function never collide at link time; an
		// explicit `[native("name")]` always links verbatim.
		if hasExplicitNativeName(fn) {
			return name
		}
		return utils.ModuleMemberFallbackName(fn.Owner.Name, name)
	}

	definition := fn
	if fn.Origin != nil {
		definition = fn.Origin
	}
	moduleName := fn.Owner.Name

	c := &context{}
	c.raw(Type(moduleName, fn.ReturnType))
	c.raw("R")
	for i := len(fn.Parameters) - 1; i >= 0; i-- {
		c.raw(Type(moduleName, fn.Parameters[i].Type))
		c.raw("P")
	}
	c.raw(strconv.Itoa(len(fn.Parameters)))
	c.raw("A")

	if len(fn.Arguments) > 0 {
		c.generic(typeArgNames(fn.Arguments))
	} else if len(definition.GenericParams) > 0 {
		c.generic(definition.GenericParams)
	}

	c.name(fn.FuncName)
	c.raw("F")
	c.raw("::")
	c.name(definition.Owner.Name)
	c.raw("ORX_FUNC_")
	return c.construct()
}
