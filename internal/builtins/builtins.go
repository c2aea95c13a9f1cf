// Package builtins bootstraps the __builtins__ module (§6, §B.3 of
// SPEC_FULL.md): int/bool/void/str and their dunder operator overloads,
// built by running the same lex/parse/analyze pipeline any other module
// goes through over a canned source string, rather than constructing the
// symbol graph by hand. analyzer.declareTypeHeader special-cases these four
// struct/class declarations (only while a.builtins == nil, i.e. while this
// very module is being analyzed) to bind them to the shared types.Int /
// types.Bool / types.Void / types.Str instances instead of allocating new
// nominal types.
package builtins

import (
	"fmt"

	"github.com/orcinuscc/orcinus/internal/analyzer"
	"github.com/orcinuscc/orcinus/internal/config"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/lexer"
	"github.com/orcinuscc/orcinus/internal/parser"
	"github.com/orcinuscc/orcinus/internal/symbols"
)

// source declares the four primitive types and the operator overloads the
// analyzer's unary/binary lowering rules dispatch to by name (§4.6). Bodies
// are `...` (native): the backend links them against the runtime, the
// analyzer never tries to emit a body for them.
const source = `
struct void:
    pass

struct bool:
    pass

struct int:
    pass

class str:
    pass

[native]
def __pos__(value: int) -> int: ...

[native]
def __neg__(value: int) -> int: ...

[native]
def __not__(value: bool) -> bool: ...

[native]
def __add__(left: int, right: int) -> int: ...

[native]
def __sub__(left: int, right: int) -> int: ...

[native]
def __mul__(left: int, right: int) -> int: ...

[native]
def __div__(left: int, right: int) -> int: ...
`

// Load analyzes the canned source above and returns the resulting module.
// It never fails: a broken canned source is a bug in this package, not a
// condition a caller needs to recover from, so a parse/analysis error
// panics instead of threading an error return through every call site that
// just wants the builtins module once at startup.
func Load() *symbols.Module {
	diags := diagnostics.NewManager()
	tokens := lexer.Tokenize(config.BuiltinsModuleName, source)
	tree := parser.New(tokens, diags).Parse(config.BuiltinsModuleName)
	module := analyzer.New(diags, noImports{}, nil).Analyze(tree, config.BuiltinsModuleName, config.BuiltinsModuleName)
	if diags.HasErrors() {
		panic(fmt.Sprintf("builtins: %d error(s) analyzing canned source: %v", len(diags.All()), diags.All()))
	}
	return module
}

// noImports rejects any import from within the builtins module itself — it
// has nothing to import from, being the root of every module's import
// graph (§5).
type noImports struct{}

func (noImports) Load(moduleName string) (*symbols.Module, error) {
	return nil, fmt.Errorf("builtins module cannot import %q", moduleName)
}
