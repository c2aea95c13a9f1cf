package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcinuscc/orcinus/internal/analyzer"
	"github.com/orcinuscc/orcinus/internal/builtins"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/lexer"
	"github.com/orcinuscc/orcinus/internal/mangler"
	"github.com/orcinuscc/orcinus/internal/parser"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

// noImports is used by every test that doesn't exercise cross-module
// imports, so analyzer.New always gets a valid (if unused) Importer.
type noImports struct{}

func (noImports) Load(name string) (*symbols.Module, error) {
	return nil, assert.AnError
}

func analyze(t *testing.T, src string) (*symbols.Module, *diagnostics.Manager) {
	t.Helper()
	diags := diagnostics.NewManager()
	tokens := lexer.Tokenize("test.orx", src)
	tree := parser.New(tokens, diags).Parse("test.orx")
	module := analyzer.New(diags, noImports{}, builtins.Load()).Analyze(tree, "test", "test.orx")
	return module, diags
}

func TestSimpleFunctionAnalyzesCleanly(t *testing.T) {
	_, diags := analyze(t, "def main() -> int:\n    return 1\n")
	assert.False(t, diags.HasErrors(), "%v", diags.All())
}

func TestReturnTypeMismatchIsReported(t *testing.T) {
	_, diags := analyze(t, "def main() -> int:\n    return\n")
	assert.True(t, diags.HasErrors())
}

func TestAssignmentTypeMismatchIsReported(t *testing.T) {
	src := "def make() -> int:\n    return 1\n\n" +
		"def other() -> void:\n    return\n\n" +
		"def main() -> int:\n    x = make()\n    x = other()\n    return x\n"
	_, diags := analyze(t, src)
	assert.True(t, diags.HasErrors())
}

func TestStructGenericInstantiationViaSubscribe(t *testing.T) {
	src := "struct Pair[A, B]:\n    first: A\n    second: B\n\n" +
		"def make_pair(x: int, y: int) -> Pair[int, int]:\n    return Pair[int, int](x, y)\n\n" +
		"def main() -> int:\n    p = make_pair(1, 2)\n    return p.first\n"
	_, diags := analyze(t, src)
	require.False(t, diags.HasErrors(), "%v", diags.All())
}

func TestGenericFunctionInstanceIsCachedByTypeArguments(t *testing.T) {
	src := "def identity[T](x: T) -> T:\n    return x\n\n" +
		"def main() -> int:\n    a = identity(1)\n    b = identity(1)\n    return a\n"
	module, diags := analyze(t, src)
	require.False(t, diags.HasErrors(), "%v", diags.All())

	var origin *symbols.Function
	for _, fn := range module.Functions {
		if fn.Name() == "identity" {
			origin = fn
		}
	}
	require.NotNil(t, origin)

	// Both call sites instantiated identity[int]; the cache must have
	// returned the same instance both times rather than building twice
	// (§4.5, §8 property 4), so asking for it again must hit the cache
	// instead of invoking build.
	cached := module.FunctionInstance(origin, []types.Type{types.Int}, func() *symbols.Function {
		t.Fatal("identity[int] should already be cached from analysis")
		return nil
	})
	assert.Equal(t, "i32", mangler.Type("test", cached.ReturnType))
}

func TestUniformFunctionCallReachesSameCandidateThroughAttributeSyntax(t *testing.T) {
	src := "struct Box:\n    value: int\n\n" +
		"def get(b: Box) -> int:\n    return b.value\n\n" +
		"def main() -> int:\n    b = Box(1)\n    return b.get()\n"
	_, diags := analyze(t, src)
	assert.False(t, diags.HasErrors(), "%v", diags.All())
}

func TestGenericOverloadAlwaysWinsOverNaiveMatch(t *testing.T) {
	src := "def pick(x: int) -> int:\n    return x\n\n" +
		"def pick[T](x: T) -> T:\n    return x\n\n" +
		"def main() -> int:\n    return pick(1)\n"
	_, diags := analyze(t, src)
	assert.False(t, diags.HasErrors(), "%v", diags.All())
}

func TestUnresolvedImportIsReported(t *testing.T) {
	_, diags := analyze(t, "from nowhere import thing\n\ndef main() -> int:\n    return 1\n")
	assert.True(t, diags.HasErrors())
}

func TestOmittedReturnTypeBecomesVoid(t *testing.T) {
	module, diags := analyze(t, "def main():\n    return\n")
	require.False(t, diags.HasErrors(), "%v", diags.All())

	var main *symbols.Function
	for _, fn := range module.Functions {
		if fn.Name() == "main" {
			main = fn
		}
	}
	require.NotNil(t, main)
	assert.Equal(t, types.Void, main.ReturnType)
}

func TestOmittedParameterTypeOutsideImplicitSelfIsReported(t *testing.T) {
	_, diags := analyze(t, "def f(x) -> int:\n    return 1\n")
	assert.True(t, diags.HasErrors())
}

func TestGenericOverloadWinsDispatchesToInstantiatedCallee(t *testing.T) {
	src := "def pick(x: int) -> int:\n    return x\n\n" +
		"def pick[T](x: T) -> T:\n    return x\n\n" +
		"def main() -> int:\n    return pick(1)\n"
	module, diags := analyze(t, src)
	require.False(t, diags.HasErrors(), "%v", diags.All())

	var main *symbols.Function
	for _, fn := range module.Functions {
		if fn.Name() == "main" {
			main = fn
		}
	}
	require.NotNil(t, main)

	block := main.Statement.(*symbols.BlockStatement)
	ret := block.Statements[0].(*symbols.ReturnStatement)
	call := ret.Value.(*symbols.CallInstruction)

	// §9 open question 1: the generic candidate (priority -1) must win even
	// though a naive, non-generic candidate also matches exactly.
	assert.NotNil(t, call.Function.Origin, "callee must be the generic instance, not the naive overload")
}

func TestNativeAttributeWithStringArgumentManglesVerbatim(t *testing.T) {
	src := "[native(\"orx_str_upper\")]\ndef to_upper(x: int) -> int: ...\n"
	module, diags := analyze(t, src)
	require.False(t, diags.HasErrors(), "%v", diags.All())

	var fn *symbols.Function
	for _, f := range module.Functions {
		if f.Name() == "to_upper" {
			fn = f
		}
	}
	require.NotNil(t, fn)
	assert.Equal(t, "orx_str_upper", fn.Mangled)
}
