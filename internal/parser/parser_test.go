package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/lexer"
	"github.com/orcinuscc/orcinus/internal/parser"
	"github.com/orcinuscc/orcinus/internal/token"
)

func parse(t *testing.T, src string) (*ast.Tree, *diagnostics.Manager) {
	t.Helper()
	tokens := lexer.Tokenize("test.orx", src)

	diags := diagnostics.NewManager()
	tree := parser.New(tokens, diags).Parse("test.orx")
	return tree, diags
}

func TestParseSimpleFunction(t *testing.T) {
	src := "def main() -> int:\n    return 1\n"
	tree, diags := parse(t, src)

	require.False(t, diags.HasErrors())
	require.Len(t, tree.Members, 1)

	fn, ok := tree.Members[0].(*ast.FunctionAST)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name())

	block, ok := fn.Statement.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, block.Statements, 1)

	ret, ok := block.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.NotNil(t, ret.Value)
}

func TestParseGenericFunction(t *testing.T) {
	src := "def id[T](x: T) -> T:\n    return x\n"
	tree, diags := parse(t, src)

	require.False(t, diags.HasErrors())
	fn := tree.Members[0].(*ast.FunctionAST)
	require.Len(t, fn.GenericParams, 1)
	assert.Equal(t, "T", fn.GenericParams[0].Name())
	assert.Equal(t, "T", fn.Parameters[0].Type.(*ast.NamedType).Name())
}

func TestParseStructGenericParamsBeforeMembers(t *testing.T) {
	src := "struct Pair[A, B]:\n    first: A\n    second: B\n"
	tree, diags := parse(t, src)

	require.False(t, diags.HasErrors())
	st := tree.Members[0].(*ast.StructAST)
	require.Len(t, st.GenericParams, 2)
	assert.Equal(t, "A", st.GenericParams[0].Name())
	assert.Equal(t, "B", st.GenericParams[1].Name())
	require.Len(t, st.Members, 2)
	assert.Equal(t, "first", st.Members[0].(*ast.FieldAST).Name())
}

func TestParseElifChain(t *testing.T) {
	src := "def f(x: int) -> int:\n" +
		"    if x:\n" +
		"        return 1\n" +
		"    elif x:\n" +
		"        return 2\n" +
		"    else:\n" +
		"        return 3\n"
	tree, diags := parse(t, src)
	require.False(t, diags.HasErrors())

	fn := tree.Members[0].(*ast.FunctionAST)
	block := fn.Statement.(*ast.BlockStatement)
	cond := block.Statements[0].(*ast.ConditionStatement)
	require.NotNil(t, cond.ElseIf)
	assert.Equal(t, token.Elif, cond.ElseIf.TokIf.ID())
	require.NotNil(t, cond.ElseIf.Else)
}

func TestParseExpressionPrecedence(t *testing.T) {
	src := "def f() -> int:\n    return 1 + 2 * 3\n"
	tree, diags := parse(t, src)
	require.False(t, diags.HasErrors())

	fn := tree.Members[0].(*ast.FunctionAST)
	block := fn.Statement.(*ast.BlockStatement)
	ret := block.Statements[0].(*ast.ReturnStatement)
	add := ret.Value.(*ast.BinaryExpression)
	assert.Equal(t, ast.BinaryAdd, add.Operator)

	_, ok := add.LeftOperand.(*ast.IntegerExpression)
	require.True(t, ok)

	mul, ok := add.RightOperand.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryMul, mul.Operator)
}

func TestParseErrorRecoveryReportsOneDiagnosticAndResyncs(t *testing.T) {
	src := "def f(:\n    return 1\n"
	_, diags := parse(t, src)

	require.True(t, diags.HasErrors())
	assert.Len(t, diags.All(), 1)
}

func TestParseNativeAttributeStringArgument(t *testing.T) {
	src := "[native(\"orx_str_upper\")]\ndef to_upper(x: int) -> int: ...\n"
	tree, diags := parse(t, src)
	require.False(t, diags.HasErrors())

	fn := tree.Members[0].(*ast.FunctionAST)
	require.Len(t, fn.Attributes, 1)
	attr := fn.Attributes[0]
	assert.Equal(t, "native", attr.Name())
	require.Len(t, attr.Arguments, 1)

	str, ok := attr.Arguments[0].(*ast.StringExpression)
	require.True(t, ok)
	assert.Equal(t, "orx_str_upper", str.Value())
}

func TestParseStringLiteralLexemeKeepsQuotesForLosslessRoundTrip(t *testing.T) {
	src := "[native(\"foo\")]\ndef f() -> int: ...\n"
	tree, diags := parse(t, src)
	require.False(t, diags.HasErrors())

	fn := tree.Members[0].(*ast.FunctionAST)
	str := fn.Attributes[0].Arguments[0].(*ast.StringExpression)

	// §8 property 1: the raw lexeme (including quotes) must appear verbatim
	// in the original source, not just its unquoted Value().
	assert.Contains(t, src, str.TokString.Lexeme())
	assert.Equal(t, `"foo"`, str.TokString.Lexeme())
}

func TestParseImportFrom(t *testing.T) {
	src := "from a.b import c, d as e\ndef f() -> int:\n    return c\n"
	tree, diags := parse(t, src)
	require.False(t, diags.HasErrors())
	require.Len(t, tree.Imports, 1)

	imp := tree.Imports[0].(*ast.ImportFromAST)
	assert.Equal(t, "a.b", imp.ModuleName())
	require.Len(t, imp.Aliases, 2)
	assert.Equal(t, "c", imp.Aliases[0].AliasOrName())
	assert.Equal(t, "e", imp.Aliases[1].AliasOrName())
}
