package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcinuscc/orcinus/internal/location"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

func fn(name string) *symbols.Function {
	return &symbols.Function{FuncName: name, ReturnType: types.Void}
}

func TestScopeResolveFindsParentOverloadByMergedName(t *testing.T) {
	parent := symbols.NewScope(nil)
	require.NoError(t, parent.Append(fn("f"), ""))

	child := symbols.NewScope(parent)
	require.NoError(t, child.Append(fn("f"), ""))

	resolved := child.Resolve("f")
	require.NotNil(t, resolved)

	overload, ok := resolved.(*symbols.Overload)
	require.True(t, ok)
	assert.Len(t, overload.Functions(), 2)
}

func TestScopeResolveClonesOverloadSoMutationDoesNotEscapeToSiblingScopes(t *testing.T) {
	parent := symbols.NewScope(nil)
	require.NoError(t, parent.Append(fn("f"), ""))

	childA := symbols.NewScope(parent)
	childA.Resolve("f").(*symbols.Overload).Append(fn("f"))

	childB := symbols.NewScope(parent)
	assert.Len(t, childB.Resolve("f").(*symbols.Overload).Functions(), 1)
}

func TestScopeAppendDuplicateNonFunctionIsError(t *testing.T) {
	scope := symbols.NewScope(nil)
	v := &symbols.Variable{VarName: "x", Type: types.Int, Loc: location.Location{}}
	require.NoError(t, scope.Append(v, ""))
	assert.Error(t, scope.Append(v, ""))
}

func TestScopeResolveUnknownNameReturnsNil(t *testing.T) {
	scope := symbols.NewScope(nil)
	assert.Nil(t, scope.Resolve("nope"))
}
