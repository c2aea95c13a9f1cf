package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcinuscc/orcinus/internal/types"
)

func TestUnifyBindsGenericParameterToArgument(t *testing.T) {
	ctx := types.NewContext()
	param := &types.GenericParameterType{Name: "T"}

	err := ctx.Unify(types.FromType(param), types.FromType(types.Int))
	require.NoError(t, err)

	subs := ctx.Substitutions()
	assert.Same(t, types.Int, subs["T"])
}

func TestUnifyFailsOnMismatchedPrimitives(t *testing.T) {
	ctx := types.NewContext()
	err := ctx.Unify(types.FromType(types.Int), types.FromType(types.Str))
	assert.Error(t, err)
}

func TestUnifySucceedsOnErrorTypeEitherSide(t *testing.T) {
	ctx := types.NewContext()
	err := ctx.Unify(types.FromType(types.TheErrorType), types.FromType(types.Int))
	assert.NoError(t, err)
}

func TestUnifyOccursCheckRejectsRecursiveBinding(t *testing.T) {
	ctx := types.NewContext()
	pair := &types.StructType{Name: "Pair", GenericDecl: []string{"A", "B"}}
	instance := &types.StructType{
		Name:      "Pair",
		Origin:    pair,
		Arguments: []types.Type{&types.GenericParameterType{Name: "T"}, types.Int},
	}

	err := ctx.Unify(types.FromType(&types.GenericParameterType{Name: "T"}), types.FromType(instance))
	assert.Error(t, err)
}

func TestUnifyStructuralOnParameterizedStruct(t *testing.T) {
	ctx := types.NewContext()
	pair := &types.StructType{Name: "Pair", GenericDecl: []string{"A", "B"}}
	generic := &types.StructType{
		Name:      "Pair",
		Origin:    pair,
		Arguments: []types.Type{&types.GenericParameterType{Name: "A"}, &types.GenericParameterType{Name: "B"}},
	}
	concrete := &types.StructType{
		Name:      "Pair",
		Origin:    pair,
		Arguments: []types.Type{types.Int, types.Str},
	}

	err := ctx.Unify(types.FromType(generic), types.FromType(concrete))
	require.NoError(t, err)

	subs := ctx.Substitutions()
	assert.Same(t, types.Int, subs["A"])
	assert.Same(t, types.Str, subs["B"])
}

func TestFunctionTypeEqualityIsStructural(t *testing.T) {
	a := &types.FunctionType{Parameters: []types.Type{types.Int}, Return: types.Bool}
	b := &types.FunctionType{Parameters: []types.Type{types.Int}, Return: types.Bool}
	assert.True(t, a.Equal(b))

	c := &types.FunctionType{Parameters: []types.Type{types.Str}, Return: types.Bool}
	assert.False(t, a.Equal(c))
}
