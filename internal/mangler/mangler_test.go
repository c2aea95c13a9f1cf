package mangler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/types"
)

func TestTypePrimitivesGetShortSpellings(t *testing.T) {
	assert.Equal(t, "i32", Type("m", types.Int))
	assert.Equal(t, "b", Type("m", types.Bool))
	assert.Equal(t, "v", Type("m", types.Void))
	assert.Equal(t, "str", Type("m", types.Str))
}

func TestFunctionIsStableAndNameDelimited(t *testing.T) {
	module := &symbols.Module{Name: "geometry"}
	fn := &symbols.Function{
		FuncName:   "add",
		Owner:      module,
		Parameters: []*symbols.Parameter{{ParamName: "a", Type: types.Int}, {ParamName: "b", Type: types.Int}},
		ReturnType: types.Int,
	}

	first := Function(fn)
	second := Function(fn)
	require.Equal(t, first, second, "mangling the same function twice must be stable")
	assert.Contains(t, first, "ORX_FUNC_")
	assert.Contains(t, first, "geometry")
	assert.Contains(t, first, "add")
}

func TestFunctionDistinguishesOverloadsByParameterCount(t *testing.T) {
	module := &symbols.Module{Name: "m"}
	unary := &symbols.Function{FuncName: "f", Owner: module, Parameters: []*symbols.Parameter{{ParamName: "a", Type: types.Int}}, ReturnType: types.Int}
	binary := &symbols.Function{FuncName: "f", Owner: module, Parameters: []*symbols.Parameter{{ParamName: "a", Type: types.Int}, {ParamName: "b", Type: types.Int}}, ReturnType: types.Int}

	assert.NotEqual(t, Function(unary), Function(binary))
}

func TestFunctionDistinguishesGenericInstantiations(t *testing.T) {
	module := &symbols.Module{Name: "m"}
	origin := &symbols.Function{
		FuncName:      "id",
		Owner:         module,
		GenericParams: []string{"T"},
		Parameters:    []*symbols.Parameter{{ParamName: "x", Type: &types.GenericParameterType{Name: "T"}}},
		ReturnType:    &types.GenericParameterType{Name: "T"},
	}
	intInstance := &symbols.Function{
		FuncName:   "id",
		Owner:      module,
		Origin:     origin,
		Arguments:  []types.Type{types.Int},
		Parameters: []*symbols.Parameter{{ParamName: "x", Type: types.Int}},
		ReturnType: types.Int,
	}
	strInstance := &symbols.Function{
		FuncName:   "id",
		Owner:      module,
		Origin:     origin,
		Arguments:  []types.Type{types.Str},
		Parameters: []*symbols.Parameter{{ParamName: "x", Type: types.Str}},
		ReturnType: types.Str,
	}

	assert.NotEqual(t, Function(intInstance), Function(strInstance))
}

func TestFunctionNativeWithoutOverrideUsesFallbackName(t *testing.T) {
	module := &symbols.Module{Name: "string"}
	fn := &symbols.Function{
		FuncName:   "toUpper",
		Owner:      module,
		Attributes: []*symbols.Attribute{{AttrName: "native"}},
	}
	assert.Equal(t, "stringToUpper", Function(fn))
}

func TestFunctionNativeWithExplicitOverrideLinksVerbatim(t *testing.T) {
	module := &symbols.Module{Name: "string"}
	fn := &symbols.Function{
		FuncName: "toUpper",
		Owner:    module,
		Attributes: []*symbols.Attribute{{
			AttrName:  "native",
			Arguments: []symbols.Value{&symbols.StringConstant{Value: "orx_str_upper"}},
		}},
	}
	assert.Equal(t, "orx_str_upper", Function(fn))
}
