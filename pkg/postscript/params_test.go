package postscript

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapParams_String(t *testing.T) {
	params := MapParams{"name": "vip", "count": 3}

	value, err := params.String("name")
	require.NoError(t, err)
	assert.Equal(t, "vip", value)

	_, err = params.String("missing")
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = params.String("count")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestMapParams_StringOr(t *testing.T) {
	params := MapParams{"name": "vip"}

	assert.Equal(t, "vip", params.StringOr("name", "fallback"))
	assert.Equal(t, "fallback", params.StringOr("missing", "fallback"))
}

func TestMapParams_Bool(t *testing.T) {
	params := MapParams{"returnAll": true, "name": "vip"}

	value, err := params.Bool("returnAll")
	require.NoError(t, err)
	assert.True(t, value)

	_, err = params.Bool("missing")
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = params.Bool("name")
	require.Error(t, err)

	assert.True(t, params.BoolOr("returnAll", false))
	assert.False(t, params.BoolOr("missing", false))
}

func TestMapParams_Int(t *testing.T) {
	params := MapParams{
		"int":    25,
		"float":  float64(50),
		"number": json.Number("75"),
		"name":   "vip",
	}

	for key, expected := range map[string]int{"int": 25, "float": 50, "number": 75} {
		value, err := params.Int(key)
		require.NoError(t, err)
		assert.Equal(t, expected, value)
	}

	_, err := params.Int("missing")
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = params.Int("name")
	require.Error(t, err)

	assert.Equal(t, 25, params.IntOr("int", 10))
	assert.Equal(t, 10, params.IntOr("missing", 10))
}

func TestMapParams_FloatOr(t *testing.T) {
	params := MapParams{
		"price":  19.99,
		"count":  3,
		"number": json.Number("2.5"),
		"name":   "vip",
	}

	assert.Equal(t, 19.99, params.FloatOr("price", 0))
	assert.Equal(t, 3.0, params.FloatOr("count", 0))
	assert.Equal(t, 2.5, params.FloatOr("number", 0))
	assert.Equal(t, 1.5, params.FloatOr("missing", 1.5))
	assert.Equal(t, 1.5, params.FloatOr("name", 1.5))
}

func TestMapParams_Object(t *testing.T) {
	params := MapParams{
		"filters": map[string]interface{}{"tag": "vip"},
		"name":    "vip",
	}

	assert.Equal(t, map[string]interface{}{"tag": "vip"}, params.Object("filters"))
	assert.Empty(t, params.Object("missing"))
	assert.Empty(t, params.Object("name"))
}

func TestMapParams_Has(t *testing.T) {
	params := MapParams{"name": "vip"}

	assert.True(t, params.Has("name"))
	assert.False(t, params.Has("missing"))
}
