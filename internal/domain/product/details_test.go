package product

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetailValueAcceptsUnionOnly(t *testing.T) {
	dv, ok := ParseDetailValue("bright indirect light")
	require.True(t, ok)
	assert.Equal(t, DetailString, dv.Kind)
	assert.Equal(t, "bright indirect light", dv.Str)

	dv, ok = ParseDetailValue(true)
	require.True(t, ok)
	assert.Equal(t, DetailBool, dv.Kind)

	dv, ok = ParseDetailValue(int64(30))
	require.True(t, ok)
	assert.Equal(t, DetailNumber, dv.Kind)
	assert.Equal(t, 30.0, dv.Num)

	_, ok = ParseDetailValue(nil)
	assert.False(t, ok)
	_, ok = ParseDetailValue(map[string]any{"nested": 1})
	assert.False(t, ok)
	_, ok = ParseDetailValue([]any{"a"})
	assert.False(t, ok)
}

func TestParseDetailsDropsUnsupported(t *testing.T) {
	got := ParseDetails(map[string]any{
		"light":       "low",
		"petSafe":     true,
		"heightCm":    45.0,
		"":            "dropped",
		"unsupported": []any{1, 2},
	})

	require.Len(t, got, 3)
	assert.Equal(t, StringDetail("low"), got["light"])
	assert.Equal(t, BoolDetail(true), got["petSafe"])
	assert.Equal(t, NumberDetail(45), got["heightCm"])
}

func TestDetailValueJSONRoundTrip(t *testing.T) {
	in := map[string]DetailValue{
		"light":    StringDetail("low"),
		"petSafe":  BoolDetail(false),
		"heightCm": NumberDetail(45),
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"light":"low","petSafe":false,"heightCm":45}`, string(raw))

	var out map[string]DetailValue
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	var bad DetailValue
	assert.Error(t, json.Unmarshal([]byte(`{"nested":true}`), &bad))
}
