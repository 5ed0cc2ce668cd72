package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNested(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{
			name: "plain array",
			raw:  `[{"name":"frame"}]`,
			want: []any{map[string]any{"name": "frame"}},
		},
		{
			name: "double encoded array",
			raw:  `"[1,2,3]"`,
			want: []any{float64(1), float64(2), float64(3)},
		},
		{
			name: "triple encoded object",
			raw:  `"\"{\\\"city\\\":\\\"Milano\\\"}\""`,
			want: map[string]any{"city": "Milano"},
		},
		{
			name: "plain string stays a string",
			raw:  `"hello"`,
			want: "hello",
		},
		{
			name: "number",
			raw:  `42`,
			want: float64(42),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNested([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeNestedInvalidInputReturnsOriginal(t *testing.T) {
	got, err := DecodeNested([]byte(`{not json`))
	assert.Error(t, err)
	assert.Equal(t, `{not json`, got)
}

func TestDecodeNestedDepthIsBounded(t *testing.T) {
	// Build a value wrapped in far more encoding layers than the cap.
	payload := `[1]`
	for i := 0; i < 20; i++ {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		payload = string(encoded)
	}

	got, err := DecodeNested([]byte(payload))
	require.NoError(t, err)
	// The cap leaves the value partially decoded, still a string, instead
	// of spinning through every layer.
	_, stillString := got.(string)
	assert.True(t, stillString)
}

func TestAsArray(t *testing.T) {
	assert.Equal(t, []any{float64(1)}, AsArray([]any{float64(1)}))
	assert.Equal(t, []any{}, AsArray(nil))
	assert.Equal(t, []any{}, AsArray("not an array"))
	assert.Equal(t, []any{}, AsArray(map[string]any{"a": "b"}))
}
