package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     []any
		want    []int
		wantErr bool
	}{
		{name: "numbers", raw: []any{float64(1), float64(2)}, want: []int{1, 2}},
		{name: "numeric strings", raw: []any{"7", "8"}, want: []int{7, 8}},
		{name: "mixed", raw: []any{float64(1), "2"}, want: []int{1, 2}},
		{name: "empty list", raw: []any{}, wantErr: true},
		{name: "nil list", raw: nil, wantErr: true},
		{name: "non-numeric string", raw: []any{"x"}, wantErr: true},
		{name: "fractional number", raw: []any{1.5}, wantErr: true},
		{name: "one bad element poisons all", raw: []any{float64(1), "x", float64(3)}, wantErr: true},
		{name: "boolean", raw: []any{true}, wantErr: true},
		{name: "nested object", raw: []any{map[string]any{"id": float64(1)}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceIDs(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
