// Package jsonutil deals with JSON columns that historical clients wrote with
// one or more extra layers of string encoding.
package jsonutil

import "encoding/json"

// maxDecodeDepth caps how many nested string encodings DecodeNested will peel
// off. Input nested deeper than this comes back as-is instead of looping.
const maxDecodeDepth = 5

// DecodeNested unmarshals raw and keeps unmarshaling while the result is
// itself a JSON-encoded string. On any parse failure the original raw value
// is returned unchanged along with the error.
func DecodeNested(raw []byte) (any, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return string(raw), err
	}
	for i := 0; i < maxDecodeDepth; i++ {
		inner, ok := value.(string)
		if !ok {
			break
		}
		var next any
		if err := json.Unmarshal([]byte(inner), &next); err != nil {
			// Not another encoding layer, just a plain string value.
			break
		}
		value = next
	}
	return value, nil
}

// AsArray coerces a decoded value to a slice. Non-array values, including
// nil, become an empty slice so callers always see an array.
func AsArray(value any) []any {
	if arr, ok := value.([]any); ok {
		return arr
	}
	return []any{}
}
