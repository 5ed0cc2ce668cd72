package delivery

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

var errInvalidIDs = errors.New("all 'ids' must be valid integers")

// coerceIDs converts the raw id payload to integers. JSON numbers must be
// integral and strings must parse as base-10 integers; any other element,
// or an empty list, rejects the whole request before anything is mutated.
func coerceIDs(raw []any) ([]int, error) {
	if len(raw) == 0 {
		return nil, errInvalidIDs
	}
	ids := make([]int, 0, len(raw))
	for _, element := range raw {
		switch v := element.(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, errInvalidIDs
			}
			ids = append(ids, int(v))
		case json.Number:
			id, err := strconv.Atoi(v.String())
			if err != nil {
				return nil, errInvalidIDs
			}
			ids = append(ids, id)
		case string:
			id, err := strconv.Atoi(v)
			if err != nil {
				return nil, errInvalidIDs
			}
			ids = append(ids, id)
		default:
			return nil, errInvalidIDs
		}
	}
	return ids, nil
}
