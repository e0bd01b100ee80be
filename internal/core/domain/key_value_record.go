package domain

import (
	"encoding/json"
	"math"
)

// KeyValueRecord is the generic key-value payload exchanged with other
// components. Values are primitives (integers, strings, booleans).
type KeyValueRecord map[string]any

// Int64 reads an integer field. The boolean is false when the key is absent
// or its value cannot be represented as an int64 without loss.
func (r KeyValueRecord) Int64(key string) (int64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		// JSON decoders without UseNumber hand integers over as float64.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// GetInt64 reads an integer field, returning def when it is absent or not an integer.
func (r KeyValueRecord) GetInt64(key string, def int64) int64 {
	if v, ok := r.Int64(key); ok {
		return v
	}
	return def
}

// PutInt64 stores an integer field.
func (r KeyValueRecord) PutInt64(key string, v int64) {
	r[key] = v
}

// Clone returns a shallow copy of the record.
func (r KeyValueRecord) Clone() KeyValueRecord {
	out := make(KeyValueRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
