package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is one node of a document tree: Null, Bool, Number, String, Array
// or Map.
type Value interface {
	isValue()
}

type (
	Null   struct{}
	Bool   bool
	Number float64
	String string
	Array  []Value
	Map    map[string]Value
)

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Map) isValue()    {}

// FromAny converts the generic values produced by encoding/json or the
// TOML decoder into a Value. Unknown scalar types are kept as their string
// form.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case string:
		return String(t)
	case []any:
		arr := make(Array, len(t))
		for i, elem := range t {
			arr[i] = FromAny(elem)
		}
		return arr
	case []map[string]any:
		arr := make(Array, len(t))
		for i, elem := range t {
			arr[i] = FromAny(elem)
		}
		return arr
	case map[string]any:
		m := make(Map, len(t))
		for k, elem := range t {
			m[k] = FromAny(elem)
		}
		return m
	default:
		return String(fmt.Sprint(t))
	}
}

// Has reports whether the map holds key, regardless of its value.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Lookup descends through nested maps following keys outermost first and
// returns the value found at the end of the path. Any missing key, or a
// non-map value where another descent is required, yields (nil, false).
func (m Map) Lookup(keys ...string) (Value, bool) {
	var cur Value = m
	for _, key := range keys {
		next, ok := cur.(Map)
		if !ok {
			return nil, false
		}
		if cur, ok = next[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// UnmarshalJSON decodes a JSON object into the map. A JSON null leaves the
// map nil.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}

	*m = FromAny(raw).(Map)
	return nil
}
