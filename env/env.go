// Package env coerces an untyped environment (the shape encoding/json
// decodes a JSON object into) to the typed values the evaluator
// understands.
package env

import (
	"encoding/json"
	"strings"

	"github.com/kemasdimas/ffs/types"
)

// FromMap coerces a decoded JSON object (or an equivalent
// hand-built map[string]any) into an environment of typed Values.
// Number shape (int-looking vs fractional-looking) is preserved when
// the caller decoded with a json.Decoder configured with UseNumber;
// plain float64/int values from hand-built maps are coerced by their
// Go type instead, since no token shape exists to consult.
func FromMap(raw map[string]any) map[string]types.Value {
	out := make(map[string]types.Value, len(raw))
	for k, v := range raw {
		out[k] = Coerce(v)
	}
	return out
}

// FromJSON decodes a JSON object into an environment, using
// json.Number so integer- and fractional-shaped numbers classify
// correctly regardless of whether the fractional part happens to be
// zero (e.g. 5.0 stays Float, not Int).
func FromJSON(data []byte) (map[string]types.Value, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return FromMap(raw), nil
}

// Coerce converts one decoded JSON value (or Go-native equivalent)
// into a Value, per the coercion table:
//
//	JSON null / missing key -> Null
//	JSON bool               -> Bool
//	JSON number, int-shaped -> Int
//	JSON number, fractional -> Float
//	JSON string             -> Str (verbatim, no escape processing)
//	JSON array of scalars   -> List
//	JSON array w/ nesting   -> List with nested array/object elements
//	                           dropped to Null in place
//	JSON object (nested)    -> Null
func Coerce(v any) types.Value {
	switch x := v.(type) {
	case nil:
		return types.Null
	case bool:
		return types.NewBool(x)
	case json.Number:
		return coerceNumber(x)
	case float64:
		return types.NewFloat(x)
	case float32:
		return types.NewFloat(float64(x))
	case int:
		return types.NewInt(int64(x))
	case int32:
		return types.NewInt(int64(x))
	case int64:
		return types.NewInt(x)
	case string:
		return types.NewStr(x)
	case []any:
		return coerceList(x)
	case map[string]any:
		// A nested object carries no representable shape in this
		// language's value domain; it collapses to Null wherever it
		// appears, whether as a top-level env value or inside a list.
		return types.Null
	default:
		return types.Null
	}
}

// coerceNumber classifies a json.Number by its literal token shape:
// a decimal point or exponent marker makes it Float, otherwise Int.
// This is why FromJSON must decode with UseNumber: a plain float64
// has already lost the distinction between "5" and "5.0".
func coerceNumber(n json.Number) types.Value {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return types.Null
		}
		return types.NewFloat(f)
	}
	i, err := n.Int64()
	if err != nil {
		// Out of int64 range despite looking integral; fall back to
		// Float rather than losing the value entirely.
		f, ferr := n.Float64()
		if ferr != nil {
			return types.Null
		}
		return types.NewFloat(f)
	}
	return types.NewInt(i)
}

// coerceList coerces a JSON array into a ListValue. Nesting collapses
// one level: an element that is itself an array or object becomes
// Null in place rather than a nested List.
func coerceList(items []any) types.Value {
	elements := make([]types.Value, len(items))
	for i, item := range items {
		switch item.(type) {
		case []any, map[string]any:
			elements[i] = types.Null
		default:
			elements[i] = Coerce(item)
		}
	}
	return types.NewList(elements)
}
