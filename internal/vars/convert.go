// This file contains the logic for moving values between their decoded Go
// representation (interface{}) and the cty value model used everywhere
// else in this package.

package vars

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// fromNative recursively converts a decoded Go value into its cty
// counterpart.
func fromNative(v any) cty.Value {
	switch v := v.(type) {
	case nil:
		// Typed as a string null so JSON serialization renders a plain null.
		return cty.NullVal(cty.String)
	case bool:
		return cty.BoolVal(v)
	case int:
		return cty.NumberIntVal(int64(v))
	case int64:
		return cty.NumberIntVal(v)
	case uint64:
		return cty.NumberUIntVal(v)
	case float64:
		return cty.NumberFloatVal(v)
	case string:
		return cty.StringVal(v)
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal
		}
		vals := make([]cty.Value, 0, len(v))
		for _, e := range v {
			vals = append(vals, fromNative(e))
		}
		return cty.TupleVal(vals)
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(v))
		for k, e := range v {
			attrs[k] = fromNative(e)
		}
		return cty.ObjectVal(attrs)
	default:
		// yaml.v3 can produce values with no JSON counterpart, such as
		// time.Time for timestamps; render those as strings.
		return cty.StringVal(fmt.Sprintf("%v", v))
	}
}

// toNative recursively converts a cty.Value to its most natural Go
// counterpart, for YAML rendering of a decoded mapping.
func toNative(v cty.Value) any {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString()

	case ty == cty.Bool:
		return v.True()

	case ty == cty.Number:
		// Whole numbers render as integers so the YAML trace shows "a: 1"
		// rather than "a: 1.0".
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i
		}
		f, _ := bf.Float64()
		return f

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, val := it.Element()
			slice = append(slice, toNative(val))
		}
		return slice

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			key, val := it.Element()
			goMap[key.AsString()] = toNative(val)
		}
		return goMap

	default:
		return nil
	}
}
