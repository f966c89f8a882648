package vars

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/extravarsgo/internal/kv"
)

// Map is a mutable mapping of variable names to dynamically typed values.
// Keys are unique; the reserved kv.RawParams key holds the space-joined
// accumulation of positional tokens across merged sources.
type Map map[string]cty.Value

// native converts the map into plain Go values for YAML rendering.
func (m Map) native() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = toNative(v)
	}
	return out
}

// Merge folds incoming into base in place. When both maps carry the
// kv.RawParams accumulator the two strings join base-first with a single
// space; every other incoming key overwrites its counterpart in base, and
// keys unique to base are preserved.
func Merge(base, incoming Map) {
	baseRaw, inBase := base[kv.RawParams]
	incomingRaw, inIncoming := incoming[kv.RawParams]
	joinRaw := inBase && inIncoming
	if joinRaw {
		base[kv.RawParams] = cty.StringVal(rawString(baseRaw) + " " + rawString(incomingRaw))
	}

	for k, v := range incoming {
		if joinRaw && k == kv.RawParams {
			continue
		}
		base[k] = v
	}
}

// rawString renders a raw-params value as text. A non-string accumulator
// only appears when a user assigns the reserved key explicitly.
func rawString(v cty.Value) string {
	if !v.IsNull() && v.Type() == cty.String {
		return v.AsString()
	}
	return fmt.Sprintf("%v", toNative(v))
}
