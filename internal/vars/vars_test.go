package vars

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/extravarsgo/internal/kv"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		base     Map
		incoming Map
		want     map[string]any
	}{
		{
			name:     "incoming overwrites same-named keys",
			base:     Map{"x": cty.NumberIntVal(1)},
			incoming: Map{"x": cty.NumberIntVal(2)},
			want:     map[string]any{"x": int64(2)},
		},
		{
			name:     "keys unique to base survive",
			base:     Map{"a": cty.NumberIntVal(1)},
			incoming: Map{"b": cty.NumberIntVal(2)},
			want:     map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			name:     "raw params accumulate base first",
			base:     Map{kv.RawParams: cty.StringVal("a")},
			incoming: Map{kv.RawParams: cty.StringVal("b")},
			want:     map[string]any{kv.RawParams: "a b"},
		},
		{
			name:     "raw params only in incoming copies over",
			base:     Map{"a": cty.NumberIntVal(1)},
			incoming: Map{kv.RawParams: cty.StringVal("b")},
			want:     map[string]any{"a": int64(1), kv.RawParams: "b"},
		},
		{
			name:     "raw params only in base survive",
			base:     Map{kv.RawParams: cty.StringVal("a")},
			incoming: Map{"b": cty.NumberIntVal(2)},
			want:     map[string]any{kv.RawParams: "a", "b": int64(2)},
		},
		{
			name:     "non-string accumulator is stringified",
			base:     Map{kv.RawParams: cty.NumberIntVal(5)},
			incoming: Map{kv.RawParams: cty.StringVal("b")},
			want:     map[string]any{kv.RawParams: "5 b"},
		},
		{
			name:     "merge into empty base",
			base:     Map{},
			incoming: Map{"a": cty.StringVal("v")},
			want:     map[string]any{"a": "v"},
		},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			Merge(tc.base, tc.incoming)
			if diff := cmp.Diff(tc.want, tc.base.native()); diff != "" {
				t.Errorf("merged map mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_RepeatedFolds(t *testing.T) {
	t.Parallel()

	// The aggregator folds one source at a time; raw params must keep
	// encounter order across several folds.
	total := Map{}
	for _, raw := range []string{"one", "two", "three"} {
		Merge(total, Map{kv.RawParams: cty.StringVal(raw)})
	}

	assert.Equal(t, "one two three", total[kv.RawParams].AsString())
}
