package kv

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// RawParams is the reserved key under which bare (non key=value) tokens
// accumulate, joined by single spaces in encounter order. It doubles as a
// merge accumulator when maps from several sources are combined.
const RawParams = "_raw_params"

// Parse splits text into shell-like tokens and classifies each one as a
// key=value assignment or a bare positional token. Assignments split at the
// first "=" and their values go through the literal scanner, keeping the
// raw string when scanning fails. Bare tokens append to the RawParams
// entry.
//
// Parse is atomic: on any failure it returns a nil map, so callers never
// observe partial results. An empty input yields an empty map.
func Parse(text string) (map[string]cty.Value, error) {
	vars := make(map[string]cty.Value)
	if text == "" {
		return vars, nil
	}

	tokens, err := Split(text)
	if err != nil {
		return nil, err
	}

	for _, token := range tokens {
		if strings.Contains(token, "=") {
			key, value, _ := strings.Cut(token, "=")
			if key == "" || value == "" {
				return nil, &MalformedAssignmentError{Token: token}
			}
			if v, ok := Literal(value); ok {
				vars[key] = v
			} else {
				vars[key] = cty.StringVal(value)
			}
			continue
		}

		// A bare token with spaces gets re-quoted so the accumulated string
		// still round-trips through Split later.
		if strings.Contains(token, " ") {
			token = `"` + token + `"`
		}
		if strings.HasSuffix(token, ":") {
			return nil, &SuspiciousTokenError{Token: token}
		}

		if prev, ok := vars[RawParams]; ok {
			if prev.IsNull() || prev.Type() != cty.String {
				return nil, fmt.Errorf("cannot append %q to non-string %s value", token, RawParams)
			}
			vars[RawParams] = cty.StringVal(prev.AsString() + " " + token)
		} else {
			vars[RawParams] = cty.StringVal(token)
		}
	}

	return vars, nil
}
