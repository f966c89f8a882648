package kv

import (
	"math"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Literal interprets s as one of a narrow set of scalar and container
// literal forms: decimal integers and floats, True/False, None, quoted
// strings, and simple bracketed lists or tuples of the same. It returns the
// resulting value and true on success, or (cty.NilVal, false) when s is not
// one of these forms, in which case callers keep the raw string.
//
// This is intentionally a small scanner, not a general literal evaluator.
func Literal(s string) (cty.Value, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return cty.NilVal, false
	}

	switch t {
	case "True":
		return cty.True, true
	case "False":
		return cty.False, true
	case "None":
		// Typed as a string null so JSON serialization renders a plain null.
		return cty.NullVal(cty.String), true
	}

	if isIntLiteral(t) {
		if v, err := cty.ParseNumberVal(t); err == nil {
			return v, true
		}
		return cty.NilVal, false
	}

	if f, err := strconv.ParseFloat(t, 64); err == nil &&
		!math.IsInf(f, 0) && !math.IsNaN(f) && isFloatShaped(t) {
		return cty.NumberFloatVal(f), true
	}

	if len(t) >= 2 && (t[0] == '\'' || t[0] == '"') && t[len(t)-1] == t[0] {
		if inner, ok := unquote(t); ok {
			return cty.StringVal(inner), true
		}
		return cty.NilVal, false
	}

	if len(t) >= 2 && ((t[0] == '[' && t[len(t)-1] == ']') || (t[0] == '(' && t[len(t)-1] == ')')) {
		return sequenceLiteral(t[1 : len(t)-1])
	}

	return cty.NilVal, false
}

// isIntLiteral matches an optionally signed run of decimal digits.
func isIntLiteral(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatShaped rejects spellings strconv accepts but a literal scanner
// should not, such as "Inf", "NaN", or hex floats.
func isFloatShaped(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
		default:
			return false
		}
	}
	return true
}

// unquote strips the surrounding quotes from t and resolves backslash
// escapes. It fails when the inner text closes the quote early.
func unquote(t string) (string, bool) {
	quote := t[0]
	inner := t[1 : len(t)-1]

	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == quote {
			return "", false
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(inner) {
			return "", false
		}
		i++
		switch inner[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '\'', '"':
			b.WriteByte(inner[i])
		default:
			// Unknown escapes keep the backslash.
			b.WriteByte('\\')
			b.WriteByte(inner[i])
		}
	}
	return b.String(), true
}

// sequenceLiteral parses the comma-separated body of a list or tuple
// literal. Every element must itself be a literal or the whole container
// fails.
func sequenceLiteral(body string) (cty.Value, bool) {
	elems, ok := splitElements(body)
	if !ok {
		return cty.NilVal, false
	}
	if len(elems) == 0 {
		return cty.EmptyTupleVal, true
	}

	vals := make([]cty.Value, 0, len(elems))
	for _, e := range elems {
		v, ok := Literal(e)
		if !ok {
			return cty.NilVal, false
		}
		vals = append(vals, v)
	}
	return cty.TupleVal(vals), true
}

// splitElements splits body on commas at bracket depth zero, respecting
// quoted sections. A single trailing comma is tolerated.
func splitElements(body string) ([]string, bool) {
	if strings.TrimSpace(body) == "" {
		return nil, true
	}

	var elems []string
	depth := 0
	start := 0
	var quote byte

	for i := 0; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth < 0 {
				return nil, false
			}
		case ',':
			if depth == 0 {
				elems = append(elems, body[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 || quote != 0 {
		return nil, false
	}

	last := body[start:]
	if strings.TrimSpace(last) == "" {
		// Trailing comma, as in "[1, 2,]".
		if len(elems) == 0 {
			return nil, false
		}
	} else {
		elems = append(elems, last)
	}

	for _, e := range elems {
		if strings.TrimSpace(e) == "" {
			return nil, false
		}
	}
	return elems, true
}
