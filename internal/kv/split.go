package kv

import "strings"

// Split tokenizes s with POSIX-shell-like rules: tokens are separated by
// unquoted whitespace, single- and double-quoted sections join into the
// surrounding token with their quotes stripped, and a backslash escapes the
// next character (inside double quotes only `\"` and `\\` are special).
// This is deliberately not a full shell tokenizer; it only needs to cover
// simple key=value command fragments.
func Split(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, cur.String())
			cur.Reset()
			inToken = false
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			flush()
			i++

		case '\'':
			// Single quotes take everything up to the closing quote verbatim.
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, &UnbalancedQuoteError{Text: s}
			}
			cur.WriteString(s[i+1 : i+1+end])
			inToken = true
			i += end + 2

		case '"':
			inToken = true
			i++
			closed := false
			for i < len(s) {
				if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
					cur.WriteByte(s[i+1])
					i += 2
					continue
				}
				if s[i] == '"' {
					closed = true
					i++
					break
				}
				cur.WriteByte(s[i])
				i++
			}
			if !closed {
				return nil, &UnbalancedQuoteError{Text: s}
			}

		case '\\':
			inToken = true
			if i+1 < len(s) {
				cur.WriteByte(s[i+1])
				i += 2
			} else {
				// Trailing backslash escapes nothing; drop it.
				i++
			}

		default:
			inToken = true
			cur.WriteByte(c)
			i++
		}
	}
	flush()

	return tokens, nil
}
