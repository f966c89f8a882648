package vars

import (
	"gopkg.in/yaml.v3"

	"github.com/vk/extravarsgo/internal/kv"
)

// StringToMap decodes text into a variable mapping. It first tries the
// structured-markup route (YAML, which is a strict superset of JSON); that
// route only succeeds when the document is a mapping — a scalar, sequence,
// or empty document counts as a failure. On failure, allowKV selects the
// key=value fallback; with the fallback disabled, or when it also fails,
// StringToMap returns a *ParseError carrying the source text.
func StringToMap(text string, allowKV bool) (Map, error) {
	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(text), &decoded); err == nil && decoded != nil {
		m := make(Map, len(decoded))
		for k, v := range decoded {
			m[k] = fromNative(v)
		}
		return m, nil
	}

	if !allowKV {
		return nil, &ParseError{Source: text}
	}
	parsed, err := kv.Parse(text)
	if err != nil {
		return nil, &ParseError{Source: text, Err: err}
	}
	return Map(parsed), nil
}
