package vars

import (
	"context"
	"strings"
	"unicode"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"

	"github.com/vk/extravarsgo/internal/ctxlog"
	"github.com/vk/extravarsgo/internal/fsutil"
)

// Process decodes every input source in order and folds the results into a
// single mapping. A source is either inline text (decoded liberally, with
// the key=value fallback) or an @file reference (the file's content is
// decoded conservatively, fallback disabled). File-read errors propagate
// unmodified.
//
// With forceJSON the merged mapping is returned as compact JSON, or as the
// empty string when no variables were found. Otherwise Process first tries
// to return the accumulated YAML trace — source text verbatim where it
// carried comment lines, fresh block-style renderings elsewhere — and only
// falls back to JSON when that trace does not itself parse as a mapping.
func Process(ctx context.Context, sources []string, forceJSON bool) (string, error) {
	logger := ctxlog.FromContext(ctx)

	total := Map{}
	var trace strings.Builder

	for _, source := range sources {
		text, fromFile, err := fsutil.ExpandSource(source)
		if err != nil {
			return "", err
		}

		decoded, err := StringToMap(text, !fromFile)
		if err != nil {
			return "", err
		}

		if hasCommentLine(text) {
			// Keep the original text: re-serializing would discard comments.
			trace.WriteString(text)
			trace.WriteString("\n")
		} else if text != "" {
			rendered, err := yaml.Marshal(decoded.native())
			if err != nil {
				return "", err
			}
			trace.Write(rendered)
			trace.WriteString("\n")
		}

		Merge(total, decoded)
	}

	if !forceJSON {
		// The trace is only safe to return when it still reads back as a
		// mapping. A comment-only trace decodes to an empty document, which
		// counts as the empty mapping so comments round-trip.
		var probe map[string]any
		err := yaml.Unmarshal([]byte(trace.String()), &probe)
		if err == nil && (probe != nil || commentsOnly(trace.String())) {
			logger.Debug("Using unprocessed YAML for extra vars.")
			return strings.TrimRightFunc(trace.String(), unicode.IsSpace), nil
		}
		logger.Debug("Failed YAML parsing of the accumulated trace, defaulting to JSON.")
	}

	if len(total) == 0 {
		return "", nil
	}

	obj := cty.ObjectVal(total)
	out, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// hasCommentLine reports whether any line of text starts with "#".
func hasCommentLine(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			return true
		}
	}
	return false
}

// commentsOnly reports whether every line of text is blank or a comment.
func commentsOnly(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return false
		}
	}
	return true
}
