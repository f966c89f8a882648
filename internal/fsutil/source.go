// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"strings"
)

// FileSentinel marks an input source as a file reference rather than
// inline text.
const FileSentinel = "@"

// ExpandSource resolves a single extra-vars input source. A source starting
// with the "@" sentinel is treated as a file path; the file's full contents
// replace the source text. Any read error is returned unmodified and is
// fatal for the invocation. Inline sources are returned as-is.
func ExpandSource(source string) (text string, fromFile bool, err error) {
	if !strings.HasPrefix(source, FileSentinel) {
		return source, false, nil
	}

	data, err := os.ReadFile(strings.TrimPrefix(source, FileSentinel))
	if err != nil {
		return "", true, err
	}
	return string(data), true, nil
}
