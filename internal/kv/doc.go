// Package kv parses free-form key=value command fragments into typed
// variable maps. Input is split with pragmatic POSIX-shell-like rules,
// assignment values go through a narrow literal scanner, and bare tokens
// accumulate under the reserved _raw_params key.
package kv
