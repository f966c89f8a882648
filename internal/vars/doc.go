// Package vars normalizes heterogeneous "extra variables" input into a
// single merged mapping and re-serializes it for an automation job launch.
// It decodes each source as YAML/JSON with a key=value fallback, folds the
// per-source mappings together with special handling for the raw-params
// accumulator, and emits either compact JSON or best-effort consolidated
// YAML.
package vars
