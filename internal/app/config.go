package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Sources is the ordered list of extra-vars inputs: inline YAML/JSON,
	// key=value text, or @file references.
	Sources []string

	// ForceJSON selects compact JSON output; when false the app attempts
	// best-effort consolidated YAML first.
	ForceJSON bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Sources) == 0 {
		return nil, errors.New("Sources is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
