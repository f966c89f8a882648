package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/extravarsgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// sourceList collects the repeatable -e/--extra-vars flag values in the
// order they were given.
type sourceList []string

func (s *sourceList) String() string {
	return strings.Join(*s, ", ")
}

func (s *sourceList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("extravarsgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ExtraVarsGo - normalizes Ansible-style extra variables into JSON or YAML.

Usage:
  extravarsgo [options] [VARS...]

Arguments:
  VARS
    Extra variables as inline YAML/JSON text, key=value fragments, or
    @file references. Sources merge in order; later keys win.

Options:
`)
		flagSet.PrintDefaults()
	}

	var extraVars sourceList
	flagSet.Var(&extraVars, "extra-vars", "Extra variables source; may be repeated.")
	flagSet.Var(&extraVars, "e", "Extra variables source (shorthand).")
	yamlFlag := flagSet.Bool("yaml", false, "Emit best-effort consolidated YAML instead of compact JSON.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Flag-supplied sources come first, positional arguments after, so the
	// merge order matches the command line reading order.
	sources := append([]string(extraVars), flagSet.Args()...)
	slog.Debug("Extra-vars sources determined.", "count", len(sources))

	if len(sources) == 0 {
		slog.Debug("No sources provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Sources:   sources,
		ForceJSON: !*yamlFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
