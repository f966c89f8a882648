package app

import (
	"context"
	"fmt"

	"github.com/vk/extravarsgo/internal/ctxlog"
	"github.com/vk/extravarsgo/internal/vars"
)

// Run executes the normalization based on the provided configuration and
// writes the result to the application's output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "source_count", len(a.config.Sources))

	result, err := vars.Process(ctx, a.config.Sources, a.config.ForceJSON)
	if err != nil {
		return fmt.Errorf("failed to process extra vars: %w", err)
	}

	if result == "" {
		a.logger.Warn("No variables found in any source, nothing to emit.")
		return nil
	}

	if _, err := fmt.Fprintln(a.outW, result); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
