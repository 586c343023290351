package cli

import (
	"context"
	"time"

	"github.com/handiism/art-exposure/internal/config"
	"github.com/handiism/art-exposure/internal/exposure"
)

// run executes one pipeline pass and prints the summary.
func (c *CLI) run(ctx context.Context, settings *config.Settings) error {
	start := time.Now()

	manager := exposure.NewManager(settings, progressLogger(c.logger), c.managerOpts...)
	result, err := manager.Run(ctx)
	if err != nil {
		return err
	}

	c.logger.Debug("Done", "elapsed", time.Since(start).Round(time.Millisecond))
	printSummary(c.out, result)
	return nil
}
