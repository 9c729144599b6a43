// Package logging configures the process-wide zap logger.
package logging

import "go.uber.org/zap"

// Setup builds the global logger. Verbose mode uses the development config
// so debug-level scan traces become visible.
func Setup(verbose bool) error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
