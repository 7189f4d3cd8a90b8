package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Run.HashWorkers < 0 {
		return fmt.Errorf("run.hash_workers must not be negative, got %d", c.Run.HashWorkers)
	}
	if c.Run.MaxPasses < 0 {
		return fmt.Errorf("run.max_passes must not be negative, got %d", c.Run.MaxPasses)
	}
	return nil
}
