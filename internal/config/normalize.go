package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if strings.TrimSpace(c.Paths.CacheDir) != "" {
		expanded, err := expandPath(c.Paths.CacheDir)
		if err != nil {
			return fmt.Errorf("paths.cache_dir: %w", err)
		}
		c.Paths.CacheDir = expanded
	} else {
		c.Paths.CacheDir = ""
	}
	return nil
}
