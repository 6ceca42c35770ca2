package config

import (
	"errors"
	"fmt"
)

// structuralFields are machine-owned node fields that sync always rewrites.
// Configuring one as manual would make reconciliation a no-op for it.
var structuralFields = map[string]struct{}{
	"id":                 {},
	"status":             {},
	"edible":             {},
	"direct_ingredients": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateSync(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.Workers <= 0 {
		return errors.New("scan.workers must be positive")
	}
	return nil
}

func (c *Config) validateSync() error {
	for _, field := range c.Sync.ManualFields {
		if _, structural := structuralFields[field]; structural {
			return fmt.Errorf("sync.manual_fields must not include structural field %q", field)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
