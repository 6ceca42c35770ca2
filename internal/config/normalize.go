package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeScan(); err != nil {
		return err
	}
	c.normalizeSync()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.RegistryDir) == "" {
		c.Paths.RegistryDir = defaultRegistryDir
	}
	if c.Paths.RegistryDir, err = expandPath(c.Paths.RegistryDir); err != nil {
		return fmt.Errorf("paths.registry_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.EdiblesPath, err = expandPath(strings.TrimSpace(c.Paths.EdiblesPath)); err != nil {
		return fmt.Errorf("paths.edibles_path: %w", err)
	}
	if c.Paths.DirectMapOut, err = expandPath(strings.TrimSpace(c.Paths.DirectMapOut)); err != nil {
		return fmt.Errorf("paths.direct_map_out: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() error {
	if c.Scan.Workers <= 0 {
		c.Scan.Workers = defaultScanWorkers
	}
	inputs := make([]string, 0, len(c.Scan.Inputs))
	for _, input := range c.Scan.Inputs {
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("scan.inputs: %w", err)
		}
		inputs = append(inputs, expanded)
	}
	c.Scan.Inputs = inputs
	c.Scan.ExtraFluidFields = dedupeStrings(c.Scan.ExtraFluidFields)
	return nil
}

func (c *Config) normalizeSync() {
	fields := dedupeStrings(c.Sync.ManualFields)
	// assigned_buffs is operator-owned no matter what the file says.
	hasBuffs := false
	for _, field := range fields {
		if field == "assigned_buffs" {
			hasBuffs = true
			break
		}
	}
	if !hasBuffs {
		fields = append([]string{"assigned_buffs"}, fields...)
	}
	c.Sync.ManualFields = fields
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func dedupeStrings(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := strings.TrimSpace(value)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}
