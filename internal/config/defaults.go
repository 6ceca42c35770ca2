package config

const (
	defaultRegistryDir = "~/.local/share/tfoods/registry"
	defaultLogDir      = "~/.local/share/tfoods/logs"
	defaultScanWorkers = 4
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RegistryDir: defaultRegistryDir,
			LogDir:      defaultLogDir,
		},
		Scan: Scan{
			Workers: defaultScanWorkers,
		},
		Sync: Sync{
			IncludeIngredientNodes: true,
			ManualFields:           []string{"assigned_buffs"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
