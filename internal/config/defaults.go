package config

const (
	defaultStorageBackend  = BackendFile
	defaultFileName        = "CDInventory.dat"
	defaultSQLiteFileName  = "CDInventory.db"
	defaultLogDir          = "~/.local/share/cdinventory/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultLogMaxSizeMB    = 5
	defaultLogMaxBackups   = 3
	defaultLogMaxAgeDays   = 30
	defaultConfigPathValue = "~/.config/cdinventory/config.toml"
	projectConfigFileName  = "cdinventory.toml"
	envStorageFile         = "CDINVENTORY_FILE"
	envStorageBackend      = "CDINVENTORY_BACKEND"
	logFileName            = "cdinventory.log"
)

// Default returns a Config populated with repository defaults. The storage
// path is left empty so normalization can pick a file name matching the
// selected backend.
func Default() Config {
	return Config{
		Storage: Storage{
			Backend: defaultStorageBackend,
		},
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
