package config

const (
	defaultHistoryDir = "~/.local/share/rewav"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultKeepRuns   = 50
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Folder:     ".",
		NumThreads: 0,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled:  true,
			Dir:      defaultHistoryDir,
			KeepRuns: defaultKeepRuns,
		},
	}
}
