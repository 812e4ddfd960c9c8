package config

const (
	defaultStateDir       = "~/.local/share/subjectid"
	defaultLogDir         = "~/.local/share/subjectid/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultMaxNames       = 10000
	defaultMaxFileSizeMiB = 50
	defaultMethod         = "md5"
	defaultCSVDelimiter   = ","
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Limits: Limits{
			MaxNames:       defaultMaxNames,
			MaxFileSizeMiB: defaultMaxFileSizeMiB,
		},
		Generate: Generate{
			DefaultMethod: defaultMethod,
			CSVDelimiter:  defaultCSVDelimiter,
		},
		Auth: Auth{
			Enabled: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
