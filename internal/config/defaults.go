package config

const (
	defaultRadarrURL     = "http://localhost:7878"
	defaultRadarrTimeout = 30
	defaultKeepListPath  = "~/.local/share/prunarr/keep-list.json"
	defaultFilterGenre   = "Horror"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Radarr: Radarr{
			URL:            defaultRadarrURL,
			TimeoutSeconds: defaultRadarrTimeout,
		},
		KeepList: KeepList{
			Path: defaultKeepListPath,
		},
		Filter: Filter{
			Genre: defaultFilterGenre,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
