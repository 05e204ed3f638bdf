// Package config holds the server configuration: compiled-in defaults
// overridden by FITCOACH_* environment variables. A .env file, when
// present, is loaded by the caller before Load runs.
package config

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Log        LogConfig
	Classifier ClassifierConfig
}

type ServerConfig struct {
	Port        int
	APIToken    string   // empty disables bearer auth
	CORSOrigins []string // empty disables CORS
}

type StorageConfig struct {
	DataDir string // ":memory:" keeps everything in-process
}

type LogConfig struct {
	Level string // debug, info, warn, error
}

type ClassifierConfig struct {
	TrainOnStart bool
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4000,
		},
		Storage: StorageConfig{
			DataDir: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
		},
		Classifier: ClassifierConfig{
			TrainOnStart: true,
		},
	}
}

// Load builds the config from defaults and environment overrides.
func Load() (Config, error) {
	cfg := defaults()
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
