package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDBPath = "user_data.db"

	EnvDBPath  = "DTIMER_DB_PATH"
	EnvLogFile = "DTIMER_LOG_FILE"
)

type Config struct {
	DBPath    string `yaml:"db_path"`
	LogFile   string `yaml:"log_file"`
	NightMode bool   `yaml:"night_mode"`
}

// Overrides carries values set explicitly on the command line. Empty fields
// leave lower-precedence values in place.
type Overrides struct {
	DBPath  string
	LogFile string
}

func Default() Config {
	return Config{DBPath: DefaultDBPath}
}

// Load resolves the configuration: defaults, then the optional YAML file,
// then the environment (a .env file in the working directory is read if
// present), then overrides.
func Load(configPath string, overrides Overrides) (Config, error) {
	cfg := Default()

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}

	if overrides.DBPath != "" {
		cfg.DBPath = overrides.DBPath
	}
	if overrides.LogFile != "" {
		cfg.LogFile = overrides.LogFile
	}

	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("db path is required")
	}
	return cfg, nil
}
