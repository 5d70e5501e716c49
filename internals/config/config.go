package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Database struct {
		SQLitePath string `yaml:"sqlite_path" env:"TASKMAN_DB_PATH" env-default:"tasks.db"`
	} `yaml:"database"`

	Snapshot struct {
		Dir string `yaml:"dir" env:"TASKMAN_SNAPSHOT_DIR" env-default:"."`
	} `yaml:"snapshot"`

	Log struct {
		Debug bool `yaml:"debug" env:"DEBUG" env-default:"false"`
	} `yaml:"log"`
}

// MustLoad reads configuration from the given path, falling back to the
// CONFIG_PATH environment variable and finally to environment variables
// with defaults when no file is configured.
func MustLoad(configPath string) *Config {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("Failed to read config from environment: %v", err)
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file does not exist: %s", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	return &cfg
}
