package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ComposeFile string      `mapstructure:"compose_file"`
	ConfDir     string      `mapstructure:"conf_dir"`
	Image       string      `mapstructure:"image"`
	Port        int         `mapstructure:"port"`
	Integration Integration `mapstructure:"integration"`
	Health      Health      `mapstructure:"health"`
}

type Integration struct {
	Name   string `mapstructure:"name"`
	Source string `mapstructure:"source"`
}

type Health struct {
	Interval time.Duration `mapstructure:"interval"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Retries  int           `mapstructure:"retries"`
}

func Load() (*Config, error) {
	cfg := &Config{
		ComposeFile: "docker-compose.yml",
		Port:        8123,
	}
	cfg.Integration.Name = "ducobox-connectivity-board"
	cfg.Integration.Source = "./custom_components/ducobox-connectivity-board"
	cfg.Health.Interval = 10 * time.Second
	cfg.Health.Timeout = 10 * time.Second
	cfg.Health.Retries = 30

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// conf_dir mirrors the HA_CONF_DIR variable the descriptor references;
	// the environment wins when the config file leaves it unset.
	if cfg.ConfDir == "" {
		cfg.ConfDir = os.Getenv("HA_CONF_DIR")
	}

	return cfg, nil
}
