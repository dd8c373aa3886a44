package config

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const configFilePath = "config.json"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	EnvProduction = "production"
)

type Config struct {
	Port           string `mapstructure:"port"`
	GinMode        string `mapstructure:"gin_mode"`
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	DataFile       string `mapstructure:"data_file"`
	ActivityDriver string `mapstructure:"activity_driver"`
	ActivityDSN    string `mapstructure:"activity_dsn"`
	CORSOrigins    string `mapstructure:"cors_origins"`
}

// field: default value
var defaults = map[string]interface{}{
	"port":            "8080",
	"gin_mode":        "",
	"app_env":         "dev",
	"log_level":       "info",
	"data_file":       "data/database.json",
	"activity_driver": DriverSQLite,
	"activity_dsn":    "file::memory:",
	"cors_origins":    "*",
}

// Load reads configuration from the environment and, when present,
// config.json in the working directory. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	for key, value := range defaults {
		v.SetDefault(key, value)
		v.BindEnv(key, strings.ToUpper(key))
	}

	if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
		return nil, errors.Wrap(err, "could not read config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.ActivityDriver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return errors.Errorf("unknown activity driver %q, expected sqlite, postgres or memory", c.ActivityDriver)
	}
	if c.DataFile == "" {
		return errors.New("missing required config field: data_file")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// AllowedOrigins splits the comma separated CORS_ORIGINS value
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	// SetConfigFile bypasses the search path, so a missing file surfaces as a
	// plain fs error instead.
	return errors.Is(err, fs.ErrNotExist)
}
