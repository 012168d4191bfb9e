package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// local store
	DataDirPath string `toml:"data_dir_path"`
	// remote mirror
	RedisHost string `toml:"redis_host"`
	RedisPort int    `toml:"redis_port"`
	// connectivity probe interval, seconds
	ConnCheckIntervalSec int `toml:"conn_check_interval_sec"`
	// requests per minute before rate limiting kicks in
	RateLimitPerMin int `toml:"rate_limit_per_min"`
}

// Secrets are never read from the TOML file, only from the environment.
type Secrets struct {
	RedisPassword string `env:"LIFTSYNC_REDIS_PASS"`
	SentryDSN     string `env:"SENTRY_DSN"`
	AdminUsername string `env:"LIFTSYNC_ADMIN_USERNAME"`
	AdminPassHash string `env:"LIFTSYNC_ADMIN_PASSWORD_HASH"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not present in %s", env, path)
	}

	if cfg.Environment == "" {
		cfg.Environment = env
	}

	return cfg, nil
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var secrets Secrets
	if err := envconfig.Process(ctx, &secrets); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &secrets, nil
}
