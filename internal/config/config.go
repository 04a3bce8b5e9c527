package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		Driver string
		DSN    string
	}
	Redis struct {
		Addr     string
		Password string
	}
	CacheTTL time.Duration
	Verbose  bool
}

// Load reads config from environment (SHOPTALK_ prefix) and optional
// shoptalk.yaml. A local .env file is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SHOPTALK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("shoptalk")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("verbose", false)

	cfg := &Config{}
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Verbose = v.GetBool("verbose")

	ttl, err := time.ParseDuration(v.GetString("cache.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHOPTALK_CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("SHOPTALK_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("SHOPTALK_DB_DSN is required")
	}

	return cfg, nil
}
