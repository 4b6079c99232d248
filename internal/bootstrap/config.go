package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	RedisUrl        string `mapstructure:"REDIS_URL"`
	MongoUri        string `mapstructure:"MONGO_URI"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	IsLocalCors     bool   `mapstructure:"LOCAL_CORS"`
	AIDepth         int    `mapstructure:"AI_DEPTH"`
	AIMaxNodes      int64  `mapstructure:"AI_MAX_NODES"`
	AITimeoutMs     int    `mapstructure:"AI_TIMEOUT_MS"`
	AIWorkers       int    `mapstructure:"AI_WORKERS"`
	AIUseBook       bool   `mapstructure:"AI_USE_BOOK"`
	MoveCacheTTLSec int    `mapstructure:"MOVE_CACHE_TTL_SEC"`
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutMs) * time.Millisecond
}

func (c *Config) MoveCacheTTL() time.Duration {
	return time.Duration(c.MoveCacheTTLSec) * time.Second
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "gomoku")
	v.SetDefault("LOCAL_CORS", false)
	v.SetDefault("AI_DEPTH", 2)
	v.SetDefault("AI_MAX_NODES", 0)
	v.SetDefault("AI_TIMEOUT_MS", 0)
	v.SetDefault("AI_WORKERS", 1)
	v.SetDefault("AI_USE_BOOK", true)
	v.SetDefault("MOVE_CACHE_TTL_SEC", 600)
}

// Setup reads the .env style file at cfgPath. Environment variables override
// it, and a missing file leaves the defaults in place.
func Setup(cfgPath string) (*Config, error) {
	return Load(viper.New(), cfgPath)
}

func Load(v *viper.Viper, cfgPath string) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")
		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AIDepth < 1 {
		cfg.AIDepth = 1
	}
	if cfg.AIWorkers < 1 {
		cfg.AIWorkers = 1
	}

	return &cfg, nil
}
