package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"anvaya"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// URI builds connection string out of config values
func (c MongoCfg) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d/?maxPoolSize=%d", c.User, c.Password, c.Host, c.Port, c.MaxPoolSize)
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type ServerCfg struct {
	Port int `env:"PORT" envDefault:"3000"`
}

type Config struct {
	MongoCfg  MongoCfg
	RedisCfg  RedisCfg
	ServerCfg ServerCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}
