package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const minSecretLen = 32

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level      string
	JSON       bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type JWT struct {
	Secret   string
	TTLHours int
}

type DB struct {
	DSN string
}

type CORS struct {
	AllowedOrigins []string
}

type Config struct {
	App  App
	Log  Log
	JWT  JWT
	DB   DB
	CORS CORS
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTLHours) * time.Hour
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.HTTP.Host, c.App.HTTP.Port)
}

// Load reads the optional config file and APP_* environment overrides.
// The token secret is never a compiled-in literal; Validate rejects a
// missing or short one before the process serves a single request.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "leadcrm")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 5000)
	v.SetDefault("app.http.readtimeoutsec", 15)
	v.SetDefault("app.http.writetimeoutsec", 15)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("jwt.ttlhours", 24)
	v.SetDefault("db.dsn", "leadcrm.db")

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is empty (set APP_JWT_SECRET)")
	}
	if len(c.JWT.Secret) < minSecretLen {
		return fmt.Errorf("jwt secret must be at least %d bytes", minSecretLen)
	}
	if c.JWT.TTLHours <= 0 {
		return errors.New("jwt ttl must be positive")
	}
	if c.DB.DSN == "" {
		return errors.New("db dsn is empty")
	}
	return nil
}
