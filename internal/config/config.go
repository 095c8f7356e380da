// Package config загружает настройки сервера и клиента из файла и переменных
// окружения с префиксом AGENDASYNC_.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения: AGENDASYNC_JWT_SECRET и т.д.
const EnvPrefix = "AGENDASYNC"

// Log настройки логирования
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // text | json
	File       string `mapstructure:"file"`   // пусто - только stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Database настройки хранилища сервера
type Database struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	DSN    string `mapstructure:"dsn"`
}

// JWT настройки токенов
type JWT struct {
	Secret     string        `mapstructure:"secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
}

// RateLimit ограничение частоты входа и вступления в группы
type RateLimit struct {
	RedisURL string        `mapstructure:"redis_url"` // пусто - лимит в памяти процесса
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Server конфигурация сервера
type Server struct {
	Log             Log           `mapstructure:"log"`
	Database        Database      `mapstructure:"database"`
	JWT             JWT           `mapstructure:"jwt"`
	JoinRateLimit   RateLimit     `mapstructure:"join_rate_limit"`
	Addr            string        `mapstructure:"addr"`
	AdminKey        string        `mapstructure:"admin_key"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Client конфигурация клиента
type Client struct {
	Log              Log           `mapstructure:"log"`
	ServerURL        string        `mapstructure:"server_url"`
	DBPath           string        `mapstructure:"db_path"`
	AdminKey         string        `mapstructure:"admin_key"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	AutoSyncInterval time.Duration `mapstructure:"autosync_interval"`
	AutoSync         bool          `mapstructure:"autosync"`
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return v, nil
}

func setLogDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// LoadServer читает конфигурацию сервера. path может быть пустым
func LoadServer(path string) (*Server, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	setLogDefaults(v)
	v.SetDefault("addr", ":8080")
	v.SetDefault("admin_key", "")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "agendasync.db")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 30*24*time.Hour)
	v.SetDefault("join_rate_limit.redis_url", "")
	v.SetDefault("join_rate_limit.requests", 10)
	v.SetDefault("join_rate_limit.window", time.Minute)

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные поля
func (c *Server) Validate() error {
	var errs []error
	if len(c.JWT.Secret) < 16 {
		errs = append(errs, errors.New("jwt.secret must be at least 16 characters"))
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	if c.JoinRateLimit.Requests <= 0 || c.JoinRateLimit.Window <= 0 {
		errs = append(errs, errors.New("join_rate_limit requests and window must be positive"))
	}
	return errors.Join(errs...)
}

func setClientDefaults(v *viper.Viper) {
	setLogDefaults(v)
	v.SetDefault("log.level", "warn")
	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("db_path", "agendasync-client.db")
	v.SetDefault("admin_key", "")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("autosync_interval", 120*time.Second)
	v.SetDefault("autosync", true)
}

func decodeClient(v *viper.Viper) (*Client, error) {
	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode client config: %w", err)
	}
	if cfg.ServerURL == "" {
		return nil, errors.New("server_url is required")
	}
	return &cfg, nil
}

// LoadClient читает конфигурацию клиента. path может быть пустым
func LoadClient(path string) (*Client, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	setClientDefaults(v)
	return decodeClient(v)
}
