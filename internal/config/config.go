// config описывает конфигурацию chirper-сервера и её загрузку.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
//
// После чтения файла поверх значений всегда накладываются переменные окружения.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config — корневая конфигурация сервиса.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	DB        DBConfig        `yaml:"db"`
	Auth      AuthConfig      `yaml:"auth"`
	Password  PasswordConfig  `yaml:"password"`
	Limits    LimitsConfig    `yaml:"limits"`
	Redis     RedisConfig     `yaml:"redis"`
	NATS      NATSConfig      `yaml:"nats"`
	S3        S3Config        `yaml:"s3"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// ExposeInternalErrors — отдавать ли клиенту текст внутренних ошибок (только local/dev).
func (c *Config) ExposeInternalErrors() bool {
	return c.Env == EnvLocal || c.Env == EnvDev
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host     string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"3001"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// DBConfig — подключение к PostgreSQL и параметры пула.
type DBConfig struct {
	URL             string        `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MaxConns        int32         `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"20"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" env-default:"30s"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT" env-default:"2s"`
}

// AuthConfig — параметры выпуска и проверки JWT.
// Access и refresh подписываются разными секретами и имеют разные audience.
type AuthConfig struct {
	AccessSecret    string        `yaml:"access_secret" env:"JWT_SECRET" env-required:"true"`
	RefreshSecret   string        `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET" env-required:"true"`
	AccessTTL       time.Duration `yaml:"access_ttl" env:"JWT_EXPIRES_IN" env-default:"168h"`
	RefreshTTL      time.Duration `yaml:"refresh_ttl" env:"JWT_REFRESH_EXPIRES_IN" env-default:"720h"`
	Issuer          string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"chirper"`
	AccessAudience  string        `yaml:"access_audience" env:"JWT_ACCESS_AUDIENCE" env-default:"chirper-users"`
	RefreshAudience string        `yaml:"refresh_audience" env:"JWT_REFRESH_AUDIENCE" env-default:"chirper-refresh"`
}

// PasswordConfig — стоимость argon2id.
type PasswordConfig struct {
	MemoryKiB   uint32 `yaml:"memory_kib" env:"ARGON2_MEMORY_KIB" env-default:"65536"`
	Iterations  uint32 `yaml:"iterations" env:"ARGON2_ITERATIONS" env-default:"3"`
	Parallelism uint8  `yaml:"parallelism" env:"ARGON2_PARALLELISM" env-default:"1"`
}

// LimitsConfig — границы пагинации.
type LimitsConfig struct {
	Default int `yaml:"default" env:"LIMIT_DEFAULT" env-default:"20"`
	Max     int `yaml:"max" env:"LIMIT_MAX" env-default:"100"`
}

// RedisConfig — кэш публичных профилей. Пустой URL отключает кэш.
type RedisConfig struct {
	URL    string        `yaml:"url" env:"REDIS_URL"`
	TTL    time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"5m"`
	Prefix string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"chirper:profile:"`
}

// NATSConfig — публикация доменных событий. Пустой URL отключает публикацию.
type NATSConfig struct {
	URL           string        `yaml:"url" env:"NATS_URL"`
	SubjectPrefix string        `yaml:"subject_prefix" env:"NATS_SUBJECT_PREFIX" env-default:"chirper"`
	MaxReconnects int           `yaml:"max_reconnects" env:"NATS_MAX_RECONNECTS" env-default:"10"`
	ReconnectWait time.Duration `yaml:"reconnect_wait" env:"NATS_RECONNECT_WAIT" env-default:"2s"`
}

// S3Config — объектное хранилище аватаров. Пустой Endpoint отключает загрузку аватаров.
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-default:"avatars"`
	AccessKey     string        `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey     string        `yaml:"secret_key" env:"S3_SECRET_KEY"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"15m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// AvatarConfig — ограничения на загружаемые аватары.
type AvatarConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"AVATAR_MAX_SIZE_BYTES" env-default:"5242880"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"AVATAR_ALLOWED_CONTENT_TYPES" env-default:"image/jpeg,image/png,image/webp"`
}

// CORSConfig — разрешённые источники браузерных запросов.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

// RateLimitConfig — ограничение частоты запросов к /auth/* по IP.
// AuthRequests <= 0 выключает ограничение.
type RateLimitConfig struct {
	AuthRequests int           `yaml:"auth_requests" env:"RATE_LIMIT_AUTH_REQUESTS" env-default:"20"`
	Window       time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// TimeoutConfig — общий дедлайн обработки запроса.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"15s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету источников (см. описание пакета).
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("invalid config %q: %w", p, err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) только ENV
	err := cleanenv.ReadEnv(&cfg)
	if err == nil {
		err = cfg.validate()
	}
	if err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}

// ErrInvalidConfig — обязательное поле пустое или значения противоречат друг другу.
var ErrInvalidConfig = errors.New("invalid config")

// validate проверяет то, что env-required не ловит: переменная задана, но пустая.
func (c *Config) validate() error {
	switch {
	case c.DB.URL == "":
		return fmt.Errorf("%w: db.url (DATABASE_URL) is empty", ErrInvalidConfig)
	case c.Auth.AccessSecret == "":
		return fmt.Errorf("%w: auth.access_secret (JWT_SECRET) is empty", ErrInvalidConfig)
	case c.Auth.RefreshSecret == "":
		return fmt.Errorf("%w: auth.refresh_secret (JWT_REFRESH_SECRET) is empty", ErrInvalidConfig)
	case c.Auth.AccessSecret == c.Auth.RefreshSecret:
		return fmt.Errorf("%w: access and refresh secrets must differ", ErrInvalidConfig)
	}

	return nil
}
