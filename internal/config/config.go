package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Хранилище
	DatabaseDSN string `env:"DATABASE_URI"`
	SQLitePath  string `env:"SQLITE_PATH"`

	// Авторизация
	AuthSecret      string        `env:"AUTH_SECRET"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL"`

	// Redis для refresh-сессий (опционально)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	// HTTP
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	ServerURL   string `env:"-"`

	LogLevel string `env:"LOG_LEVEL"`
}

const (
	defaultBaseURL         = "localhost:3000"
	defaultAuthSecret      = "dev-secret-key"
	defaultSQLitePath      = "catalog.db"
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к Postgres (пусто — SQLite)")
	flag.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "путь к файлу SQLite, если DATABASE_URI не задан")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.AccessTokenTTL, "access-ttl", cfg.AccessTokenTTL, "время жизни access токена")
	flag.DurationVar(&cfg.RefreshTokenTTL, "refresh-ttl", cfg.RefreshTokenTTL, "время жизни refresh токена")
	flag.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "адрес Redis для refresh-сессий (host:port)")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера в формате host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = defaultSQLitePath
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.RefreshTokenTTL <= 0 {
		cfg.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}
