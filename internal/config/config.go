package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Драйверы хранилища команд
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server   ServerConfig   // Настройки HTTP сервера
	Database DatabaseConfig // Настройки подключения к БД
	JWT      JWTConfig      // Настройки JWT авторизации
	NATS     NATSConfig     // Настройки публикации событий
	Team     TeamConfig     // Ограничения команд
	CORS     CORSConfig     // Настройки CORS
	Storage  StorageConfig  // Выбор хранилища
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"team_dao"`
	Password string `envconfig:"DB_PASSWORD" default:"team_dao_pass"`
	Name     string `envconfig:"DB_NAME" default:"team_dao"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`
}

// JWTConfig содержит настройки JWT авторизации
type JWTConfig struct {
	Secret          string `envconfig:"JWT_SECRET" required:"true"`
	ExpirationHours int    `envconfig:"JWT_EXPIRATION_HOURS" default:"24"`
}

// NATSConfig содержит настройки подключения к NATS.
// Пустой URL означает запись событий в лог.
type NATSConfig struct {
	URL           string        `envconfig:"NATS_URL"`
	SubjectPrefix string        `envconfig:"NATS_SUBJECT_PREFIX" default:"teamdao"`
	MaxReconnects int           `envconfig:"NATS_MAX_RECONNECTS" default:"-1"`
	ReconnectWait time.Duration `envconfig:"NATS_RECONNECT_WAIT" default:"2s"`
}

// TeamConfig содержит ограничения команд
type TeamConfig struct {
	MaxSize int `envconfig:"TEAM_MAX_SIZE" default:"5"`
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// StorageConfig определяет хранилище команд и счетов.
// SeedBalances пополняет кошельки при старте in-memory хранилища ("alice:100,bob:50").
type StorageConfig struct {
	Driver       string           `envconfig:"STORAGE_DRIVER" default:"postgres"`
	SeedBalances map[string]int64 `envconfig:"STORAGE_SEED_BALANCES"`
}

// GetExpiration возвращает срок действия токена как time.Duration
func (j JWTConfig) GetExpiration() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Enabled сообщает, настроена ли публикация в NATS
func (n NATSConfig) Enabled() bool {
	return n.URL != ""
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	// Переменные окружения имеют приоритет над .env
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: expected %s or %s", c.Storage.Driver, StorageDriverPostgres, StorageDriverMemory)
	}

	for account, amount := range c.Storage.SeedBalances {
		if amount <= 0 {
			return fmt.Errorf("invalid STORAGE_SEED_BALANCES entry %q: amount must be positive", account)
		}
	}

	if c.Team.MaxSize < 0 {
		return fmt.Errorf("invalid TEAM_MAX_SIZE %d: must not be negative", c.Team.MaxSize)
	}
	return nil
}
