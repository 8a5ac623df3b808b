package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=168h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	MigrationsDir string `env:"MIGRATIONS_DIR, default=migrations"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Login    LoginConfig
}

type PostgresConfig struct {
	Host        string        `env:"DB_HOST,          default=localhost"`
	Port        string        `env:"DB_PORT,          default=5432"`
	User        string        `env:"DB_USER,          default=postgres"`
	Password    string        `env:"DB_PASSWORD"`
	Name        string        `env:"DB_NAME,          default=roster"`
	SSLMode     string        `env:"DB_SSLMODE,       default=disable"`
	MaxConns    int32         `env:"DB_MAX_CONNS,     default=10"`
	MinConns    int32         `env:"DB_MIN_CONNS,     default=2"`
	MaxConnLife time.Duration `env:"DB_MAX_CONN_LIFE, default=1h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LoginConfig struct {
	MaxAttempts int64         `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// DSN renders the Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
// The JWT secret is validated here: the signing key is process-wide state and
// a missing key is a fatal configuration error, not a request-level failure.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
