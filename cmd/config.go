package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DBConfig is shared by every binary that talks to PostgreSQL.
type DBConfig struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Config struct {
	DBConfig

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	JWTSecret      string   `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer      string   `env:"JWT_ISSUER"`
	AdminUsernames []string `env:"ADMIN_USERNAMES" envSeparator:","`

	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"orders"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`

	UnassignedReportSchedule string `env:"UNASSIGNED_REPORT_SCHEDULE"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads .env from the working directory when present, then parses
// the process environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}

	admins := cfg.AdminUsernames[:0]
	for _, u := range cfg.AdminUsernames {
		if u = strings.TrimSpace(u); u != "" {
			admins = append(admins, u)
		}
	}
	cfg.AdminUsernames = admins

	return cfg, nil
}

// LoadDBConfig is LoadConfig for tools that only need the database.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := parseEnv(&cfg); err != nil {
		return DBConfig{}, err
	}
	return cfg, nil
}

func parseEnv(target any) error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DSN is the libpq connection string for gorm's postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
