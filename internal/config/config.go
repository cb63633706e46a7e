package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	FriendLimit       int           `env:"FITNESS_FRIEND_LIMIT" envDefault:"10"`
	ChallengeCapacity int           `env:"FITNESS_CHALLENGE_CAPACITY" envDefault:"10"`
	MaxRecords        int           `env:"FITNESS_MAX_RECORDS" envDefault:"1024"`
	RedisAddr         string        `env:"FITNESS_REDIS_ADDR"`
	RecommendationTTL time.Duration `env:"FITNESS_RECOMMENDATION_TTL" envDefault:"10m"`
	JWTSecret         string        `env:"FITNESS_JWT_SECRET" envDefault:"dev-secret"`
	SessionTTL        time.Duration `env:"FITNESS_SESSION_TTL" envDefault:"1h"`
	LogLevel          slog.Level    `env:"FITNESS_LOG_LEVEL" envDefault:"info"`
	MetricsFile       string        `env:"FITNESS_METRICS_FILE"`
}

// NewConfig loads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FriendLimit < 0 || cfg.ChallengeCapacity < 0 {
		return nil, fmt.Errorf("capacity limits must not be negative: friends=%d challenge=%d",
			cfg.FriendLimit, cfg.ChallengeCapacity)
	}
	return &cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
