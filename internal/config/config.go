package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingDSN = errors.New("POSTGRES_DSN is not set")

type Config struct {
	PostgresDSN            string
	HTTPAddr               string
	ParametersFetchTimeout time.Duration
	ViewIdleTTL            time.Duration
	DBMaxOpenConns         int
	DBMaxIdleConns         int
	DBConnMaxLifetime      time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		PostgresDSN: getenv("POSTGRES_DSN"),
		HTTPAddr:    getString(getenv, "HTTP_ADDR", ":8080"),
	}
	if cfg.PostgresDSN == "" {
		return Config{}, ErrMissingDSN
	}

	var err error
	if cfg.ParametersFetchTimeout, err = getDuration(getenv, "PARAMETERS_FETCH_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ViewIdleTTL, err = getDuration(getenv, "VIEW_IDLE_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxOpenConns, err = getInt(getenv, "DB_MAX_OPEN_CONNS", 20); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxIdleConns, err = getInt(getenv, "DB_MAX_IDLE_CONNS", 10); err != nil {
		return Config{}, err
	}
	if cfg.DBConnMaxLifetime, err = getDuration(getenv, "DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getString(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, v)
	}
	return d, nil
}

func getInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, v)
	}
	return n, nil
}
