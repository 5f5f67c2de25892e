package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is resolved once at process start and passed by value from there on.
type Config struct {
	HTTPAddr           string
	PostgresDSN        string
	DBMaxConns         int32
	DBQueryTimeout     time.Duration
	DBConnectAttempts  int
	QueueMaxAttempts   int
	Location           *time.Location
	StrictTransitions  bool
	GRPCHealthAddr     string
	HealthPollInterval time.Duration
	LogLevel           string
	GinMode            string
}

func defaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("POSTGRES_DSN", "postgres://postgres@localhost:5432/stallqueue?sslmode=disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("QUEUE_MAX_ATTEMPTS", 3)
	v.SetDefault("STALL_TIMEZONE", "Local")
	v.SetDefault("STRICT_STATUS_TRANSITIONS", false)
	v.SetDefault("GRPC_HEALTH_ADDR", "")
	v.SetDefault("HEALTH_POLL_INTERVAL", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	loc, err := time.LoadLocation(v.GetString("STALL_TIMEZONE"))
	if err != nil {
		return Config{}, fmt.Errorf("STALL_TIMEZONE: %w", err)
	}

	cfg := Config{
		HTTPAddr:           v.GetString("HTTP_ADDR"),
		PostgresDSN:        v.GetString("POSTGRES_DSN"),
		DBMaxConns:         v.GetInt32("DB_MAX_CONNS"),
		DBQueryTimeout:     v.GetDuration("DB_QUERY_TIMEOUT"),
		DBConnectAttempts:  v.GetInt("DB_CONNECT_ATTEMPTS"),
		QueueMaxAttempts:   v.GetInt("QUEUE_MAX_ATTEMPTS"),
		Location:           loc,
		StrictTransitions:  v.GetBool("STRICT_STATUS_TRANSITIONS"),
		GRPCHealthAddr:     v.GetString("GRPC_HEALTH_ADDR"),
		HealthPollInterval: v.GetDuration("HEALTH_POLL_INTERVAL"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		GinMode:            v.GetString("GIN_MODE"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR is required"))
	}
	if c.PostgresDSN == "" {
		errs = append(errs, errors.New("POSTGRES_DSN is required"))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be positive"))
	}
	if c.DBQueryTimeout <= 0 {
		errs = append(errs, errors.New("DB_QUERY_TIMEOUT must be positive"))
	}
	if c.DBConnectAttempts <= 0 {
		errs = append(errs, errors.New("DB_CONNECT_ATTEMPTS must be positive"))
	}
	if c.QueueMaxAttempts <= 0 {
		errs = append(errs, errors.New("QUEUE_MAX_ATTEMPTS must be positive"))
	}
	if c.GRPCHealthAddr != "" && c.HealthPollInterval <= 0 {
		errs = append(errs, errors.New("HEALTH_POLL_INTERVAL must be positive"))
	}
	return errors.Join(errs...)
}

// Today returns the stall-local calendar day as YYYY-MM-DD.
func (c Config) Today(now time.Time) string {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(time.DateOnly)
}
