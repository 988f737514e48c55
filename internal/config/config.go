package config

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by the command line programs.

type Config struct {
	LogLevel  zerolog.Level
	LogFormat string // "console" or "json"
}

const (
	envLogLevel  = "GRIDWALK_LOG_LEVEL"
	envLogFormat = "GRIDWALK_LOG_FORMAT"
)

// Load reads an optional .env file and then the environment.
func Load() Config {
	_ = godotenv.Load()
	cfg := Config{LogLevel: zerolog.InfoLevel, LogFormat: "console"}
	if lvl, err := zerolog.ParseLevel(Lookup(envLogLevel, "info")); err == nil {
		cfg.LogLevel = lvl
	}
	if f := strings.ToLower(Lookup(envLogFormat, "console")); f == "json" {
		cfg.LogFormat = f
	}
	return cfg
}

// Logger builds a logger writing to w.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if c.LogFormat != "json" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}
	return zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
}

func Lookup(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
