package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")
	cfg := Load()
	if cfg.LogLevel != zerolog.InfoLevel || cfg.LogFormat != "console" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "JSON")
	cfg := Load()
	if cfg.LogLevel != zerolog.DebugLevel || cfg.LogFormat != "json" {
		t.Fatalf("env not applied %+v", cfg)
	}
}

func TestLoadIgnoresBadLevel(t *testing.T) {
	t.Setenv(envLogLevel, "loud")
	if cfg := Load(); cfg.LogLevel != zerolog.InfoLevel {
		t.Fatalf("want info got %v", cfg.LogLevel)
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := Config{LogLevel: zerolog.InfoLevel, LogFormat: "json"}.Logger(&buf)
	log.Debug().Msg("hidden")
	log.Info().Int("distance", 5).Msg("done")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"distance":5`) {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestLookup(t *testing.T) {
	t.Setenv("GRIDWALK_TEST_KEY", "x")
	if got := Lookup("GRIDWALK_TEST_KEY", "y"); got != "x" {
		t.Fatalf("want x got %s", got)
	}
	if got := Lookup("GRIDWALK_TEST_MISSING", "y"); got != "y" {
		t.Fatalf("want y got %s", got)
	}
}
