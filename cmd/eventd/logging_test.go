package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("warn", "json", &buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if log.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("level=%v", log.GetLevel())
	}
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("DEBUG", "console", &buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	log.Debug().Msg("hello")
	if !strings.Contains(buf.String(), "hello") || strings.Contains(buf.String(), `"message"`) {
		t.Fatalf("unexpected console output: %q", buf.String())
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	if _, err := newLogger("loud", "json", &bytes.Buffer{}); err == nil {
		t.Fatal("expected invalid level error")
	}
	if _, err := newLogger("info", "xml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected invalid format error")
	}
}
