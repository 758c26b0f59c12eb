package main

import (
	"os"

	"eventd/internal/config"
)

// cliConfig holds the process settings shared by all subcommands.
type cliConfig struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// defaultCLIConfig reads environment defaults; flags override them.
func defaultCLIConfig() *cliConfig {
	return &cliConfig{
		ConfigPath: envStr("EVENTD_CONFIG", config.DefaultPath),
		LogLevel:   envStr("EVENTD_LOG_LEVEL", "info"),
		LogFormat:  envStr("EVENTD_LOG_FORMAT", "console"),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
