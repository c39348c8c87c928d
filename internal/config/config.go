package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultListenAddr = "127.0.0.1:8080"
	defaultLogLevel   = "info"
	DefaultEnvFile    = ".env"

	EnvListenAddr = "LISTEN_ADDR"
	EnvLogLevel   = "LOG_LEVEL"
	EnvSecretPath = "SECRET_PATH"
	EnvCommand    = "COMMAND"
)

type Config struct {
	ListenAddr string
	LogLevel   log.Level
}

// Load reads the process-wide settings. It is called once at startup.
func Load() (*Config, error) {
	level, err := ParseLogLevel(getEnvOrDefault(EnvLogLevel, defaultLogLevel))
	if err != nil {
		return nil, err
	}

	return &Config{
		ListenAddr: parseListenAddr(os.Getenv(EnvListenAddr)),
		LogLevel:   level,
	}, nil
}

// ParseLogLevel parses a logrus level name.
func ParseLogLevel(value string) (log.Level, error) {
	level, err := log.ParseLevel(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", EnvLogLevel, err)
	}
	return level, nil
}

// LoadEnvFile loads variables from an env file into the process environment.
// Variables that are already set keep their value. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// parseListenAddr accepts only an ip:port literal and falls back to the
// default for anything else, hostnames included.
func parseListenAddr(value string) string {
	addr, err := netip.ParseAddrPort(value)
	if err != nil {
		return defaultListenAddr
	}
	return addr.String()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
