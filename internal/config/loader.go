package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"dqx0.com/go/minirouter/internal/obs"
)

// Config captures environment driven configuration values for the router process.
type Config struct {
	Host            string
	Port            int
	LogLevel        obs.Level
	ReadTimeout     time.Duration
	MaxRequestBytes int
	// AdminTokenHash is an argon2id hash; empty disables the admin routes.
	AdminTokenHash string
}

// Addr joins Host and Port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load parses configuration values from the current process environment.
//
// Unset variables keep their defaults. Every invalid value is reported in
// a single error.
func Load() (Config, error) {
	cfg := Config{
		Host:            "localhost",
		Port:            4221,
		LogLevel:        obs.Info,
		MaxRequestBytes: 64 << 10,
	}

	invalid := make([]string, 0, 4)

	if host := strings.TrimSpace(os.Getenv("MINIROUTER_HOST")); host != "" {
		cfg.Host = host
	}

	if portValue := strings.TrimSpace(os.Getenv("MINIROUTER_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 || port > 65535 {
			invalid = append(invalid, "MINIROUTER_PORT")
		} else {
			cfg.Port = port
		}
	}

	if levelValue := os.Getenv("MINIROUTER_LOG_LEVEL"); strings.TrimSpace(levelValue) != "" {
		level, ok := obs.ParseLevel(levelValue)
		if !ok {
			invalid = append(invalid, "MINIROUTER_LOG_LEVEL")
		} else {
			cfg.LogLevel = level
		}
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("MINIROUTER_READ_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout < 0 {
			invalid = append(invalid, "MINIROUTER_READ_TIMEOUT")
		} else {
			cfg.ReadTimeout = timeout
		}
	}

	if sizeValue := strings.TrimSpace(os.Getenv("MINIROUTER_MAX_REQUEST_BYTES")); sizeValue != "" {
		size, err := strconv.Atoi(sizeValue)
		if err != nil || size <= 0 {
			invalid = append(invalid, "MINIROUTER_MAX_REQUEST_BYTES")
		} else {
			cfg.MaxRequestBytes = size
		}
	}

	cfg.AdminTokenHash = strings.TrimSpace(os.Getenv("MINIROUTER_ADMIN_TOKEN_HASH"))

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("config: invalid environment values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
