package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultMaxUploadBytes = 10 << 20
)

type Config struct {
	ProjectID      string
	StorageBucket  string
	LogLevel       string
	Port           string
	AllowedOrigins []string
	MaxUploadBytes int64
	Timezone       string
	// Location calendar dates in entry filters are interpreted in.
	Location *time.Location
}

// New reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:      os.Getenv("PROJECTID"),
		StorageBucket:  os.Getenv("STORAGEBUCKET"),
		LogLevel:       os.Getenv("LOGLEVEL"),
		Port:           getOr("PORT", defaultPort),
		AllowedOrigins: splitList(os.Getenv("ALLOWEDORIGINS")),
		MaxUploadBytes: getInt64("MAXUPLOADBYTES", defaultMaxUploadBytes),
		Timezone:       os.Getenv("TIMEZONE"),
		Location:       getLocation(os.Getenv("TIMEZONE")),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate reports settings that New could only replace with a fallback.
func (c *Config) Validate() error {
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
		}
	}
	return nil
}
