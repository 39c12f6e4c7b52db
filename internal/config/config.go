// Package config loads application configuration from environment variables.
package config

import "os"

// Config holds the runtime configuration. Each field corresponds to an
// environment variable; everything has a default so the demo deployment can
// start with no environment at all.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	JWTSecret  string // secret for verifying bearer tokens; empty disables token parsing
	DemoUserID string // identity used when no bearer token is presented
}

// Load reads configuration values from the environment.
func Load() Config {
	return Config{
		Env:        getenv("APP_ENV", "dev"),
		Port:       getenv("APP_PORT", "8080"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		DemoUserID: getenv("DEMO_USER_ID", "user-123"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
