package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed values leave the current field untouched.
//
// Recognized variables:
//
//	ADDRESS                       HTTP bind address (e.g. ":8080")
//	DATABASE_URL                  PostgreSQL DSN
//	SECRET_KEY                    JWT HMAC secret
//	ACCESS_TOKEN_EXPIRE_MINUTES   access token lifetime, minutes
//	SEED_DEMO_DATA                "1"/"true" to seed demo data at startup
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("SEED_DEMO_DATA"); v != "" {
		config.SeedDemoData = v == "1" || v == "true" || v == "True"
	}
}
