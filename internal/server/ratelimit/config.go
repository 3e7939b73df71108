package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadConfig reads limiter settings from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Trusted:         parseClientList(os.Getenv("RATE_LIMIT_TRUSTED")),
		Rules:           DefaultRules(),
	}
}

// DefaultRules bounds the routes the server registers. Reads fall through
// to the default limit.
func DefaultRules() []Rule {
	return []Rule{
		// Screening runs parse and score whole resume batches.
		{Pattern: "POST /analysis/create", Limit: 30, Window: time.Hour, Burst: 5},

		// Credential endpoints stay tight to slow down guessing.
		{Pattern: "POST /auth/signup", Limit: 20, Window: time.Minute, Burst: 5},
		{Pattern: "POST /auth/signin", Limit: 20, Window: time.Minute, Burst: 5},

		// Deletes share one budget per client across all analysis IDs.
		{Pattern: "DELETE /analysis/{id}", Limit: 100, Window: time.Minute, Burst: 10},

		// Liveness checks are never limited.
		{Pattern: "GET /health", Limit: 0},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseClientList parses a comma-separated list of client addresses that
// bypass the limiter.
func parseClientList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, entry := range strings.Split(list, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			result[entry] = true
		}
	}
	return result
}
