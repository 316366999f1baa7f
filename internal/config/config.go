package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	MongoHost        string
	MongoUser        string
	MongoPassword    string
	MongoDatabase    string // bucket: one database holds every scope
	MongoScope       string // collection-name prefix, e.g. profiles.user_data
	MongoExternal    bool   // MONGODB_NETWORK: resolve hosts through an SRV seed list
	MongoTLS         bool
	MongoURI         string // Optional full URI; overrides host/user/password/flags
	Port             string
	Environment      string // ENV: production, development, etc.
	AllowedOrigins   []string
	RedisURI         string // Empty disables the document cache
	CacheTTL         time.Duration
	RequireAuthToken bool // Refuse to start when service_auth:1 holds an empty token
	LogLevel         string
}

// Load reads configuration from the environment, falling back to defaults
// for anything unset. Malformed flags and durations are reported as errors.
func Load() (*Config, error) {
	external, err := parseBool("MONGODB_NETWORK", getEnv("MONGODB_NETWORK", "False"))
	if err != nil {
		return nil, err
	}
	useTLS, err := parseBool("MONGODB_TLS", getEnv("MONGODB_TLS", "True"))
	if err != nil {
		return nil, err
	}
	requireToken, err := parseBool("REQUIRE_AUTH_TOKEN", getEnv("REQUIRE_AUTH_TOKEN", "False"))
	if err != nil {
		return nil, err
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", cacheTTL)
	}

	return &Config{
		MongoHost:        getEnv("MONGODB_HOST", "localhost"),
		MongoUser:        getEnv("MONGODB_USER", "Administrator"),
		MongoPassword:    getEnv("MONGODB_PASSWORD", "password"),
		MongoDatabase:    getEnv("MONGODB_DATABASE", "sample_app"),
		MongoScope:       getEnv("MONGODB_SCOPE", "profiles"),
		MongoExternal:    external,
		MongoTLS:         useTLS,
		MongoURI:         getEnv("MONGODB_URI", ""),
		Port:             getEnv("PORT", "8080"),
		Environment:      strings.ToLower(strings.TrimSpace(getEnv("ENV", "development"))),
		AllowedOrigins:   parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		RedisURI:         getEnv("REDIS_URI", ""),
		CacheTTL:         cacheTTL,
		RequireAuthToken: requireToken,
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}, nil
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MaskedMongoURI returns the connection target with the password hidden, for logging.
func (c *Config) MaskedMongoURI() string {
	if c.MongoURI == "" {
		return fmt.Sprintf("%s@%s/%s (tls=%t, external=%t)", c.MongoUser, c.MongoHost, c.MongoDatabase, c.MongoTLS, c.MongoExternal)
	}
	at := strings.LastIndex(c.MongoURI, "@")
	scheme := strings.Index(c.MongoURI, "://")
	if at == -1 || scheme == -1 || scheme > at {
		return c.MongoURI
	}
	creds := c.MongoURI[scheme+3 : at]
	if idx := strings.Index(creds, ":"); idx != -1 {
		creds = creds[:idx] + ":***"
	}
	return c.MongoURI[:scheme+3] + creds + c.MongoURI[at:]
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseBool accepts y/yes/t/true/on/1 and n/no/f/false/off/0, case-insensitively.
func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%s: invalid boolean value %q", key, value)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
