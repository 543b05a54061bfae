package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                   string
	MongoURI               string
	MongoDatabase          string
	WorkspaceMongoDatabase string
	RedisURL               string
	SecretJWT              string
	LogLevel               string
	LogFormat              string
	AllowedOrigins         []string
	ReportTTL              time.Duration
}

// LoadEnvFile exports KEY=VALUE pairs from path without overriding variables that
// are already set. A missing file is not an error.
func LoadEnvFile(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, value)
	}

	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error reading env file")
	}
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		MongoURI:               getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:          getEnv("MONGO_DATABASE", "decision"),
		WorkspaceMongoDatabase: getEnv("WORKSPACE_MONGO_DATABASE", "workspace"),
		RedisURL:               getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SecretJWT:              os.Getenv("SECRET_JWT"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		AllowedOrigins:         splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		ReportTTL:              getDuration("REPORT_TTL", 24*time.Hour),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDuration accepts Go durations ("90s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
