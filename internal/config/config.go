package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the campusmap service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP server (read API, health and metrics).
// - ProviderType: The geocoding provider for cities missing from the table (none, google, nominatim).
// - APIKey: The API key for the geocoding provider (required for Google).
// - Workers: The number of concurrent workers resolving missing cities.
// - RateLimit: Provider requests per second.
// - CacheTTL: How long provider results are cached; zero disables the cache.
// - StylingConfig: Optional path to the styling preset file.
// - RosterFile: Optional path to a JSON roster replacing the built-in one.
// - Database: Configuration settings for the optional PostgreSQL export.
type Config struct {
	Env           string         `yaml:"env"`              // Env is the current environment: local, development, production.
	Port          int            `yaml:"http.port"`        // Port is the HTTP server port.
	ProviderType  string         `yaml:"provider.type"`    // ProviderType specifies which geocoding provider to use.
	APIKey        string         `yaml:"provider.api_key"` // The API key for accessing the provider.
	Workers       int            `yaml:"provider.workers"` // The number of concurrent provider workers.
	RateLimit     int            `yaml:"provider.rate"`    // Provider requests per second.
	CacheTTL      time.Duration  `yaml:"provider.cache"`   // Lifetime of cached provider results.
	StylingConfig string         `yaml:"styling.config"`   // Path to the styling preset file.
	RosterFile    string         `yaml:"roster.file"`      // Path to a JSON roster file.
	Database      PostgresConfig `yaml:"postgres"`         // Database holds the postgres database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
}

// ExportEnabled reports whether the tables should be exported to PostgreSQL.
func (c *Config) ExportEnabled() bool {
	return c.Database.Host != ""
}

// MustLoad loads the configuration from the environment (and a .env file, if present).
// It panics if a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("CAMPUSMAP_HTTP_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for http server from configuration")
	}

	workers, err := strconv.Atoi(setDefaultEnv("CAMPUSMAP_WORKERS", "4"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	rateLimit, err := strconv.Atoi(setDefaultEnv("CAMPUSMAP_PROVIDER_RATE", "1"))
	if err != nil {
		panic("failed to parse provider rate limit from configuration, must be an integer types")
	}

	cacheTTL, err := time.ParseDuration(setDefaultEnv("CAMPUSMAP_CACHE_TTL", "1h"))
	if err != nil {
		panic("failed to parse cache ttl from configuration")
	}

	return &Config{
		Env:           setDefaultEnv("CAMPUSMAP_ENV", "production"),
		Port:          port,
		ProviderType:  setDefaultEnv("CAMPUSMAP_PROVIDER_TYPE", "none"),
		APIKey:        os.Getenv("CAMPUSMAP_PROVIDER_KEY"),
		Workers:       workers,
		RateLimit:     rateLimit,
		CacheTTL:      cacheTTL,
		StylingConfig: os.Getenv("CAMPUSMAP_STYLING_CONFIG"),
		RosterFile:    os.Getenv("CAMPUSMAP_ROSTER_FILE"),
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     setDefaultEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
