package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"stumped/database"
)

// DefaultEpochDate is puzzle #1's date. Changing it after launch would
// reshuffle which puzzle every historical date maps to.
const DefaultEpochDate = "2026-01-15"

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Primary Discord guild ID

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Puzzle calendar configuration
	EpochDate string // date of puzzle index 0, YYYY-MM-DD

	// NATS configuration
	NATSServers       string        // NATS server addresses (comma-separated)
	ValidationSubject string        // request/reply subject for remote guess scoring
	ValidationTimeout time.Duration // how long to wait for the remote scorer

	// OpenTelemetry configuration
	OTelEnabled              bool
	OTelServiceName          string
	OTelExporterType         string // "console", "otlp" or "none"
	OTelOTLPEndpoint         string
	OTelExportIntervalMillis int

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			// In test environment, use a default test config instead of panicking
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				instance.DiscordToken = "test-token"
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// GetEpoch parses the configured epoch date as UTC midnight
func (c *Config) GetEpoch() (time.Time, error) {
	epoch, err := time.Parse("2006-01-02", c.EpochDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid EPOCH_DATE %q: %w", c.EpochDate, err)
	}
	return epoch, nil
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Puzzle calendar
		EpochDate: getEnvWithDefault("EPOCH_DATE", DefaultEpochDate),

		// NATS
		NATSServers:       getEnvWithDefault("NATS_SERVERS", "nats://nats:4222"),
		ValidationSubject: getEnvWithDefault("VALIDATION_SUBJECT", "stumped.scoring.validate"),
		ValidationTimeout: 2 * time.Second,

		// OpenTelemetry
		OTelServiceName:          getEnvWithDefault("OTEL_SERVICE_NAME", "stumped"),
		OTelExporterType:         getEnvWithDefault("OTEL_EXPORTER_TYPE", "none"),
		OTelOTLPEndpoint:         getEnvWithDefault("OTEL_OTLP_ENDPOINT", "localhost:4317"),
		OTelExportIntervalMillis: 60000,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	config.OTelEnabled = os.Getenv("OTEL_ENABLED") == "true"

	if timeoutMs := os.Getenv("VALIDATION_TIMEOUT_MS"); timeoutMs != "" {
		if parsed, err := strconv.Atoi(timeoutMs); err == nil && parsed > 0 {
			config.ValidationTimeout = time.Duration(parsed) * time.Millisecond
		}
	}
	if intervalMs := os.Getenv("OTEL_EXPORT_INTERVAL_MS"); intervalMs != "" {
		if parsed, err := strconv.Atoi(intervalMs); err == nil && parsed > 0 {
			config.OTelExportIntervalMillis = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		// If DatabaseName is provided, ensure it's not empty
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	if _, err := config.GetEpoch(); err != nil {
		return nil, err
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:       "test",
		EpochDate:         DefaultEpochDate,
		ValidationSubject: "stumped.scoring.validate",
		ValidationTimeout: 100 * time.Millisecond,
		OTelExporterType:  "none",
	}
}
