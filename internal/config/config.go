package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAppName     = "reed-jobs-mcp"
	DefaultReedBaseURL = "https://www.reed.co.uk/api/1.0"
	DefaultJobsBaseURL = "https://www.reed.co.uk/jobs"
)

type ReedConfig struct {
	APIKey            string        // Sent as the basic-auth username, may be empty
	BaseURL           string        // API root, e.g. https://www.reed.co.uk/api/1.0
	JobsBaseURL       string        // Public job pages, used for the URL lines
	RequestTimeout    time.Duration // Timeout for a single API request
	RequestsPerSecond float64       // Client-side limit, 0 means unlimited
	Burst             int
}

type LoggerConfig struct {
	Level  string
	Format string // "text" or "json"
	Color  bool
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type OpenRouterConfig struct {
	APIKey string
	Model  string
}

type MetricsConfig struct {
	Addr string // Empty disables the /metrics listener
}

// AppConfig is read once at startup and never mutated afterwards.
type AppConfig struct {
	AppName    string
	Reed       ReedConfig
	Logger     LoggerConfig
	FluentBit  FluentBitConfig
	OpenRouter OpenRouterConfig
	Metrics    MetricsConfig
}

// LoadConfig reads the configuration from environment variables.
// A missing REED_API_KEY is tolerated and sent as an empty username.
func LoadConfig() *AppConfig {
	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", DefaultAppName)

	cfg.Reed.APIKey = strings.TrimSpace(os.Getenv("REED_API_KEY"))
	cfg.Reed.BaseURL = strings.TrimRight(getEnvAsString("REED_API_BASE_URL", DefaultReedBaseURL), "/")
	cfg.Reed.JobsBaseURL = strings.TrimRight(getEnvAsString("REED_JOBS_BASE_URL", DefaultJobsBaseURL), "/")
	cfg.Reed.RequestTimeout = getEnvAsDuration("REED_REQUEST_TIMEOUT", 30*time.Second)
	cfg.Reed.RequestsPerSecond = getEnvAsFloat("REED_REQUESTS_PER_SECOND", 0)
	cfg.Reed.Burst = getEnvAsInt("REED_RATE_BURST", 1)

	cfg.Logger.Level = getEnvAsString("LOG_LEVEL", "info")
	cfg.Logger.Format = getEnvAsString("LOG_FORMAT", "text")
	cfg.Logger.Color = getEnvAsBool("LOG_COLOR", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.OpenRouter.APIKey = strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY"))
	cfg.OpenRouter.Model = getEnvAsString("OPENROUTER_MODEL", "openai/gpt-4o-mini")

	cfg.Metrics.Addr = strings.TrimSpace(os.Getenv("METRICS_ADDR"))

	return cfg
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvAsInt logs and falls back to the default when the value does not parse.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as float: %v. Using default value: %g\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(strings.TrimSpace(valStr))
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(valStr))
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}
