package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Store    StoreConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// StoreConfig selects and configures the durable key-value store.
type StoreConfig struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite database file
	DSN      string // postgres connection string
	MaxConns int32
}

// LLMConfig holds generative-capability configuration. An empty APIKey means
// the capability is not configured and extraction falls back to simulation.
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds extraction pipeline thresholds.
type PipelineConfig struct {
	QualityThreshold  int // escalate to the generative path below this score
	GenerativeTimeout time.Duration
	FormatsFile       string // optional YAML file with additional format definitions
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Driver:   getEnv("STORE_DRIVER", "sqlite"),
			Path:     getEnv("STORE_PATH", "./order-extractor.db"),
			DSN:      getEnv("DB_URL", ""),
			MaxConns: getEnvAsInt32("DB_MAX_CONNS", 10),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			QualityThreshold:  getEnvAsInt("QUALITY_THRESHOLD", 60),
			GenerativeTimeout: getEnvAsDuration("GENERATIVE_TIMEOUT", 60*time.Second),
			FormatsFile:       getEnv("FORMATS_FILE", ""),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return NewAppError("CONFIG_ERROR", "STORE_PATH is required for the sqlite driver", ErrInvalidInput)
		}
	case "postgres":
		if c.Store.DSN == "" {
			return NewAppError("CONFIG_ERROR", "DB_URL is required for the postgres driver", ErrInvalidInput)
		}
	default:
		return NewAppError("CONFIG_ERROR", "STORE_DRIVER must be sqlite or postgres", ErrInvalidInput)
	}
	if c.Pipeline.QualityThreshold < 0 || c.Pipeline.QualityThreshold > 100 {
		return NewAppError("CONFIG_ERROR", "QUALITY_THRESHOLD must be 0-100", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
