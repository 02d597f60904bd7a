package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the lead scoring service.
type Config struct {
	ArtifactDir  string
	HTTPPort     string
	GRPCPort     string
	Environment  string
	LogLevel     string
	OTLPEndpoint string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ArtifactDir:  getEnv("ARTIFACT_DIR", "./artifacts"),
		HTTPPort:     getEnv("HTTP_PORT", "8000"),
		GRPCPort:     getEnv("GRPC_PORT", "8090"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
