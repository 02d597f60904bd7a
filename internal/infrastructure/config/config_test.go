package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asah-capstone-a25/leadscore/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "./artifacts", cfg.ArtifactDir)
	assert.Equal(t, ":8000", cfg.HTTPAddress())
	assert.Equal(t, ":8090", cfg.GRPCAddress())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ARTIFACT_DIR", "/opt/models/leadscore")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()

	assert.Equal(t, "/opt/models/leadscore", cfg.ArtifactDir)
	assert.Equal(t, ":9000", cfg.HTTPAddress())
	assert.Equal(t, ":9090", cfg.GRPCAddress())
	assert.Equal(t, "debug", cfg.LogLevel)
}
