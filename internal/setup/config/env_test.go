package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# local settings\nexport DECISION_TEST_PORT=9090\nDECISION_TEST_URI=\"mongodb://db:27017\"\nDECISION_TEST_KEEP=file\nbroken line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DECISION_TEST_KEEP", "env")
	t.Cleanup(func() {
		os.Unsetenv("DECISION_TEST_PORT")
		os.Unsetenv("DECISION_TEST_URI")
	})

	LoadEnvFile(path)

	assert.Equal(t, "9090", os.Getenv("DECISION_TEST_PORT"))
	assert.Equal(t, "mongodb://db:27017", os.Getenv("DECISION_TEST_URI"))
	assert.Equal(t, "env", os.Getenv("DECISION_TEST_KEEP"))
}

func TestLoadEnvFile_MissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("REPORT_TTL", "90")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 90*time.Second, cfg.ReportTTL)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("REPORT_TTL", "tomorrow")

	assert.Equal(t, 24*time.Hour, Load().ReportTTL)
}
