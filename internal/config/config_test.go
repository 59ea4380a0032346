package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{"offers_file":"offers.json","port":9090,"candidate_limit":5}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "offers.json", cfg.OffersFile)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.CandidateLimit)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "{bad"))
	assert.Error(t, err)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeCandidateLimit(t *testing.T) {
	cfg := Config{CandidateLimit: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_OffersFileMustExist(t *testing.T) {
	cfg := Config{OffersFile: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestFromEnv_OverridesFileValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("OFFERS_FILE", "/env/offers.json")

	cfg := Config{DatabaseURL: "postgres://file/db", OffersFile: "/file/offers.json"}
	cfg.FromEnv()

	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "/env/offers.json", cfg.OffersFile)
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{Port: 8080, OffersFile: "offers.json", CandidateLimit: 10})

	assert.Equal(t, 9090, merged.Port, "explicit values win over defaults")
	assert.Equal(t, "offers.json", merged.OffersFile)
	assert.Equal(t, 10, merged.CandidateLimit)
}
