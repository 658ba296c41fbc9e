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
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_url": "postgres://localhost/matcher",
		"embedding_model": "text-embedding-004",
		"top_n": 10,
		"cv_length": 2
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, 2, cfg.CVLength)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, 8, cfg.RankWorkers)
	assert.Equal(t, 1, cfg.CVLength)
	assert.Equal(t, 3, cfg.MaxProjectsPerCV)
	assert.True(t, cfg.IncludeProjects)
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := Defaults()
	assert.NoError(t, valid.Validate())

	negativeTopN := Defaults()
	negativeTopN.TopN = -1
	assert.Error(t, negativeTopN.Validate())

	negativeWorkers := Defaults()
	negativeWorkers.RankWorkers = -1
	assert.Error(t, negativeWorkers.Validate())

	badPort := Defaults()
	badPort.Port = 70000
	assert.Error(t, badPort.Validate())

	oddPages := Defaults()
	oddPages.CVLength = 5
	assert.NoError(t, oddPages.Validate(), "Page count is clamped downstream, not rejected")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://custom", TopN: 5}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "postgres://custom", merged.DatabaseURL, "Set values survive the merge")
	assert.Equal(t, 5, merged.TopN)
	assert.Equal(t, "text-embedding-004", merged.EmbeddingModel, "Unset values take defaults")
	assert.Equal(t, 8, merged.RankWorkers)
	assert.Equal(t, 8080, merged.Port)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := Config{APIKey: "file-key", DatabaseURL: "postgres://file"}
	cfg.ApplyEnv()

	assert.Equal(t, "env-key", cfg.APIKey, "Environment overrides file values")
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
}

func TestApplyEnv_UnsetKeepsFileValues(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Config{APIKey: "file-key", DatabaseURL: "postgres://file"}
	cfg.ApplyEnv()

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "postgres://file", cfg.DatabaseURL)
}
