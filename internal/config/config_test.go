package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTemp(t, "app:\n  port: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, 1800, cfg.Refresh.IntervalSeconds)
	assert.Equal(t, 30, cfg.Refresh.SourceTimeoutSeconds)
	assert.Equal(t, []string{"us", "gb", "au", "ca"}, cfg.Sources.Adzuna.Countries)
	assert.InDelta(t, 0.7, cfg.Matching.SemanticWeight, 1e-9)
	assert.InDelta(t, 0.3, cfg.Matching.KeywordWeight, 1e-9)
	assert.InDelta(t, 0.1, cfg.Matching.RelevanceFloor, 1e-9)
	assert.Equal(t, 20, cfg.Matching.MaxResults)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	path := writeTemp(t, `
app:
  port: 9100
matching:
  semantic_weight: 0.5
  keyword_weight: 0.5
  max_results: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.App.Port)
	assert.InDelta(t, 0.5, cfg.Matching.SemanticWeight, 1e-9)
	assert.Equal(t, 10, cfg.Matching.MaxResults)
}

func TestNormalizeAndValidate(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()
	cfg.Sources.Adzuna.Enabled = true
	cfg.Sources.Adzuna.Countries = []string{" US ", "us", "gb"}

	out, vr := NormalizeAndValidate(cfg)
	assert.True(t, vr.OK(), "errors: %v", vr.Errors)
	assert.Equal(t, []string{"us", "gb"}, out.Sources.Adzuna.Countries)
}

func TestValidateRejectsBadPort(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()
	cfg.App.Port = 70000

	_, vr := NormalizeAndValidate(cfg)
	require.False(t, vr.OK())
	assert.Contains(t, vr.Errors[0], "app.port")
}

func TestValidateWarnsOnSkewedWeights(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()
	cfg.Matching.SemanticWeight = 0.9
	cfg.Matching.KeywordWeight = 0.4

	_, vr := NormalizeAndValidate(cfg)
	assert.True(t, vr.OK())
	assert.NotEmpty(t, vr.Warnings)
}

func TestValidateRejectsUnknownEmbeddingsProvider(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()
	cfg.Embeddings.Provider = "cohere"

	_, vr := NormalizeAndValidate(cfg)
	assert.False(t, vr.OK())
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	var cfg Config
	cfg.applyDefaults()
	cfg.App.Port = 9001
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9001, got.App.Port)

	// Second save keeps the previous file as .bak.
	cfg.App.Port = 9002
	require.NoError(t, SaveAtomic(path, cfg))
	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)
}

func TestEnsureUserConfigCopiesOnce(t *testing.T) {
	dataDir := t.TempDir()
	defaultPath := writeTemp(t, "app:\n  port: 8123\n")

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	// A user edit survives subsequent bootstraps.
	require.NoError(t, os.WriteFile(userPath, []byte("app:\n  port: 9999\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)

	cfg, err := Load(again)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.App.Port)
}
