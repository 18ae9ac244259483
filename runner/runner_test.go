package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerok-ai/zk-otel-datagen/config"
)

func testConfig(t *testing.T, only string) *config.GenerationConfig {
	t.Helper()
	return &config.GenerationConfig{
		Seed:      42,
		Only:      only,
		OutputDir: t.TempDir(),
	}
}

func TestRunAllWritesBaselineLayout(t *testing.T) {
	cfg := testConfig(t, "all")
	require.NoError(t, Run(cfg))

	expected := []string{
		"log.json", "logs.jsonl", "logs.pb",
		"trace.json", "trace.pb", "traces.jsonl", "traces.pb",
	}
	for _, kind := range []string{"gauge", "sum", "histogram", "exponential_histogram", "summary", "mixed"} {
		expected = append(expected,
			"metrics_"+kind+".json",
			"metrics_"+kind+".jsonl",
			"metrics_"+kind+".pb",
		)
	}

	for _, name := range expected {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}
}

func TestRunSizeScaledUsesLargeSuffix(t *testing.T) {
	cfg := testConfig(t, "logs")
	cfg.SizeMB = 1
	require.NoError(t, Run(cfg))

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "logs_large.jsonl"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "logs_large.pb"))

	//Minimal fixtures are skipped and baseline names stay untouched
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "log.json"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "logs.jsonl"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "logs.pb"))
}

func TestRunSingleMetricKind(t *testing.T) {
	cfg := testConfig(t, "metrics-gauge")
	require.NoError(t, Run(cfg))

	assert.FileExists(t, filepath.Join(cfg.OutputDir, "metrics_gauge.json"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "metrics_gauge.jsonl"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "metrics_gauge.pb"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "metrics_sum.json"))
}

func TestRunIsByteReproducible(t *testing.T) {
	first := testConfig(t, "all")
	second := testConfig(t, "all")
	require.NoError(t, Run(first))
	require.NoError(t, Run(second))

	entries, err := os.ReadDir(first.OutputDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		firstBytes, err := os.ReadFile(filepath.Join(first.OutputDir, entry.Name()))
		require.NoError(t, err)
		secondBytes, err := os.ReadFile(filepath.Join(second.OutputDir, entry.Name()))
		require.NoError(t, err)
		assert.Equal(t, firstBytes, secondBytes, "%s differs between runs with the same seed", entry.Name())
	}
}

func TestRunInvalidSelector(t *testing.T) {
	cfg := testConfig(t, "spans")
	err := Run(cfg)
	require.Error(t, err)

	//No partial output before the selector is rejected
	entries, readErr := os.ReadDir(cfg.OutputDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunMissingOutputDir(t *testing.T) {
	cfg := testConfig(t, "logs")
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "does-not-exist")
	assert.Error(t, Run(cfg))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		sizeMB   float64
		baseName string
		expected string
	}{
		{"baseline name", 0, "logs.jsonl", "logs.jsonl"},
		{"size-scaled name", 50, "logs.jsonl", "logs_large.jsonl"},
		{"size-scaled pb", 50, "traces.pb", "traces_large.pb"},
		{"no extension", 50, "logs", "logs_large"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := &config.GenerationConfig{SizeMB: test.sizeMB, OutputDir: "testdata"}
			assert.Equal(t, filepath.Join("testdata", test.expected), OutputPath(cfg, test.baseName))
		})
	}
}
