package exporter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	logsv1 "go.opentelemetry.io/proto/otlp/logs/v1"
	tracev1 "go.opentelemetry.io/proto/otlp/trace/v1"
	"google.golang.org/protobuf/encoding/protojson"
	protov2 "google.golang.org/protobuf/proto"

	"github.com/zerok-ai/zk-otel-datagen/common"
	"github.com/zerok-ai/zk-otel-datagen/config"
	"github.com/zerok-ai/zk-otel-datagen/generator"
)

func testConfig(seed int64) *config.GenerationConfig {
	return &config.GenerationConfig{Seed: seed, Only: "all"}
}

func TestWriteJSONLLineCount(t *testing.T) {
	batch := generator.NewLogsGenerator(testConfig(42)).GenerateBatchLogs(common.DefaultLogBatchCount)
	outputPath := filepath.Join(t.TempDir(), "logs.jsonl")
	require.NoError(t, WriteJSONL(batch, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		lines++
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &decoded), "line %d is not valid JSON", lines)
		assert.Contains(t, decoded, "resourceLogs")
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 81, lines)
}

func TestWriteTracesProtoMergesDocuments(t *testing.T) {
	batch := generator.NewTracesGenerator(testConfig(42)).GenerateBatchTraces(common.DefaultTraceBatchCount)
	outputPath := filepath.Join(t.TempDir(), "traces.pb")
	require.NoError(t, WriteTracesProto(batch, outputPath))

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var decoded tracev1.TracesData
	require.NoError(t, protov2.Unmarshal(raw, &decoded))
	assert.Len(t, decoded.ResourceSpans, 19, "merged container must keep one resource-span group per input document")
}

func TestWriteLogsProtoMergesDocuments(t *testing.T) {
	batch := generator.NewLogsGenerator(testConfig(42)).GenerateBatchLogs(common.DefaultLogBatchCount)
	outputPath := filepath.Join(t.TempDir(), "logs.pb")
	require.NoError(t, WriteLogsProto(batch, outputPath))

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var decoded logsv1.LogsData
	require.NoError(t, protov2.Unmarshal(raw, &decoded))
	assert.Len(t, decoded.ResourceLogs, 81)
}

func TestWriteProtoEmptyListIsNoop(t *testing.T) {
	dir := t.TempDir()

	logsPath := filepath.Join(dir, "logs.pb")
	require.NoError(t, WriteLogsProto(nil, logsPath))
	assert.NoFileExists(t, logsPath)

	tracesPath := filepath.Join(dir, "traces.pb")
	require.NoError(t, WriteTracesProto([]*tracev1.TracesData{}, tracesPath))
	assert.NoFileExists(t, tracesPath)
}

func TestWriteJSONPrettyAndDeterministic(t *testing.T) {
	dir := t.TempDir()
	firstPath := filepath.Join(dir, "first.json")
	secondPath := filepath.Join(dir, "second.json")

	require.NoError(t, WriteJSON(generator.NewTracesGenerator(testConfig(42)).GenerateSingleTrace(), firstPath))
	require.NoError(t, WriteJSON(generator.NewTracesGenerator(testConfig(42)).GenerateSingleTrace(), secondPath))

	first, err := os.ReadFile(firstPath)
	require.NoError(t, err)
	second, err := os.ReadFile(secondPath)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must produce byte-identical JSON")
	assert.True(t, bytes.HasPrefix(first, []byte("{\n  \"")), "output is not indented")
}

func TestJSONAndProtoRoundTrip(t *testing.T) {
	original := generator.NewTracesGenerator(testConfig(42)).GenerateSingleTrace()
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "trace.json")
	protoPath := filepath.Join(dir, "trace.pb")
	require.NoError(t, WriteJSON(original, jsonPath))
	require.NoError(t, WriteProto(original, protoPath))

	jsonRaw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON tracev1.TracesData
	require.NoError(t, protojson.Unmarshal(jsonRaw, &fromJSON))

	protoRaw, err := os.ReadFile(protoPath)
	require.NoError(t, err)
	var fromProto tracev1.TracesData
	require.NoError(t, protov2.Unmarshal(protoRaw, &fromProto))

	assert.True(t, protov2.Equal(&fromJSON, &fromProto), "JSON and protobuf encodings must be lossless relative to each other")
	assert.True(t, protov2.Equal(original, &fromJSON))
}

func TestWriteJSONMissingDirectoryFails(t *testing.T) {
	doc := generator.NewLogsGenerator(testConfig(42)).GenerateSingleLog()
	err := WriteJSON(doc, filepath.Join(t.TempDir(), "missing", "log.json"))
	assert.Error(t, err)
}
