package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/zerok-ai/zk-otel-datagen/common"
	"github.com/zerok-ai/zk-otel-datagen/config"
)

func testConfig(seed int64) *config.GenerationConfig {
	return &config.GenerationConfig{Seed: seed, Only: "all"}
}

func TestGenerateSingleLog(t *testing.T) {
	doc := NewLogsGenerator(testConfig(42)).GenerateSingleLog()

	require.Len(t, doc.ResourceLogs, 1)
	require.Len(t, doc.ResourceLogs[0].ScopeLogs, 1)
	require.Len(t, doc.ResourceLogs[0].ScopeLogs[0].LogRecords, 1)

	record := doc.ResourceLogs[0].ScopeLogs[0].LogRecords[0]
	assert.Equal(t, "INFO", record.SeverityText)
	require.Len(t, record.TraceId, 16)
	assert.NotEqual(t, make([]byte, 16), record.TraceId)
	require.Len(t, record.SpanId, 8)
	assert.EqualValues(t, 1, record.Flags)
	assert.Equal(t, common.SchemaUrl, doc.ResourceLogs[0].SchemaUrl)
}

func TestGenerateBatchLogsDefaultCount(t *testing.T) {
	batch := NewLogsGenerator(testConfig(42)).GenerateBatchLogs(common.DefaultLogBatchCount)

	require.Len(t, batch, 81)
	for i, doc := range batch {
		require.Len(t, doc.ResourceLogs, 1)
		require.Len(t, doc.ResourceLogs[0].ScopeLogs[0].LogRecords, 1)
		record := doc.ResourceLogs[0].ScopeLogs[0].LogRecords[0]
		assert.Equal(t, common.LogsBaseTimeNs+uint64(i)*1_000_000_000, record.TimeUnixNano)
		if len(record.TraceId) > 0 {
			assert.Len(t, record.TraceId, 16)
			assert.Len(t, record.SpanId, 8)
			assert.EqualValues(t, 1, record.Flags)
		}
	}
}

func TestBatchLogsDeterminism(t *testing.T) {
	first := NewLogsGenerator(testConfig(42)).GenerateBatchLogs(common.DefaultLogBatchCount)
	second := NewLogsGenerator(testConfig(42)).GenerateBatchLogs(common.DefaultLogBatchCount)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, proto.Equal(first[i], second[i]), "document %d differs between runs", i)
	}
}

func TestBatchLogsSeedSensitivity(t *testing.T) {
	first := NewLogsGenerator(testConfig(42)).GenerateBatchLogs(common.DefaultLogBatchCount)
	second := NewLogsGenerator(testConfig(43)).GenerateBatchLogs(common.DefaultLogBatchCount)

	different := false
	for i := range first {
		if !proto.Equal(first[i], second[i]) {
			different = true
			break
		}
	}
	assert.True(t, different, "different seeds produced identical batches")
}

func TestBatchLogsSizeScaling(t *testing.T) {
	cfg := testConfig(42)
	cfg.SizeMB = 1
	batch := NewLogsGenerator(cfg).GenerateBatchLogs(common.DefaultLogBatchCount)
	assert.Len(t, batch, EstimateRecordCount(1, common.AvgLogRecordBytes))
}
