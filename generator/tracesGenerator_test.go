package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tracev1 "go.opentelemetry.io/proto/otlp/trace/v1"
	"google.golang.org/protobuf/proto"

	"github.com/zerok-ai/zk-otel-datagen/common"
)

func TestGenerateSingleTrace(t *testing.T) {
	doc := NewTracesGenerator(testConfig(42)).GenerateSingleTrace()

	require.Len(t, doc.ResourceSpans, 1)
	require.Len(t, doc.ResourceSpans[0].ScopeSpans, 1)
	spans := doc.ResourceSpans[0].ScopeSpans[0].Spans
	require.Len(t, spans, 2)

	child, parent := spans[0], spans[1]
	assert.Equal(t, parent.SpanId, child.ParentSpanId)
	assert.Equal(t, parent.TraceId, child.TraceId)
	assert.Len(t, child.TraceId, 16)
	assert.Len(t, child.SpanId, 8)
	assert.NotEmpty(t, parent.ParentSpanId, "ingress span keeps a synthetic root parent")
	assert.Equal(t, tracev1.Span_SPAN_KIND_CLIENT, child.Kind)
	assert.Equal(t, tracev1.Span_SPAN_KIND_SERVER, parent.Kind)
	for _, span := range spans {
		assert.GreaterOrEqual(t, span.EndTimeUnixNano, span.StartTimeUnixNano)
	}
}

func TestGenerateBatchTraces(t *testing.T) {
	batch := NewTracesGenerator(testConfig(42)).GenerateBatchTraces(common.DefaultTraceBatchCount)

	require.Len(t, batch, 19)

	servicePool := make(map[string]bool)
	for _, service := range common.Services {
		servicePool[service] = true
	}

	for _, doc := range batch {
		require.Len(t, doc.ResourceSpans, 1)
		require.Len(t, doc.ResourceSpans[0].ScopeSpans, 1)
		require.Len(t, doc.ResourceSpans[0].ScopeSpans[0].Spans, 1)

		span := doc.ResourceSpans[0].ScopeSpans[0].Spans[0]
		assert.GreaterOrEqual(t, span.EndTimeUnixNano, span.StartTimeUnixNano)
		assert.Contains(t, []tracev1.Span_SpanKind{
			tracev1.Span_SPAN_KIND_SERVER,
			tracev1.Span_SPAN_KIND_CLIENT,
			tracev1.Span_SPAN_KIND_INTERNAL,
		}, span.Kind)

		scopeName := doc.ResourceSpans[0].ScopeSpans[0].Scope.Name
		assert.True(t, servicePool[scopeName], "scope %q not in the service pool", scopeName)

		//Parent ids are synthetic and may not resolve within the batch;
		//when present they still have to be well-formed.
		if len(span.ParentSpanId) > 0 {
			assert.Len(t, span.ParentSpanId, 8)
		}

		for _, event := range span.Events {
			assert.GreaterOrEqual(t, event.TimeUnixNano, span.StartTimeUnixNano)
			assert.LessOrEqual(t, event.TimeUnixNano, span.EndTimeUnixNano)
		}
	}
}

func TestBatchTracesServiceAttributeShapes(t *testing.T) {
	batch := NewTracesGenerator(testConfig(42)).GenerateBatchTraces(200)

	attrKeys := func(span *tracev1.Span) map[string]bool {
		keys := make(map[string]bool)
		for _, attr := range span.Attributes {
			keys[attr.Key] = true
		}
		return keys
	}

	for _, doc := range batch {
		span := doc.ResourceSpans[0].ScopeSpans[0].Spans[0]
		service := doc.ResourceSpans[0].ScopeSpans[0].Scope.Name
		keys := attrKeys(span)
		switch service {
		case "frontend-proxy", "api-gateway":
			assert.True(t, keys["http.method"], "proxy span for %s lacks http attributes", service)
		case "product-catalog", "cart", "payment-service":
			assert.True(t, keys["rpc.system"], "rpc span for %s lacks rpc attributes", service)
		default:
			assert.True(t, keys["operation"], "generic span for %s lacks operation attribute", service)
		}
	}
}

func TestBatchTracesDeterminism(t *testing.T) {
	first := NewTracesGenerator(testConfig(42)).GenerateBatchTraces(common.DefaultTraceBatchCount)
	second := NewTracesGenerator(testConfig(42)).GenerateBatchTraces(common.DefaultTraceBatchCount)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, proto.Equal(first[i], second[i]), "document %d differs between runs", i)
	}
}

func TestBatchTracesSizeScaling(t *testing.T) {
	cfg := testConfig(42)
	cfg.SizeMB = 1
	batch := NewTracesGenerator(cfg).GenerateBatchTraces(common.DefaultTraceBatchCount)
	assert.Len(t, batch, EstimateRecordCount(1, common.AvgTraceSpanBytes))
}
