package generator

import (
	"fmt"
	"math/rand"
	"strings"

	logger "github.com/zerok-ai/zk-utils-go/logs"
	commonv1 "go.opentelemetry.io/proto/otlp/common/v1"
	logsv1 "go.opentelemetry.io/proto/otlp/logs/v1"
	resourcev1 "go.opentelemetry.io/proto/otlp/resource/v1"

	"github.com/zerok-ai/zk-otel-datagen/common"
	"github.com/zerok-ai/zk-otel-datagen/config"
	"github.com/zerok-ai/zk-otel-datagen/model"
	"github.com/zerok-ai/zk-otel-datagen/utils"
)

var logsGeneratorLogTag = "LogsGenerator"

// logPattern is one realistic log shape for batch generation. A body template
// containing %s gets a product id substituted from the fixed pool.
type logPattern struct {
	service      string
	bodyTemplate string
	severity     logsv1.SeverityNumber
	attributes   []*commonv1.KeyValue
}

var logPatterns = []logPattern{
	{
		service:      "load-generator",
		bodyTemplate: "User browsing product: %s",
		severity:     logsv1.SeverityNumber_SEVERITY_NUMBER_INFO,
		attributes: []*commonv1.KeyValue{
			utils.StringAttribute("code.file.path", "/usr/src/app/locustfile.py"),
			utils.StringAttribute("code.function.name", "browse_product"),
			utils.IntAttribute("code.line.number", 130),
		},
	},
	{
		service:      "product-catalog",
		bodyTemplate: "Product Found",
		severity:     logsv1.SeverityNumber_SEVERITY_NUMBER_INFO,
		attributes: []*commonv1.KeyValue{
			utils.StringAttribute("app.product.name", "The Comet Book"),
			utils.StringAttribute("app.product.id", "HQTGWGPNH4"),
		},
	},
	{
		service:      "recommendation",
		bodyTemplate: "Receive ListRecommendations for product ids:['HQTGWGPNH4']",
		severity:     logsv1.SeverityNumber_SEVERITY_NUMBER_INFO,
		attributes: []*commonv1.KeyValue{
			utils.StringAttribute("code.file.path", "/app/recommendation_server.py"),
			utils.StringAttribute("code.function.name", "ListRecommendations"),
			utils.IntAttribute("code.line.number", 47),
		},
	},
	{
		service:      "frontend-proxy",
		bodyTemplate: `[2025-10-17T22:52:35.579Z] "GET /api/products/0PUK6V6EV0 HTTP/1.1" 200 - via_upstream - "-" 0 421 3 3`,
		severity:     logsv1.SeverityNumber_SEVERITY_NUMBER_INFO,
		attributes: []*commonv1.KeyValue{
			utils.StringAttribute("destination.address", "172.18.0.25"),
			utils.StringAttribute("event.name", "proxy.access"),
			utils.StringAttribute("url.path", "/api/products/0PUK6V6EV0"),
		},
	},
	{
		service:      "cart",
		bodyTemplate: "GetCartAsync called with userId=",
		severity:     logsv1.SeverityNumber_SEVERITY_NUMBER_INFO,
	},
	{
		service:      "kafka",
		bodyTemplate: "[ProducerStateManager partition=__cluster_metadata-0] Wrote producer snapshot",
		severity:     logsv1.SeverityNumber_SEVERITY_NUMBER_INFO,
	},
}

// LogsGenerator assembles OTLP log documents. It owns a single seeded random
// stream; every randomized choice flows through it in a fixed order.
type LogsGenerator struct {
	cfg        *config.GenerationConfig
	rng        *rand.Rand
	baseTimeNs uint64
}

func NewLogsGenerator(cfg *config.GenerationConfig) *LogsGenerator {
	return &LogsGenerator{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		baseTimeNs: common.LogsBaseTimeNs,
	}
}

func (g *LogsGenerator) makeLogRecord(body string, severity logsv1.SeverityNumber, attributes []*commonv1.KeyValue, traceId []byte, spanId []byte, timeOffsetNs uint64) *logsv1.LogRecord {
	record := &logsv1.LogRecord{
		TimeUnixNano:   g.baseTimeNs + timeOffsetNs,
		SeverityNumber: severity,
		SeverityText:   model.SeverityText(severity),
		Body:           utils.StringValue(body),
		Attributes:     attributes,
	}
	if len(traceId) > 0 {
		record.TraceId = traceId
		if len(spanId) == 0 {
			spanId = utils.RandomSpanId(g.rng)
		}
		record.SpanId = spanId
		record.Flags = 1 // sampled
	}
	return record
}

// GenerateSingleLog builds the minimal one-record fixture, an Envoy access
// log. Everything is fixed except the trace and span ids.
func (g *LogsGenerator) GenerateSingleLog() *logsv1.LogsData {
	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute("log_name", "otel_envoy_access_log"),
		utils.StringAttribute("zone_name", ""),
		utils.StringAttribute("cluster_name", ""),
		utils.StringAttribute("node_name", ""),
		utils.StringAttribute(common.OTelResourceServiceName, "frontend-proxy"),
		utils.StringAttribute("host.name", "docker-desktop"),
		utils.StringAttribute("os.type", "linux"),
	}}

	traceId := utils.RandomTraceId(g.rng)
	spanId := utils.RandomSpanId(g.rng)

	logBody := `[2025-10-17T22:52:52.254Z] "GET /api/products/LS4PSXUNUM HTTP/1.1" ` +
		`200 - via_upstream - "-" 0 535 2 2 "-" "python-requests/2.32.5" ` +
		`"e55db68a-be46-9bb9-bb04-e431841e5b1d" "frontend-proxy:8080" ` +
		`"172.18.0.25:8080" frontend 172.18.0.27:53142 172.18.0.27:8080 ` +
		"172.18.0.26:33266 - -\n"

	logRecord := g.makeLogRecord(
		logBody,
		logsv1.SeverityNumber_SEVERITY_NUMBER_INFO,
		[]*commonv1.KeyValue{
			utils.StringAttribute("destination.address", "172.18.0.25"),
			utils.StringAttribute("event.name", "proxy.access"),
			utils.StringAttribute("server.address", "172.18.0.27:8080"),
			utils.StringAttribute("source.address", "172.18.0.26"),
			utils.StringAttribute("upstream.cluster", "frontend"),
			utils.StringAttribute("upstream.host", "172.18.0.25:8080"),
			utils.StringAttribute("user_agent.original", "python-requests/2.32.5"),
			utils.StringAttribute("url.full", "http://frontend-proxy:8080/api/products/LS4PSXUNUM"),
			utils.StringAttribute("url.path", "/api/products/LS4PSXUNUM"),
			utils.StringAttribute("url.query", "-"),
			utils.StringAttribute("url.template", "-"),
		},
		traceId,
		spanId,
		0,
	)

	return &logsv1.LogsData{ResourceLogs: []*logsv1.ResourceLogs{
		{
			Resource:  resource,
			ScopeLogs: []*logsv1.ScopeLogs{{Scope: &commonv1.InstrumentationScope{}, LogRecords: []*logsv1.LogRecord{logRecord}}},
			SchemaUrl: common.SchemaUrl,
		},
	}}
}

// GenerateBatchLogs builds count one-record documents with varied realistic
// shapes. When a target size is configured the count is estimated from the
// average log record size instead.
func (g *LogsGenerator) GenerateBatchLogs(count int) []*logsv1.LogsData {
	if g.cfg.SizeMB > 0 {
		count = EstimateRecordCount(g.cfg.SizeMB, common.AvgLogRecordBytes)
		if g.cfg.Verbose {
			logger.InfoF(logsGeneratorLogTag, "Generating ~%d log records to reach ~%vMB", count, g.cfg.SizeMB)
		}
	}

	logsList := make([]*logsv1.LogsData, 0, count)
	for i := 0; i < count; i++ {
		pattern := logPatterns[g.rng.Intn(len(logPatterns))]
		body := pattern.bodyTemplate
		if strings.Contains(body, "%s") {
			body = fmt.Sprintf(body, common.ProductIds[g.rng.Intn(len(common.ProductIds))])
		}

		resource := utils.CommonResource(pattern.service,
			utils.StringAttribute("service.namespace", "opentelemetry-demo"),
			utils.StringAttribute("service.version", "2.1.3"),
		)

		//30% of logs carry trace context
		var traceId, spanId []byte
		if g.rng.Float64() < common.TraceContextProbability {
			traceId = utils.RandomTraceId(g.rng)
			spanId = utils.RandomSpanId(g.rng)
		}

		logRecord := g.makeLogRecord(
			body,
			pattern.severity,
			pattern.attributes,
			traceId,
			spanId,
			uint64(i)*1_000_000_000, // 1 second apart, deterministic per index
		)

		logsList = append(logsList, &logsv1.LogsData{ResourceLogs: []*logsv1.ResourceLogs{
			{
				Resource: resource,
				ScopeLogs: []*logsv1.ScopeLogs{{
					Scope:      &commonv1.InstrumentationScope{Name: pattern.service},
					LogRecords: []*logsv1.LogRecord{logRecord},
				}},
				SchemaUrl: common.SchemaUrl,
			},
		}})
	}

	return logsList
}
