package generator

import (
	"math/rand"
	"strconv"
	"strings"

	logger "github.com/zerok-ai/zk-utils-go/logs"
	commonv1 "go.opentelemetry.io/proto/otlp/common/v1"
	resourcev1 "go.opentelemetry.io/proto/otlp/resource/v1"
	tracev1 "go.opentelemetry.io/proto/otlp/trace/v1"

	"github.com/zerok-ai/zk-otel-datagen/common"
	"github.com/zerok-ai/zk-otel-datagen/config"
	"github.com/zerok-ai/zk-otel-datagen/utils"
)

var tracesGeneratorLogTag = "TracesGenerator"

var spanKindPool = []tracev1.Span_SpanKind{
	tracev1.Span_SPAN_KIND_SERVER,
	tracev1.Span_SPAN_KIND_CLIENT,
	tracev1.Span_SPAN_KIND_INTERNAL,
}

var (
	spanVerbs  = []string{"handle", "process", "execute"}
	rpcMethods = []string{"Get", "List", "Update"}
	operations = []string{"query", "process", "transform"}
	eventNames = []string{"checkpoint", "processing", "validation"}
)

// TracesGenerator assembles OTLP trace documents from a single seeded random
// stream. Batch spans may reference parent ids that do not exist in the same
// output; that is deliberate, to exercise partial/truncated traces downstream.
type TracesGenerator struct {
	cfg        *config.GenerationConfig
	rng        *rand.Rand
	baseTimeNs uint64
}

func NewTracesGenerator(cfg *config.GenerationConfig) *TracesGenerator {
	return &TracesGenerator{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		baseTimeNs: common.TracesBaseTimeNs,
	}
}

// GenerateSingleTrace builds the minimal fixture: a two-span ingress/egress
// chain from an Envoy proxy. Only the three span/trace ids are randomized.
func (g *TracesGenerator) GenerateSingleTrace() *tracev1.TracesData {
	traceId := utils.RandomTraceId(g.rng)
	parentSpanId := utils.RandomSpanId(g.rng)
	childSpanId := utils.RandomSpanId(g.rng)
	rootSpanId := utils.RandomSpanId(g.rng)

	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute(common.OTelResourceServiceName, "frontend-proxy"),
		utils.StringAttribute("service.namespace", "opentelemetry-demo"),
		utils.StringAttribute("service.version", "2.1.3"),
		utils.StringAttribute("telemetry.sdk.language", "cpp"),
		utils.StringAttribute("telemetry.sdk.name", "envoy"),
		utils.StringAttribute("telemetry.sdk.version", "e98143bdac2bd4983e889b89d57330ca59cd71b0/1.34.7/Clean/RELEASE/BoringSSL"),
		utils.StringAttribute("host.name", "docker-desktop"),
		utils.StringAttribute("os.type", "linux"),
	}}

	childSpan := &tracev1.Span{
		TraceId:           traceId,
		SpanId:            childSpanId,
		ParentSpanId:      parentSpanId,
		Name:              "router frontend egress",
		Kind:              tracev1.Span_SPAN_KIND_CLIENT,
		StartTimeUnixNano: g.baseTimeNs + 282000,
		EndTimeUnixNano:   g.baseTimeNs + 4303000,
		Attributes: []*commonv1.KeyValue{
			utils.StringAttribute("http.protocol", "HTTP/1.1"),
			utils.StringAttribute("upstream_address", "172.18.0.25:8080"),
			utils.StringAttribute("peer.address", "172.18.0.25:8080"),
			utils.StringAttribute("component", "proxy"),
			utils.StringAttribute("upstream_cluster", "frontend"),
			utils.StringAttribute("upstream_cluster.name", "frontend"),
			utils.StringAttribute("http.status_code", "200"),
			utils.StringAttribute("response_flags", "-"),
		},
		Status: &tracev1.Status{},
	}

	parentSpan := &tracev1.Span{
		TraceId:           traceId,
		SpanId:            parentSpanId,
		ParentSpanId:      rootSpanId,
		Name:              "ingress",
		Kind:              tracev1.Span_SPAN_KIND_SERVER,
		StartTimeUnixNano: g.baseTimeNs,
		EndTimeUnixNano:   g.baseTimeNs + 4328000,
		Attributes: []*commonv1.KeyValue{
			utils.StringAttribute("node_id", ""),
			utils.StringAttribute("zone", ""),
			utils.StringAttribute("guid:x-request-id", "4fb197b8-8116-9929-a374-8b4813c60ad2"),
			utils.StringAttribute("http.url", "http://frontend-proxy:8080/api/products/66VCHSJNUP"),
			utils.StringAttribute("http.method", "GET"),
			utils.StringAttribute("downstream_cluster", "-"),
			utils.StringAttribute("user_agent", "python-requests/2.32.5"),
			utils.StringAttribute("http.protocol", "HTTP/1.1"),
			utils.StringAttribute("peer.address", "172.18.0.26"),
			utils.StringAttribute("request_size", "0"),
			utils.StringAttribute("response_size", "498"),
			utils.StringAttribute("component", "proxy"),
			utils.StringAttribute("upstream_cluster", "frontend"),
			utils.StringAttribute("upstream_cluster.name", "frontend"),
			utils.StringAttribute("http.status_code", "200"),
			utils.StringAttribute("response_flags", "-"),
		},
		Status: &tracev1.Status{},
	}

	return &tracev1.TracesData{ResourceSpans: []*tracev1.ResourceSpans{
		{
			Resource: resource,
			ScopeSpans: []*tracev1.ScopeSpans{{
				Scope: &commonv1.InstrumentationScope{
					Name:    "envoy",
					Version: "e98143bdac2bd4983e889b89d57330ca59cd71b0/1.34.7/Clean/RELEASE/BoringSSL",
				},
				Spans: []*tracev1.Span{childSpan, parentSpan},
			}},
			SchemaUrl: common.SchemaUrl,
		},
	}}
}

// GenerateBatchTraces builds count independent one-span documents. Attribute
// shape is classified from the service name: proxy/gateway services get HTTP
// attributes, catalog/cart/payment services get RPC attributes, the rest a
// generic operation attribute.
func (g *TracesGenerator) GenerateBatchTraces(count int) []*tracev1.TracesData {
	if g.cfg.SizeMB > 0 {
		count = EstimateRecordCount(g.cfg.SizeMB, common.AvgTraceSpanBytes)
		if g.cfg.Verbose {
			logger.InfoF(tracesGeneratorLogTag, "Generating ~%d trace spans to reach ~%vMB", count, g.cfg.SizeMB)
		}
	}

	tracesList := make([]*tracev1.TracesData, 0, count)
	for i := 0; i < count; i++ {
		service := common.Services[g.rng.Intn(len(common.Services))]
		traceId := utils.RandomTraceId(g.rng)
		spanId := utils.RandomSpanId(g.rng)

		//70% of spans get a synthetic parent id; the parent span itself may
		//not exist in the batch, producing partial-trace fixtures.
		var parentSpanId []byte
		if g.rng.Float64() < common.SpanParentProbability {
			parentSpanId = utils.RandomSpanId(g.rng)
		}

		kind := spanKindPool[g.rng.Intn(len(spanKindPool))]
		attributes := g.serviceAttributes(service)

		startTime := g.baseTimeNs + uint64(i)*1_000_000_000 // 1 second apart
		durationMs := uint64(g.rng.Intn(500) + 1)
		endTime := startTime + durationMs*1_000_000

		span := &tracev1.Span{
			TraceId:           traceId,
			SpanId:            spanId,
			ParentSpanId:      parentSpanId,
			Name:              service + "." + spanVerbs[g.rng.Intn(len(spanVerbs))],
			Kind:              kind,
			StartTimeUnixNano: startTime,
			EndTimeUnixNano:   endTime,
			Attributes:        attributes,
			Status:            &tracev1.Status{},
		}

		if g.rng.Float64() < common.SpanEventProbability {
			span.Events = append(span.Events, &tracev1.Span_Event{
				TimeUnixNano: startTime + durationMs*500_000, // temporal midpoint
				Name:         eventNames[g.rng.Intn(len(eventNames))],
			})
		}

		resource := utils.CommonResource(service,
			utils.StringAttribute("service.namespace", "opentelemetry-demo"),
			utils.StringAttribute("service.version", "2.1.3"),
		)

		tracesList = append(tracesList, &tracev1.TracesData{ResourceSpans: []*tracev1.ResourceSpans{
			{
				Resource: resource,
				ScopeSpans: []*tracev1.ScopeSpans{{
					Scope: &commonv1.InstrumentationScope{Name: service},
					Spans: []*tracev1.Span{span},
				}},
				SchemaUrl: common.SchemaUrl,
			},
		}})
	}

	return tracesList
}

func (g *TracesGenerator) serviceAttributes(service string) []*commonv1.KeyValue {
	switch {
	case strings.Contains(service, "proxy") || strings.Contains(service, "gateway"):
		return []*commonv1.KeyValue{
			utils.StringAttribute("http.method", common.HttpMethods[g.rng.Intn(len(common.HttpMethods))]),
			utils.StringAttribute("http.url", "http://"+service+":8080"+common.HttpPaths[g.rng.Intn(len(common.HttpPaths))]),
			utils.StringAttribute("http.status_code", strconv.Itoa(common.HttpStatusCodes[g.rng.Intn(len(common.HttpStatusCodes))])),
			utils.StringAttribute("component", "proxy"),
		}
	case strings.Contains(service, "catalog") || strings.Contains(service, "cart") || strings.Contains(service, "payment"):
		return []*commonv1.KeyValue{
			utils.StringAttribute("rpc.system", "grpc"),
			utils.StringAttribute("rpc.service", "oteldemo."+titleCase(service)+"Service"),
			utils.StringAttribute("rpc.method", rpcMethods[g.rng.Intn(len(rpcMethods))]),
			utils.IntAttribute("rpc.grpc.status_code", 0),
		}
	default:
		return []*commonv1.KeyValue{
			utils.StringAttribute(common.OTelResourceServiceName, service),
			utils.StringAttribute("operation", operations[g.rng.Intn(len(operations))]),
		}
	}
}

// titleCase uppercases the first letter of every hyphen-separated word, e.g.
// "payment-service" becomes "Payment-Service".
func titleCase(service string) string {
	parts := strings.Split(service, "-")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "-")
}
