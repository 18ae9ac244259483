package generator

import (
	"fmt"
	"math/rand"

	"github.com/golang/protobuf/proto"
	logger "github.com/zerok-ai/zk-utils-go/logs"
	commonv1 "go.opentelemetry.io/proto/otlp/common/v1"
	metricsv1 "go.opentelemetry.io/proto/otlp/metrics/v1"
	resourcev1 "go.opentelemetry.io/proto/otlp/resource/v1"

	"github.com/zerok-ai/zk-otel-datagen/common"
	"github.com/zerok-ai/zk-otel-datagen/config"
	"github.com/zerok-ai/zk-otel-datagen/utils"
)

var metricsGeneratorLogTag = "MetricsGenerator"

// MetricsGenerator assembles one OTLP metrics document per aggregation kind.
// Baseline values are hand-authored to exercise each kind's structural shape;
// only the gauge point count scales with a configured target size.
type MetricsGenerator struct {
	cfg        *config.GenerationConfig
	rng        *rand.Rand
	baseTimeNs uint64
}

func NewMetricsGenerator(cfg *config.GenerationConfig) *MetricsGenerator {
	return &MetricsGenerator{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		baseTimeNs: common.MetricsBaseTimeNs,
	}
}

func (g *MetricsGenerator) scaleDataPoints(baseCount int) int {
	if g.cfg.SizeMB <= 0 {
		return baseCount
	}
	scaled := EstimateRecordCount(g.cfg.SizeMB, common.AvgMetricPointBytes)
	if g.cfg.Verbose {
		logger.InfoF(metricsGeneratorLogTag, "Scaling from %d to ~%d data points for ~%vMB", baseCount, scaled, g.cfg.SizeMB)
	}
	return scaled
}

func (g *MetricsGenerator) wrap(resource *resourcev1.Resource, scope *commonv1.InstrumentationScope, metrics []*metricsv1.Metric) *metricsv1.MetricsData {
	return &metricsv1.MetricsData{ResourceMetrics: []*metricsv1.ResourceMetrics{
		{
			Resource:     resource,
			ScopeMetrics: []*metricsv1.ScopeMetrics{{Scope: scope, Metrics: metrics}},
		},
	}}
}

// GenerateGauge builds instant-measurement metrics. This is the scalable kind:
// the cpu gauge's point count follows the size estimator.
func (g *MetricsGenerator) GenerateGauge() *metricsv1.MetricsData {
	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute(common.OTelResourceServiceName, "demo-service"),
		utils.StringAttribute("service.version", "1.0.0"),
		utils.StringAttribute("deployment.environment", "production"),
	}}

	numPoints := g.scaleDataPoints(2)
	cpuPoints := make([]*metricsv1.NumberDataPoint, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		cpuPoints = append(cpuPoints, &metricsv1.NumberDataPoint{
			Attributes: []*commonv1.KeyValue{
				utils.StringAttribute("host", fmt.Sprintf("web-%02d", i/8+1)),
				utils.IntAttribute("cpu", int64(i%8)),
			},
			TimeUnixNano: g.baseTimeNs + uint64(i)*1_000_000_000,
			Value:        &metricsv1.NumberDataPoint_AsDouble{AsDouble: 20.0 + g.rng.Float64()*75.0},
		})
	}

	memoryPoints := []*metricsv1.NumberDataPoint{
		{
			Attributes:   []*commonv1.KeyValue{utils.StringAttribute("host", "web-01")},
			TimeUnixNano: g.baseTimeNs,
			Value:        &metricsv1.NumberDataPoint_AsInt{AsInt: 8589934592}, // 8GB
		},
	}

	metrics := []*metricsv1.Metric{
		{
			Name:        "cpu.usage",
			Description: "Current CPU usage percentage",
			Unit:        "percent",
			Data:        &metricsv1.Metric_Gauge{Gauge: &metricsv1.Gauge{DataPoints: cpuPoints}},
		},
		{
			Name:        "memory.available",
			Description: "Available memory in bytes",
			Unit:        "bytes",
			Data:        &metricsv1.Metric_Gauge{Gauge: &metricsv1.Gauge{DataPoints: memoryPoints}},
		},
	}

	return g.wrap(resource, &commonv1.InstrumentationScope{Name: "demo-instrumentation", Version: "1.0.0"}, metrics)
}

// GenerateSum builds cumulative monotonic counters.
func (g *MetricsGenerator) GenerateSum() *metricsv1.MetricsData {
	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute(common.OTelResourceServiceName, "api-gateway"),
		utils.StringAttribute("service.version", "2.1.0"),
	}}

	httpSum := &metricsv1.Sum{
		AggregationTemporality: metricsv1.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
		IsMonotonic:            true,
		DataPoints: []*metricsv1.NumberDataPoint{
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("http.method", "GET"),
					utils.IntAttribute("http.status_code", 200),
					utils.StringAttribute("http.route", "/api/users"),
				},
				TimeUnixNano: g.baseTimeNs,
				Value:        &metricsv1.NumberDataPoint_AsInt{AsInt: 15234},
			},
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("http.method", "POST"),
					utils.IntAttribute("http.status_code", 201),
					utils.StringAttribute("http.route", "/api/users"),
				},
				TimeUnixNano: g.baseTimeNs,
				Value:        &metricsv1.NumberDataPoint_AsInt{AsInt: 3421},
			},
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("http.method", "GET"),
					utils.IntAttribute("http.status_code", 404),
					utils.StringAttribute("http.route", "/api/users"),
				},
				TimeUnixNano: g.baseTimeNs,
				Value:        &metricsv1.NumberDataPoint_AsInt{AsInt: 152},
			},
		},
	}

	bytesSum := &metricsv1.Sum{
		AggregationTemporality: metricsv1.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
		IsMonotonic:            true,
		DataPoints: []*metricsv1.NumberDataPoint{
			{
				Attributes:   []*commonv1.KeyValue{utils.StringAttribute("http.route", "/api/users")},
				TimeUnixNano: g.baseTimeNs,
				Value:        &metricsv1.NumberDataPoint_AsInt{AsInt: 45892134},
			},
		},
	}

	metrics := []*metricsv1.Metric{
		{
			Name:        "http.requests.total",
			Description: "Total number of HTTP requests",
			Unit:        "1",
			Data:        &metricsv1.Metric_Sum{Sum: httpSum},
		},
		{
			Name:        "http.request.bytes",
			Description: "Total bytes received in requests",
			Unit:        "bytes",
			Data:        &metricsv1.Metric_Sum{Sum: bytesSum},
		},
	}

	return g.wrap(resource, &commonv1.InstrumentationScope{Name: "http-instrumentation", Version: "1.2.0"}, metrics)
}

// GenerateHistogram builds explicit-bucket distributions. Bucket counts always
// sum to the point's total count, and len(bucketCounts) == len(bounds)+1.
func (g *MetricsGenerator) GenerateHistogram() *metricsv1.MetricsData {
	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute(common.OTelResourceServiceName, "api-gateway"),
		utils.StringAttribute("deployment.environment", "production"),
	}}

	httpHistogram := &metricsv1.Histogram{
		AggregationTemporality: metricsv1.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
		DataPoints: []*metricsv1.HistogramDataPoint{
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("http.method", "GET"),
					utils.StringAttribute("http.route", "/api/users"),
					utils.IntAttribute("http.status_code", 200),
				},
				TimeUnixNano:   g.baseTimeNs,
				Count:          1543,
				Sum:            proto.Float64(45120.5),
				BucketCounts:   []uint64{23, 342, 687, 398, 78, 15},
				ExplicitBounds: []float64{10.0, 25.0, 50.0, 100.0, 250.0},
				Min:            proto.Float64(2.3),
				Max:            proto.Float64(421.8),
			},
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("http.method", "POST"),
					utils.StringAttribute("http.route", "/api/users"),
					utils.IntAttribute("http.status_code", 201),
				},
				TimeUnixNano:   g.baseTimeNs,
				Count:          892,
				Sum:            proto.Float64(67854.2),
				BucketCounts:   []uint64{12, 156, 298, 321, 89, 16},
				ExplicitBounds: []float64{10.0, 25.0, 50.0, 100.0, 250.0},
				Min:            proto.Float64(5.1),
				Max:            proto.Float64(512.3),
			},
		},
	}

	dbHistogram := &metricsv1.Histogram{
		AggregationTemporality: metricsv1.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
		DataPoints: []*metricsv1.HistogramDataPoint{
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("db.system", "postgresql"),
					utils.StringAttribute("db.operation", "SELECT"),
				},
				TimeUnixNano:   g.baseTimeNs,
				Count:          5234,
				Sum:            proto.Float64(12456.8),
				BucketCounts:   []uint64{1234, 2891, 876, 198, 35},
				ExplicitBounds: []float64{1.0, 5.0, 10.0, 50.0},
				Min:            proto.Float64(0.2),
				Max:            proto.Float64(89.5),
			},
		},
	}

	metrics := []*metricsv1.Metric{
		{
			Name:        "http.server.duration",
			Description: "Duration of HTTP requests in milliseconds",
			Unit:        "ms",
			Data:        &metricsv1.Metric_Histogram{Histogram: httpHistogram},
		},
		{
			Name:        "db.query.duration",
			Description: "Duration of database queries",
			Unit:        "ms",
			Data:        &metricsv1.Metric_Histogram{Histogram: dbHistogram},
		},
	}

	return g.wrap(resource, &commonv1.InstrumentationScope{Name: "http-instrumentation", Version: "1.2.0"}, metrics)
}

// GenerateExponentialHistogram builds base-2 exponential-bucket distributions.
func (g *MetricsGenerator) GenerateExponentialHistogram() *metricsv1.MetricsData {
	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute(common.OTelResourceServiceName, "payment-service"),
		utils.StringAttribute("service.version", "3.2.1"),
	}}

	expHistogram := &metricsv1.ExponentialHistogram{
		AggregationTemporality: metricsv1.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
		DataPoints: []*metricsv1.ExponentialHistogramDataPoint{
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("payment.method", "credit_card"),
					utils.StringAttribute("payment.provider", "stripe"),
				},
				TimeUnixNano: g.baseTimeNs,
				Count:        2543,
				Sum:          proto.Float64(125634.5),
				Scale:        3,
				ZeroCount:    5,
				Positive: &metricsv1.ExponentialHistogramDataPoint_Buckets{
					Offset:       2,
					BucketCounts: []uint64{234, 567, 892, 645, 178, 22},
				},
				Negative: &metricsv1.ExponentialHistogramDataPoint_Buckets{
					Offset: 0,
				},
				Min: proto.Float64(12.3),
				Max: proto.Float64(1234.5),
			},
			{
				Attributes: []*commonv1.KeyValue{
					utils.StringAttribute("payment.method", "paypal"),
					utils.StringAttribute("payment.provider", "paypal"),
				},
				TimeUnixNano: g.baseTimeNs,
				Count:        1832,
				Sum:          proto.Float64(98234.2),
				Scale:        3,
				ZeroCount:    3,
				Positive: &metricsv1.ExponentialHistogramDataPoint_Buckets{
					Offset:       1,
					BucketCounts: []uint64{156, 432, 721, 412, 98, 12},
				},
				Negative: &metricsv1.ExponentialHistogramDataPoint_Buckets{
					Offset: 0,
				},
				Min: proto.Float64(8.7),
				Max: proto.Float64(892.3),
			},
		},
	}

	metrics := []*metricsv1.Metric{
		{
			Name:        "payment.processing.duration",
			Description: "Duration of payment processing operations",
			Unit:        "ms",
			Data:        &metricsv1.Metric_ExponentialHistogram{ExponentialHistogram: expHistogram},
		},
	}

	return g.wrap(resource, &commonv1.InstrumentationScope{Name: "payment-instrumentation", Version: "1.0.0"}, metrics)
}

// GenerateSummary builds quantile-based distributions. Quantile values are
// non-decreasing from q=0.0 to q=1.0.
func (g *MetricsGenerator) GenerateSummary() *metricsv1.MetricsData {
	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute(common.OTelResourceServiceName, "analytics-service"),
		utils.StringAttribute("service.version", "1.5.2"),
	}}

	summary := &metricsv1.Summary{DataPoints: []*metricsv1.SummaryDataPoint{
		{
			Attributes: []*commonv1.KeyValue{
				utils.StringAttribute("endpoint", "/api/analytics"),
				utils.StringAttribute("method", "POST"),
			},
			TimeUnixNano: g.baseTimeNs,
			Count:        8534,
			Sum:          45892134.0,
			QuantileValues: []*metricsv1.SummaryDataPoint_ValueAtQuantile{
				{Quantile: 0.0, Value: 128.0},
				{Quantile: 0.5, Value: 4512.0},
				{Quantile: 0.9, Value: 12834.0},
				{Quantile: 0.95, Value: 18923.0},
				{Quantile: 0.99, Value: 45123.0},
				{Quantile: 1.0, Value: 98234.0},
			},
		},
		{
			Attributes: []*commonv1.KeyValue{
				utils.StringAttribute("endpoint", "/api/data"),
				utils.StringAttribute("method", "GET"),
			},
			TimeUnixNano: g.baseTimeNs,
			Count:        12934,
			Sum:          12345678.0,
			QuantileValues: []*metricsv1.SummaryDataPoint_ValueAtQuantile{
				{Quantile: 0.0, Value: 64.0},
				{Quantile: 0.5, Value: 892.0},
				{Quantile: 0.9, Value: 2341.0},
				{Quantile: 0.95, Value: 3456.0},
				{Quantile: 0.99, Value: 8234.0},
				{Quantile: 1.0, Value: 15234.0},
			},
		},
	}}

	metrics := []*metricsv1.Metric{
		{
			Name:        "request.size",
			Description: "Summary of request sizes",
			Unit:        "bytes",
			Data:        &metricsv1.Metric_Summary{Summary: summary},
		},
	}

	return g.wrap(resource, &commonv1.InstrumentationScope{Name: "analytics-instrumentation", Version: "2.0.0"}, metrics)
}

// GenerateMixed builds one document holding a gauge, a sum and a histogram.
func (g *MetricsGenerator) GenerateMixed() *metricsv1.MetricsData {
	resource := &resourcev1.Resource{Attributes: []*commonv1.KeyValue{
		utils.StringAttribute(common.OTelResourceServiceName, "multi-service"),
		utils.StringAttribute("service.version", "1.0.0"),
		utils.StringAttribute("deployment.environment", "staging"),
	}}

	cpuGauge := &metricsv1.Gauge{DataPoints: []*metricsv1.NumberDataPoint{
		{
			Attributes:   []*commonv1.KeyValue{utils.IntAttribute("cpu", 0)},
			TimeUnixNano: g.baseTimeNs,
			Value:        &metricsv1.NumberDataPoint_AsDouble{AsDouble: 0.42},
		},
	}}

	networkSum := &metricsv1.Sum{
		AggregationTemporality: metricsv1.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
		IsMonotonic:            true,
		DataPoints: []*metricsv1.NumberDataPoint{
			{
				Attributes:   []*commonv1.KeyValue{utils.StringAttribute("direction", "transmit")},
				TimeUnixNano: g.baseTimeNs,
				Value:        &metricsv1.NumberDataPoint_AsInt{AsInt: 123456789},
			},
		},
	}

	httpHistogram := &metricsv1.Histogram{
		AggregationTemporality: metricsv1.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
		DataPoints: []*metricsv1.HistogramDataPoint{
			{
				Attributes:     []*commonv1.KeyValue{utils.StringAttribute("http.method", "GET")},
				TimeUnixNano:   g.baseTimeNs,
				Count:          100,
				Sum:            proto.Float64(5000.0),
				BucketCounts:   []uint64{10, 30, 40, 15, 5},
				ExplicitBounds: []float64{10.0, 50.0, 100.0, 500.0},
				Min:            proto.Float64(5.0),
				Max:            proto.Float64(1000.0),
			},
		},
	}

	metrics := []*metricsv1.Metric{
		{
			Name:        "system.cpu.utilization",
			Description: "CPU utilization",
			Unit:        "1",
			Data:        &metricsv1.Metric_Gauge{Gauge: cpuGauge},
		},
		{
			Name:        "system.network.io",
			Description: "Network bytes transferred",
			Unit:        "bytes",
			Data:        &metricsv1.Metric_Sum{Sum: networkSum},
		},
		{
			Name:        "http.server.request.duration",
			Description: "HTTP request duration",
			Unit:        "ms",
			Data:        &metricsv1.Metric_Histogram{Histogram: httpHistogram},
		},
	}

	return g.wrap(resource, &commonv1.InstrumentationScope{Name: "system-instrumentation", Version: "1.0.0"}, metrics)
}
