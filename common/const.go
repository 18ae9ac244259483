package common

const (
	// DefaultSeed is the reproducibility key used when no seed is configured.
	DefaultSeed = 42

	//Default batch sizes matching the checked-in baseline fixtures
	DefaultLogBatchCount   = 81
	DefaultTraceBatchCount = 19

	//Fixed base timestamps in nanoseconds. Wall-clock time never leaks into
	//generated content, so re-running with the same seed reproduces the same bytes.
	LogsBaseTimeNs    uint64 = 1760741572254301000
	MetricsBaseTimeNs uint64 = 1705327800000000000
	TracesBaseTimeNs  uint64 = 1760738064624180000

	//Average encoded size per record, calibrated empirically. Used by the
	//size-based scaling estimator, not measured per run.
	AvgLogRecordBytes   = 1500
	AvgMetricPointBytes = 800
	AvgTraceSpanBytes   = 2000

	//Probability of optional structure on batch records
	TraceContextProbability = 0.3
	SpanEventProbability    = 0.3
	SpanParentProbability   = 0.7

	SchemaUrl = "https://opentelemetry.io/schemas/1.6.1"

	//Suffix applied to batch output names when a target size is configured, so
	//size-scaled fixtures never overwrite the baseline fixtures.
	LargeFileSuffix = "_large"

	OTelResourceServiceName = "service.name"
)

// Read-only lookup tables shared by the signal generators. These are never
// mutated after initialization.
var (
	Services = []string{
		"frontend-proxy",
		"product-catalog",
		"cart",
		"payment-service",
		"recommendation",
		"kafka",
		"analytics-service",
		"api-gateway",
	}

	HttpPaths = []string{
		"/api/v1/products",
		"/api/v1/cart/add",
		"/api/v1/checkout",
		"/api/v1/user/profile",
		"/health",
		"/metrics",
		"/graphql",
	}

	HttpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

	HttpStatusCodes = []int{200, 201, 204, 400, 401, 403, 404, 500, 502, 503}

	ProductIds = []string{"HQTGWGPNH4", "LS4PSXUNUM", "1YMWWN1N4O"}
)
