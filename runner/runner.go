package runner

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	logger "github.com/zerok-ai/zk-utils-go/logs"
	metricsv1 "go.opentelemetry.io/proto/otlp/metrics/v1"

	"github.com/zerok-ai/zk-otel-datagen/common"
	"github.com/zerok-ai/zk-otel-datagen/config"
	"github.com/zerok-ai/zk-otel-datagen/exporter"
	"github.com/zerok-ai/zk-otel-datagen/generator"
	promMetrics "github.com/zerok-ai/zk-otel-datagen/metrics"
	"github.com/zerok-ai/zk-otel-datagen/model"
)

var runnerLogTag = "runner"

// Run generates the fixture files selected by the config. Generation is
// single-threaded and synchronous; every write is a whole-buffer write, and a
// failed run can simply be retried since output is deterministic.
func Run(cfg *config.GenerationConfig) error {
	signal, err := model.ParseSignal(cfg.Only)
	if err != nil {
		return err
	}

	logger.InfoF(runnerLogTag, "Generating OpenTelemetry fixtures (seed=%d) into %s", cfg.Seed, cfg.OutputDir)
	start := time.Now()

	switch signal {
	case model.SignalAll:
		if err := generateAllLogs(cfg); err != nil {
			return err
		}
		if err := generateAllMetrics(cfg); err != nil {
			return err
		}
		if err := generateAllTraces(cfg); err != nil {
			return err
		}
	case model.SignalLogs:
		if err := generateAllLogs(cfg); err != nil {
			return err
		}
	case model.SignalTraces:
		if err := generateAllTraces(cfg); err != nil {
			return err
		}
	case model.SignalMetrics:
		if err := generateAllMetrics(cfg); err != nil {
			return err
		}
	default:
		if err := generateMetricKind(cfg, signal.MetricKind()); err != nil {
			return err
		}
	}

	logger.InfoF(runnerLogTag, "Fixture generation complete in %.2fs", time.Since(start).Seconds())
	if cfg.Verbose {
		if dump, err := promMetrics.DumpText(); err == nil {
			logger.Info(runnerLogTag, "generation counters:\n", dump)
		}
	}
	return nil
}

// OutputPath resolves a baseline fixture name inside the output directory.
// When a target size is configured the name gets the large-file suffix, so
// size-scaled fixtures never collide with the checked-in baselines.
func OutputPath(cfg *config.GenerationConfig, baseName string) string {
	if cfg.SizeMB > 0 {
		if ext := filepath.Ext(baseName); ext != "" {
			baseName = strings.TrimSuffix(baseName, ext) + common.LargeFileSuffix + ext
		} else {
			baseName += common.LargeFileSuffix
		}
	}
	return filepath.Join(cfg.OutputDir, baseName)
}

func generateAllLogs(cfg *config.GenerationConfig) error {
	logger.Info(runnerLogTag, "Generating logs...")
	logsGenerator := generator.NewLogsGenerator(cfg)

	if cfg.SizeMB > 0 {
		//Size-driven runs produce batch fixtures only
		batch := logsGenerator.GenerateBatchLogs(0)
		promMetrics.TotalRecordsGenerated.WithLabelValues("logs").Add(float64(len(batch)))
		if err := exporter.WriteJSONL(batch, OutputPath(cfg, "logs.jsonl")); err != nil {
			return err
		}
		return exporter.WriteLogsProto(batch, OutputPath(cfg, "logs.pb"))
	}

	single := logsGenerator.GenerateSingleLog()
	promMetrics.TotalRecordsGenerated.WithLabelValues("logs").Inc()
	if err := exporter.WriteJSON(single, OutputPath(cfg, "log.json")); err != nil {
		return err
	}

	batch := logsGenerator.GenerateBatchLogs(common.DefaultLogBatchCount)
	promMetrics.TotalRecordsGenerated.WithLabelValues("logs").Add(float64(len(batch)))
	if err := exporter.WriteJSONL(batch, OutputPath(cfg, "logs.jsonl")); err != nil {
		return err
	}
	return exporter.WriteLogsProto(batch, OutputPath(cfg, "logs.pb"))
}

func generateAllTraces(cfg *config.GenerationConfig) error {
	logger.Info(runnerLogTag, "Generating traces...")
	tracesGenerator := generator.NewTracesGenerator(cfg)

	if cfg.SizeMB > 0 {
		batch := tracesGenerator.GenerateBatchTraces(0)
		promMetrics.TotalRecordsGenerated.WithLabelValues("traces").Add(float64(len(batch)))
		if err := exporter.WriteJSONL(batch, OutputPath(cfg, "traces.jsonl")); err != nil {
			return err
		}
		return exporter.WriteTracesProto(batch, OutputPath(cfg, "traces.pb"))
	}

	single := tracesGenerator.GenerateSingleTrace()
	promMetrics.TotalRecordsGenerated.WithLabelValues("traces").Add(2)
	if err := exporter.WriteJSON(single, OutputPath(cfg, "trace.json")); err != nil {
		return err
	}
	if err := exporter.WriteProto(single, OutputPath(cfg, "trace.pb")); err != nil {
		return err
	}

	batch := tracesGenerator.GenerateBatchTraces(common.DefaultTraceBatchCount)
	promMetrics.TotalRecordsGenerated.WithLabelValues("traces").Add(float64(len(batch)))
	if err := exporter.WriteJSONL(batch, OutputPath(cfg, "traces.jsonl")); err != nil {
		return err
	}
	return exporter.WriteTracesProto(batch, OutputPath(cfg, "traces.pb"))
}

type metricKind struct {
	name     string
	generate func(*generator.MetricsGenerator) *metricsv1.MetricsData
}

// Generation order matches the baseline fixture layout; mixed comes last.
var metricKinds = []metricKind{
	{"gauge", (*generator.MetricsGenerator).GenerateGauge},
	{"sum", (*generator.MetricsGenerator).GenerateSum},
	{"histogram", (*generator.MetricsGenerator).GenerateHistogram},
	{"exponential_histogram", (*generator.MetricsGenerator).GenerateExponentialHistogram},
	{"summary", (*generator.MetricsGenerator).GenerateSummary},
	{"mixed", (*generator.MetricsGenerator).GenerateMixed},
}

func generateAllMetrics(cfg *config.GenerationConfig) error {
	logger.Info(runnerLogTag, "Generating metrics...")
	metricsGenerator := generator.NewMetricsGenerator(cfg)
	for _, kind := range metricKinds {
		if err := exportMetricKind(cfg, kind.name, kind.generate(metricsGenerator)); err != nil {
			return err
		}
	}
	return nil
}

func generateMetricKind(cfg *config.GenerationConfig, kindName string) error {
	logger.InfoF(runnerLogTag, "Generating metrics (%s)...", kindName)
	metricsGenerator := generator.NewMetricsGenerator(cfg)
	for _, kind := range metricKinds {
		if kind.name == kindName {
			return exportMetricKind(cfg, kind.name, kind.generate(metricsGenerator))
		}
	}
	return fmt.Errorf("unknown metric kind %q", kindName)
}

func exportMetricKind(cfg *config.GenerationConfig, kindName string, data *metricsv1.MetricsData) error {
	promMetrics.TotalRecordsGenerated.WithLabelValues("metrics").Add(float64(countDataPoints(data)))
	baseName := "metrics_" + kindName
	if err := exporter.WriteJSON(data, OutputPath(cfg, baseName+".json")); err != nil {
		return err
	}
	if err := exporter.WriteJSONL([]*metricsv1.MetricsData{data}, OutputPath(cfg, baseName+".jsonl")); err != nil {
		return err
	}
	return exporter.WriteProto(data, OutputPath(cfg, baseName+".pb"))
}

func countDataPoints(data *metricsv1.MetricsData) int {
	count := 0
	for _, resourceMetrics := range data.ResourceMetrics {
		for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
			for _, metric := range scopeMetrics.Metrics {
				switch d := metric.Data.(type) {
				case *metricsv1.Metric_Gauge:
					count += len(d.Gauge.DataPoints)
				case *metricsv1.Metric_Sum:
					count += len(d.Sum.DataPoints)
				case *metricsv1.Metric_Histogram:
					count += len(d.Histogram.DataPoints)
				case *metricsv1.Metric_ExponentialHistogram:
					count += len(d.ExponentialHistogram.DataPoints)
				case *metricsv1.Metric_Summary:
					count += len(d.Summary.DataPoints)
				}
			}
		}
	}
	return count
}
