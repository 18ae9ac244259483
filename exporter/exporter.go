package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/golang/protobuf/proto"
	logger "github.com/zerok-ai/zk-utils-go/logs"
	logsv1 "go.opentelemetry.io/proto/otlp/logs/v1"
	tracev1 "go.opentelemetry.io/proto/otlp/trace/v1"
	"google.golang.org/protobuf/encoding/protojson"
	protov2 "google.golang.org/protobuf/proto"

	promMetrics "github.com/zerok-ai/zk-otel-datagen/metrics"
)

var exporterLogTag = "exporter"

// protojson inserts insignificant whitespace that varies between runs, so
// every JSON export is normalized through encoding/json before it is written.
// Field names stay camelCase and unset fields are omitted, matching the OTLP
// JSON convention.
var jsonMarshalOptions = protojson.MarshalOptions{}

// WriteJSON writes one document as a human-readable JSON file with 2-space
// indentation.
func WriteJSON(data protov2.Message, outputPath string) error {
	raw, err := jsonMarshalOptions.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", outputPath, err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indenting %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return err
	}
	promMetrics.TotalFilesWritten.WithLabelValues("json").Inc()
	return nil
}

// WriteJSONL writes a list of documents as one compact JSON object per line.
func WriteJSONL[T protov2.Message](docs []T, outputPath string) error {
	var buf bytes.Buffer
	for _, doc := range docs {
		raw, err := jsonMarshalOptions.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", outputPath, err)
		}
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("compacting %s: %w", outputPath, err)
		}
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return err
	}
	promMetrics.TotalFilesWritten.WithLabelValues("jsonl").Inc()
	return nil
}

// WriteProto writes one document as a protobuf binary file.
func WriteProto(data proto.Message, outputPath string) error {
	raw, err := proto.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, raw, 0644); err != nil {
		return err
	}
	promMetrics.TotalFilesWritten.WithLabelValues("pb").Inc()
	return nil
}

// WriteLogsProto merges a list of log documents into a single container
// message and writes one binary encoding of it, not a sequence of
// length-prefixed messages. An empty list writes nothing.
func WriteLogsProto(docs []*logsv1.LogsData, outputPath string) error {
	if len(docs) == 0 {
		logger.Warn(exporterLogTag, "No log documents to export, skipping ", outputPath)
		return nil
	}
	combined := &logsv1.LogsData{}
	for _, doc := range docs {
		combined.ResourceLogs = append(combined.ResourceLogs, doc.ResourceLogs...)
	}
	return WriteProto(combined, outputPath)
}

// WriteTracesProto merges a list of trace documents into a single container
// message, mirroring WriteLogsProto.
func WriteTracesProto(docs []*tracev1.TracesData, outputPath string) error {
	if len(docs) == 0 {
		logger.Warn(exporterLogTag, "No trace documents to export, skipping ", outputPath)
		return nil
	}
	combined := &tracev1.TracesData{}
	for _, doc := range docs {
		combined.ResourceSpans = append(combined.ResourceSpans, doc.ResourceSpans...)
	}
	return WriteProto(combined, outputPath)
}
