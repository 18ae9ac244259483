package model

import (
	logsv1 "go.opentelemetry.io/proto/otlp/logs/v1"
)

var severityTextMap = map[logsv1.SeverityNumber]string{
	logsv1.SeverityNumber_SEVERITY_NUMBER_DEBUG: "DEBUG",
	logsv1.SeverityNumber_SEVERITY_NUMBER_INFO:  "INFO",
	logsv1.SeverityNumber_SEVERITY_NUMBER_WARN:  "WARN",
	logsv1.SeverityNumber_SEVERITY_NUMBER_ERROR: "ERROR",
}

// SeverityText maps a severity number to its display text. Unmapped values
// fall back to "INFO" silently; the generator never fails on severity.
func SeverityText(severity logsv1.SeverityNumber) string {
	if text, ok := severityTextMap[severity]; ok {
		return text
	}
	return "INFO"
}
