package metrics

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	// TotalRecordsGenerated counts generated records per signal type
	// (log records, metric data points, spans).
	TotalRecordsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zk_datagen_records_generated_total",
		Help: "Total records generated per signal type.",
	},
		[]string{"signal"})

	// TotalFilesWritten counts fixture files written per export format.
	TotalFilesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zk_datagen_files_written_total",
		Help: "Total fixture files written per export format.",
	},
		[]string{"format"})
)

// DumpText renders the default registry in the prometheus text format. The
// generator is a short-lived process with no scrape endpoint, so verbose runs
// log this at exit instead.
func DumpText() (string, error) {
	metricFamilies, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
