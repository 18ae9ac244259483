package generator

import (
	"math"
)

// EstimateRecordCount maps a target output size in megabytes to a record count
// using a fixed average-bytes-per-record heuristic. The result is an
// approximation: actual file size depends on attribute cardinality and
// encoding overhead.
func EstimateRecordCount(sizeMB float64, avgRecordBytes int) int {
	targetBytes := sizeMB * 1024 * 1024
	count := int(math.Floor(targetBytes / float64(avgRecordBytes)))
	if count < 1 {
		return 1
	}
	return count
}
