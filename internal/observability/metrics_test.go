package observability

import (
	"testing"
	"time"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("wireservd", "GET", "/health", 200, 12*time.Millisecond)
	RecordGraphDecode("wireservd", "ok", 42)
	RecordGraphDecode("wireservd", "truncated", 0)
	RecordGraphEncode("wireservd", "ok")
}
