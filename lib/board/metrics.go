package board

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// track counts one completed operation. Failures are counted separately per
// error kind so a metrics dump shows what callers actually run into.
func track(op string, err error) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`noticehub_ops_total{op=%q}`, op)).Inc()
	if err != nil {
		metrics.GetOrCreateCounter(fmt.Sprintf(`noticehub_op_errors_total{op=%q,kind=%q}`, op, CodeOf(err).String())).Inc()
	}
}
