package topics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flipword_store_operations_total",
			Help: "Backing store reads and writes by outcome",
		},
		[]string{"op", "result"},
	)

	revalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flipword_revalidations_total",
			Help: "Revalidation signals sent after topic writes",
		},
		[]string{"result"},
	)
)

func recordStoreOp(op, result string) {
	storeOperationsTotal.WithLabelValues(op, result).Inc()
}

func recordRevalidation(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	revalidationsTotal.WithLabelValues(result).Inc()
}
