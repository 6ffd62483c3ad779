package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const metricsPrefix = "bst_"

var operationsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bst_operations_total",
	Help: "Number of tree operations by kind and outcome",
}, []string{"op", "outcome"})

func recordOperation(op, outcome string) {
	operationsCounter.WithLabelValues(op, outcome).Inc()
}

// 以prometheus文本格式输出本包的指标
func WriteMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), metricsPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
