package inventory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	regionQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ecinv_region_query_duration_seconds",
			Help:    "Time taken to query one region end to end",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	regionQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecinv_region_query_total",
			Help: "Total number of regional query attempts",
		},
		[]string{"status"}, // success or error
	)

	recordCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ecinv_report_records",
			Help: "Number of cluster records in the last collected report",
		},
	)
)
