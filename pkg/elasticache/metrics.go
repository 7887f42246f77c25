package elasticache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRetryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecinv_api_retry_total",
			Help: "Total number of throttle retries per API operation",
		},
		[]string{"operation"},
	)

	paramCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecinv_param_cache_lookups_total",
			Help: "Parameter group cache lookups",
		},
		[]string{"result"}, // hit or miss
	)
)
