package localcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azlearn_cache_requests_total",
			Help: "Cache lookups by outcome",
		},
		[]string{"result"},
	)

	cacheWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azlearn_cache_writes_total",
			Help: "Cache writes by outcome",
		},
		[]string{"result"},
	)
)

func recordLookup(result string) {
	cacheRequests.WithLabelValues(result).Inc()
}

func recordWrite(ok bool) {
	if ok {
		cacheWrites.WithLabelValues("ok").Inc()
		return
	}
	cacheWrites.WithLabelValues("error").Inc()
}
