package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contenthub", Name: "http_requests_total", Help: "Number of handled HTTP requests by route, method and status."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "contenthub", Name: "http_request_duration_seconds", Help: "HTTP request latency by route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	AuthRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contenthub", Name: "auth_rejected_total", Help: "Number of requests rejected by the token gate by reason."},
		[]string{"reason"},
	)
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contenthub", Name: "cache_lookups_total", Help: "Number of cache lookups by key and result (hit|miss|error)."},
		[]string{"key", "result"},
	)
	WishlistDuplicates = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "contenthub", Name: "wishlist_duplicates_total", Help: "Number of wishlist additions rejected as duplicates."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(AuthRejected)
	reg.MustRegister(CacheLookups)
	reg.MustRegister(WishlistDuplicates)
}
