package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Recommendation Metrics
var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecommendationsTotal,
			Help: HelpTextRecommendationsTotal,
		},
		[]string{LabelOutcome},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecommendationDuration,
			Help:    HelpTextRecommendationDuration,
			Buckets: UpstreamLatencyBuckets,
		},
	)

	PlantsAllocated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsAllocated,
			Help: HelpTextPlantsAllocated,
		},
		[]string{LabelCategory},
	)

	BudgetUsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBudgetUsed,
			Help:    HelpTextBudgetUsed,
			Buckets: BudgetBuckets,
		},
	)
)

// Upstream Metrics
var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRequests,
			Help: HelpTextUpstreamRequests,
		},
		[]string{LabelUpstream, LabelResult},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameUpstreamDuration,
			Help:    HelpTextUpstreamDuration,
			Buckets: UpstreamLatencyBuckets,
		},
		[]string{LabelUpstream},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCircuitBreakerState,
			Help: HelpTextCircuitBreakerState,
		},
		[]string{LabelUpstream},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCircuitBreakerChanges,
			Help: HelpTextCircuitBreakerChanges,
		},
		[]string{LabelUpstream, LabelFrom, LabelTo},
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCircuitBreakerFailures,
			Help: HelpTextCircuitBreakerFailures,
		},
		[]string{LabelUpstream},
	)
)

// Cache Metrics
var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelCache, LabelResult},
	)
)

// RecordCacheLookup counts a hit or miss for the named cache
func RecordCacheLookup(cache string, hit bool) {
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	CacheLookups.WithLabelValues(cache, result).Inc()
}
