package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Recommendation metric names
const (
	MetricNameRecommendationsTotal   = "recommendations_total"
	MetricNameRecommendationDuration = "recommendation_duration_seconds"
	MetricNamePlantsAllocated        = "plants_allocated_total"
	MetricNameBudgetUsed             = "recommendation_budget_used"
)

// Upstream metric names
const (
	MetricNameUpstreamRequests       = "upstream_requests_total"
	MetricNameUpstreamDuration       = "upstream_request_duration_seconds"
	MetricNameCircuitBreakerState    = "circuit_breaker_state"
	MetricNameCircuitBreakerChanges  = "circuit_breaker_transitions_total"
	MetricNameCircuitBreakerFailures = "circuit_breaker_consecutive_failures"
)

// Cache metric names
const (
	MetricNameCacheLookups = "cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Recommendation metric help text
const (
	HelpTextRecommendationsTotal   = "Total number of recommendation requests by outcome"
	HelpTextRecommendationDuration = "Recommendation latency in seconds, collaborator calls included"
	HelpTextPlantsAllocated        = "Total number of plants allocated, by category"
	HelpTextBudgetUsed             = "Budget used per successful recommendation"
)

// Upstream metric help text
const (
	HelpTextUpstreamRequests       = "Total number of outbound requests by upstream and result"
	HelpTextUpstreamDuration       = "Outbound request latency in seconds"
	HelpTextCircuitBreakerState    = "Circuit breaker state (0=closed, 1=half-open, 2=open)"
	HelpTextCircuitBreakerChanges  = "Total number of circuit breaker state transitions"
	HelpTextCircuitBreakerFailures = "Current consecutive failures seen by a circuit breaker"
)

// Cache metric help text
const (
	HelpTextCacheLookups = "Total number of cache lookups by cache and result"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelOutcome  = "outcome"
	LabelCategory = "category"
	LabelUpstream = "upstream"
	LabelResult   = "result"
	LabelFrom     = "from"
	LabelTo       = "to"
	LabelCache    = "cache"
)

// Label values
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
	ResultHit      = "hit"
	ResultMiss     = "miss"
	OutcomeOK      = "ok"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets covers the expected HTTP latency range in seconds
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

	// UpstreamLatencyBuckets is wider since weather and geocoding calls cross the internet
	UpstreamLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20}

	// BudgetBuckets spans small balcony budgets to large rooftop budgets
	BudgetBuckets = []float64{0, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 50000}
)
