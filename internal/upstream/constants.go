package upstream

import "time"

// Circuit breaker settings
const (
	BreakerMaxHalfOpenRequests = 3
	BreakerInterval            = time.Minute
	BreakerOpenTimeout         = 30 * time.Second
	BreakerMinRequests         = 5
	BreakerFailureRatio        = 0.6
)

// Client defaults
const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "green-terrace/1.0 (+https://github.com/nikhil-r0/Green-Terrace)"
	MaxResponseBytes = 4 << 20
)

// Breaker state names used in logs and metrics
const (
	StateClosed   = "closed"
	StateHalfOpen = "half-open"
	StateOpen     = "open"
	StateUnknown  = "unknown"
)
