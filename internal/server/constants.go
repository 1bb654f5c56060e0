package server

import (
	"time"

	"golang.org/x/time/rate"
)

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"

	LogMsgInvalidTrustedProxy = "Ignoring invalid trusted proxy"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Server limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second
	// WriteTimeout leaves room for the upstream calls of one recommendation
	WriteTimeout = 60 * time.Second
	IdleTimeout  = 120 * time.Second
)

// Client rate limiting
const (
	// DefaultRequestBurst is how many requests one client may send at once
	DefaultRequestBurst = 50
	// FailedAuthAlertThreshold is the failed attempts per window that trigger an alert
	FailedAuthAlertThreshold = 5
	// ClientStateTTL is how long a client's failed auth count and token bucket are kept
	ClientStateTTL = 5 * time.Minute
	// MaxTrackedClients bounds the per-client state cache
	MaxTrackedClients = 10000
)

// DefaultRequestRate allows a sustained 1000 requests per 5 minutes per client
var DefaultRequestRate = rate.Every(ClientStateTTL / 1000)
