package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/nikhil-r0/Green-Terrace/internal/logger"
)

// AuthMiddleware requires X-API-Key on non-public paths. An empty apiKey disables it.
func AuthMiddleware(apiKey string, clients ClientIPResolver, guard *ClientGuard) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clients.ClientIP(r)
			attempts := guard.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", got != "",
				"attempts", attempts)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RateLimitMiddleware rejects clients whose token bucket is empty with 429
func RateLimitMiddleware(clients ClientIPResolver, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(clients.ClientIP(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

type clientState struct {
	limiter    *rate.Limiter
	failedAuth int
}

// ClientGuard keeps per-client request budgets and failed authentication counts.
// State for a client expires ClientStateTTL after it was first seen.
type ClientGuard struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientState]
	limit   rate.Limit
	burst   int
}

// NewClientGuard gives each client a token bucket of burst requests refilled at limit per second
func NewClientGuard(limit rate.Limit, burst int) *ClientGuard {
	return &ClientGuard{
		clients: expirable.NewLRU[string, *clientState](MaxTrackedClients, nil, ClientStateTTL),
		limit:   limit,
		burst:   burst,
	}
}

// caller holds g.mu
func (g *ClientGuard) state(ip string) *clientState {
	s, ok := g.clients.Get(ip)
	if !ok {
		s = &clientState{limiter: rate.NewLimiter(g.limit, g.burst)}
		g.clients.Add(ip, s)
	}
	return s
}

// Allow takes one token from the client's bucket
func (g *ClientGuard) Allow(ip string) bool {
	g.mu.Lock()
	limiter := g.state(ip).limiter
	g.mu.Unlock()

	if limiter.Allow() {
		return true
	}
	slog.Warn(SecurityAlertHighRate, "ip", ip)
	return false
}

// RecordFailedAuth counts a rejected key and returns the client's count in the current window
func (g *ClientGuard) RecordFailedAuth(ip string) int {
	g.mu.Lock()
	s := g.state(ip)
	s.failedAuth++
	n := s.failedAuth
	g.mu.Unlock()

	if n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
	return n
}

// Tracked returns the number of clients with live state
func (g *ClientGuard) Tracked() int {
	return g.clients.Len()
}

// ClientIPResolver finds the address a request came from. X-Forwarded-For is
// only honoured when the direct peer is a trusted proxy.
type ClientIPResolver struct {
	proxies []netip.Prefix
}

// NewClientIPResolver parses trusted proxies given as addresses or CIDR ranges.
// Unparsable entries are logged and ignored.
func NewClientIPResolver(trusted []string) ClientIPResolver {
	var c ClientIPResolver
	for _, entry := range trusted {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			c.proxies = append(c.proxies, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			addr = addr.Unmap()
			c.proxies = append(c.proxies, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		slog.Warn(LogMsgInvalidTrustedProxy, "entry", entry)
	}
	return c
}

func (c ClientIPResolver) trusts(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range c.proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the peer address, or the rightmost forwarded hop when the peer is trusted
func (c ClientIPResolver) ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !c.trusts(host) {
		return host
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	hops := strings.Split(forwarded, ",")
	if hop := strings.TrimSpace(hops[len(hops)-1]); hop != "" {
		return hop
	}
	return host
}

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware sets browser hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range securityHeaders {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
