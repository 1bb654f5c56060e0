package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimitMiddleware_BurstThenReject(t *testing.T) {
	// zero refill leaves only the burst
	h := RateLimitMiddleware(NewClientIPResolver(nil), NewClientGuard(rate.Limit(0), 5))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgTooManyRequests)
}

func TestRateLimitMiddleware_LimitsArePerClient(t *testing.T) {
	guard := NewClientGuard(rate.Limit(0), 1)
	h := RateLimitMiddleware(NewClientIPResolver(nil), guard)(okHandler())

	status := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, status("10.1.1.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, status("10.1.1.1:1001"))
	assert.Equal(t, http.StatusOK, status("10.1.1.2:1000"))
	assert.Equal(t, 2, guard.Tracked())
}

// Clients behind a trusted proxy are limited by their forwarded address, not the proxy's.
func TestRateLimitMiddleware_BehindTrustedProxy(t *testing.T) {
	h := RateLimitMiddleware(NewClientIPResolver([]string{"10.0.0.0/8"}), NewClientGuard(rate.Limit(0), 1))(okHandler())

	status := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:443"
		req.Header.Set(HeaderForwardedFor, client)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, status("203.0.113.1"))
	assert.Equal(t, http.StatusOK, status("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, status("203.0.113.1"))
}

func TestClientGuard_ConcurrentBurst(t *testing.T) {
	guard := NewClientGuard(rate.Limit(0), 20)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.Allow("172.16.0.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(20), allowed.Load())
	assert.Equal(t, 1, guard.Tracked())
}

func TestClientGuard_DefaultRateAllowsBurst(t *testing.T) {
	guard := newGuard()
	for i := 0; i < DefaultRequestBurst; i++ {
		require.True(t, guard.Allow("172.16.0.1"))
	}
}
