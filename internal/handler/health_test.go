package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-r0/Green-Terrace/internal/database"
)

type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

type stubCategories struct{ err error }

func (s stubCategories) Categories(context.Context) ([]string, error) {
	return []string{"Vegetable"}, s.err
}

func getHealth(t *testing.T, h http.Handler, path string) (int, HealthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleHealthz(t *testing.T) {
	code, body := getHealth(t, HandleHealthz(), "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, HealthResponse{Status: HealthStatusOK}, body)
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		usePool    bool
		catalogErr error
		wantCode   int
		wantMsg    string
	}{
		{name: "postgres catalog ready", usePool: true, wantCode: http.StatusOK},
		{name: "database down", usePool: true, pingErr: assert.AnError, wantCode: http.StatusServiceUnavailable, wantMsg: "database connection failed"},
		{name: "database ping timed out", usePool: true, pingErr: context.DeadlineExceeded, wantCode: http.StatusServiceUnavailable, wantMsg: "database connection failed"},
		{name: "file catalog ready", wantCode: http.StatusOK},
		{name: "catalog file missing", catalogErr: errors.New("open configs/plants.csv: no such file"), wantCode: http.StatusServiceUnavailable, wantMsg: "catalog unavailable"},
		{name: "database checked before catalog", usePool: true, pingErr: assert.AnError, catalogErr: assert.AnError, wantCode: http.StatusServiceUnavailable, wantMsg: "database connection failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pool database.Pool
			var mockDB *MockDBPool
			if tt.usePool {
				mockDB = &MockDBPool{}
				mockDB.On("Ping", mock.Anything).Return(tt.pingErr)
				pool = mockDB
			}

			h := HandleReadyz(pool, CatalogChecker{Catalog: stubCategories{err: tt.catalogErr}})
			code, body := getHealth(t, h, "/readyz")

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, body.Message)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, HealthStatusOK, body.Status)
			} else {
				assert.Equal(t, HealthStatusUnavailable, body.Status)
			}
			if mockDB != nil {
				mockDB.AssertExpectations(t)
			}
		})
	}
}

func TestHandleReadyz_ChecksRunUnderDeadline(t *testing.T) {
	var sawDeadline bool
	check := checkerFunc(func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return nil
	})

	code, _ := getHealth(t, HandleReadyz(nil, check), "/readyz")

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, sawDeadline)
}

func TestHandleVersion(t *testing.T) {
	t.Run("build variable wins", func(t *testing.T) {
		prev := Version
		Version = "1.4.2"
		t.Cleanup(func() { Version = prev })
		t.Setenv("VERSION", "from-env")

		w := httptest.NewRecorder()
		HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

		var info VersionInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "1.4.2", info.Version)
		assert.Contains(t, info.GoVersion, "go")
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("VERSION", "from-env")
		assert.Equal(t, "from-env", getVersionInfo())
	})
}
