package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/walrus-registry/internal/adapters/dto"
	outmocks "github.com/bnema/walrus-registry/internal/boundaries/out/mocks"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v2/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware_NilLimitersPassThrough(t *testing.T) {
	h := RateLimitMiddleware(nil, nil, nil, testLogger())(okHandler)

	for i := 0; i < 100; i++ {
		assert.Equal(t, http.StatusOK, serve(h, "192.168.1.1:1234", nil).Code)
	}
}

func TestRateLimitMiddleware_Allowed(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)

	global.EXPECT().Allow(mock.Anything, "global").Return(true)
	perIP.EXPECT().Allow(mock.Anything, "ip:192.168.1.100").Return(true)

	rec := serve(RateLimitMiddleware(global, perIP, nil, testLogger())(okHandler), "192.168.1.100:12345", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_GlobalLimitSkipsPerIP(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)

	global.EXPECT().Allow(mock.Anything, "global").Return(false)

	rec := serve(RateLimitMiddleware(global, perIP, nil, testLogger())(okHandler), "192.168.1.100:12345", nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	perIP.AssertNotCalled(t, "Allow", mock.Anything, mock.Anything)
}

func TestRateLimitMiddleware_PerIPLimit(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)

	global.EXPECT().Allow(mock.Anything, "global").Return(true)
	perIP.EXPECT().Allow(mock.Anything, "ip:192.168.1.100").Return(false)

	rec := serve(RateLimitMiddleware(global, perIP, nil, testLogger())(okHandler), "192.168.1.100:12345", nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "registry/2.0", rec.Header().Get("Docker-Distribution-API-Version"))

	var body dto.RegistryErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "TOOMANYREQUESTS", body.Errors[0].Code)
}

func TestRateLimitMiddleware_TrustedProxyKeysOnForwardedClient(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)
	trusted := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	global.EXPECT().Allow(mock.Anything, "global").Return(true)
	perIP.EXPECT().Allow(mock.Anything, "ip:203.0.113.50").Return(true)

	rec := serve(RateLimitMiddleware(global, perIP, trusted, testLogger())(okHandler),
		"10.0.0.5:1234", map[string]string{"X-Forwarded-For": "203.0.113.50"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_UntrustedForwardedHeaderIgnored(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)

	global.EXPECT().Allow(mock.Anything, "global").Return(true)
	perIP.EXPECT().Allow(mock.Anything, "ip:192.168.1.100").Return(true)

	rec := serve(RateLimitMiddleware(global, perIP, nil, testLogger())(okHandler),
		"192.168.1.100:1234", map[string]string{"X-Forwarded-For": "203.0.113.50"})

	assert.Equal(t, http.StatusOK, rec.Code)
}
