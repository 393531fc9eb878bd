package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/walrus-registry/internal/adapters/dto"
)

func testLogger() zerowrap.Logger {
	return zerowrap.New(zerowrap.Config{Level: "warn"})
}

func TestResponseWriter_CapturesStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	_, err := rw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rw.StatusCode())
	assert.Equal(t, int64(5), rw.BytesWritten())
}

func TestResponseWriter_DefaultStatus(t *testing.T) {
	rw := NewResponseWriter(httptest.NewRecorder())

	_, _ = rw.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, rw.StatusCode())
}

func TestRequestLogger_AttachesLoggerAndRequestID(t *testing.T) {
	var sawLogger bool
	handler := RequestLogger(testLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := zerowrap.FromCtx(r.Context())
		log.Debug().Msg("inside handler")
		sawLogger = true
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v2/app/blobs/uploads/", nil))

	assert.True(t, sawLogger)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Len(t, rec.Header().Get("X-Request-ID"), 32)
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	handler := RequestLogger(testLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v2/", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc123", rec.Header().Get("X-Request-ID"))
}

func TestPanicRecovery(t *testing.T) {
	handler := PanicRecovery(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.RegistryErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, dto.ErrCodeUnknown, body.Errors[0].Code)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mark("first"), mark("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
