package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, buf.String(), `"status":409`)
	assert.Contains(t, buf.String(), `"path":"/orders/42"`)
	assert.Contains(t, buf.String(), `"request_id":`)
}

func TestLogger_Levels(t *testing.T) {
	testCases := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: `"level":"INFO"`},
		{status: http.StatusNotFound, wantLevel: `"level":"WARN"`},
		{status: http.StatusServiceUnavailable, wantLevel: `"level":"ERROR"`},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			h := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte("ok"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/orders/1/revert", nil)
			req.Header.Set("X-User", "alice")
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Contains(t, buf.String(), tc.wantLevel)
			assert.Contains(t, buf.String(), `"user":"alice"`)
			assert.Contains(t, buf.String(), `"bytes":2`)
		})
	}
}
