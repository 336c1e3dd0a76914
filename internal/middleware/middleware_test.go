package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/travel-backend/pkg/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRestrictOrigin(t *testing.T) {
	h := RestrictOrigin("http://localhost:3000/")(okHandler)

	tests := []struct {
		name   string
		origin string
		status int
	}{
		{name: "no origin", origin: "", status: http.StatusOK},
		{name: "allowed", origin: "http://localhost:3000", status: http.StatusOK},
		{name: "other", origin: "http://evil.example", status: http.StatusForbidden},
		{name: "other port", origin: "http://localhost:4000", status: http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.status {
				t.Fatalf("status mismatch: got %d want %d", rr.Code, tc.status)
			}
		})
	}
}

func TestRestrictOriginWithoutFrontend(t *testing.T) {
	h := RestrictOrigin("")(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with no frontend configured, got %d", rr.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS("http://localhost:3000")(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/ask", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin mismatch: %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("allow credentials mismatch: %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != http.MethodPost {
		t.Fatalf("allow methods mismatch: %q", got)
	}
}

func TestLoggerMiddlewareStoresLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	m := NewLoggerMiddleware(base)

	h := chimiddleware.RequestID(m.LoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside")
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/ask", nil))

	out := buf.String()
	if !strings.Contains(out, "path=/ask") || !strings.Contains(out, "request_id=") {
		t.Fatalf("request attributes missing: %s", out)
	}
}
