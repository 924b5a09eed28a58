package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tutoragent/NotesAPI/internal/config"
	"github.com/tutoragent/NotesAPI/internal/metrics"
	"github.com/tutoragent/NotesAPI/pkg/logger_i"
)

func counterValue(t *testing.T, path string, status int) float64 {
	t.Helper()
	return testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)))
}

func TestWrap_RecordsHandlerStatus(t *testing.T) {
	logger_i.Init()
	settings = config.Settings{} //no auth token, bypass

	handler := Wrap(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()

	before := counterValue(t, "/teapot", http.StatusTeapot)
	handler(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("Response code got %d, want %d", rec.Code, http.StatusTeapot)
	}
	if got := counterValue(t, "/teapot", http.StatusTeapot); got != before+1 {
		t.Errorf("http_requests_total not labelled with the handler status: %v -> %v", before, got)
	}
}

func TestWrap_CountsRejectedRequests(t *testing.T) {
	logger_i.Init()
	settings = config.Settings{AuthToken: "secret"}
	defer func() { settings = config.Settings{} }()

	handler := Wrap(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run for an unauthenticated request")
	})

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()

	before := counterValue(t, "/query", http.StatusUnauthorized)
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Response code got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := counterValue(t, "/query", http.StatusUnauthorized); got != before+1 {
		t.Errorf("Rejected request was not counted: %v -> %v", before, got)
	}
}

func TestIsValidBearerToken(t *testing.T) {
	settings = config.Settings{AuthToken: "secret"}
	defer func() { settings = config.Settings{} }()

	log := logger_i.NewLogger("test")

	tests := []struct {
		name   string
		header string
		valid  bool
	}{
		{"Valid token", "Bearer secret", true},
		{"Wrong token", "Bearer nope", false},
		{"No bearer prefix", "secret", false},
		{"Empty header", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidBearerToken(tt.header, log); got != tt.valid {
				t.Errorf("IsValidBearerToken(%q) = %v, want %v", tt.header, got, tt.valid)
			}
		})
	}
}
