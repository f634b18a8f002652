package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"book-digest/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// requestSeries returns the http_requests_total lines of a registry scrape
func requestSeries(t *testing.T) []string {
	t.Helper()
	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status %d", rr.Code)
	}

	var out []string
	for _, line := range strings.Split(rr.Body.String(), "\n") {
		if strings.HasPrefix(line, "book_digest_http_requests_total{") {
			out = append(out, line)
		}
	}
	return out
}

func TestMetrics_UnmatchedRoutesShareOneSeries(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/reviews/{id}", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/random-0-xyz", "/random-1-xyz", "/reviews/7"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	var unmatched int
	for _, line := range requestSeries(t) {
		if strings.Contains(line, "/random-") {
			t.Fatalf("raw path leaked into a label: %s", line)
		}
		if strings.Contains(line, `route="unmatched"`) {
			unmatched++
			if !strings.Contains(line, `status="404"`) || !strings.HasSuffix(line, " 2") {
				t.Fatalf("expected both misses counted under one 404 series, got %s", line)
			}
		}
	}
	if unmatched != 1 {
		t.Fatalf("expected exactly 1 unmatched series, got %d", unmatched)
	}

	found := false
	for _, line := range requestSeries(t) {
		if strings.Contains(line, `route="/reviews/{id}"`) {
			found = true
		}
	}
	if !found {
		t.Fatalf("matched route not labelled with its pattern")
	}
}
