package middleware

import (
	"net/http"
	"time"

	"book-digest/pkg/metrics"
)

// Metrics records request count and latency per route
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)
		metrics.ObserveHTTP(routePattern(r), r.Method, rw.statusCode, time.Since(start))
	})
}
