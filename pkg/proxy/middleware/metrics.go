package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPRecorder receives one observation per completed request.
// *metrics.Collector satisfies it.
type HTTPRecorder interface {
	RecordHTTPRequest(route, method string, status int, duration time.Duration)
}

// MetricsMiddleware records request count and latency by route template.
// It must wrap the router; RouteMiddleware must be installed on the router
// itself so the matched template is known. Unmatched requests are labelled
// UnmatchedRoute. Latency is measured from the start time LoggingMiddleware
// stored in the context, or from entry when it is absent.
//
// Example usage:
//
//	router.Use(middleware.RouteMiddleware)
//	handler = middleware.MetricsMiddleware(collector)(router)
func MetricsMiddleware(recorder HTTPRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := GetStartTime(r.Context())
			if start.IsZero() {
				start = time.Now()
			}
			ctx, info := withRouteInfo(r.Context())
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r.WithContext(ctx))

			route := info.template
			if route == "" {
				route = UnmatchedRoute
			}
			recorder.RecordHTTPRequest(route, r.Method, rw.statusCode, time.Since(start))
		})
	}
}

// RouteMiddleware publishes the matched mux route template to MetricsMiddleware.
// Install it with router.Use; mux only runs it for matched routes.
func RouteMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info := getRouteInfo(r.Context()); info != nil {
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					info.template = tpl
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
