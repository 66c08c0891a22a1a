package middleware

import (
	"context"
	"time"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// Context keys for storing values in request context.
const (
	// StartTimeKey stores the request start time for latency calculation.
	StartTimeKey contextKey = "start_time"

	// routeKey stores the *routeInfo filled in once the router has matched.
	routeKey contextKey = "route"
)

// UnmatchedRoute labels requests that matched no route.
const UnmatchedRoute = "unmatched"

// routeInfo carries the matched route template back out of the router.
// The router hands handlers a copy of the request, so a pointer is needed
// for middleware outside the router to see the match.
type routeInfo struct {
	template string
}

func withRouteInfo(ctx context.Context) (context.Context, *routeInfo) {
	info := &routeInfo{}
	return context.WithValue(ctx, routeKey, info), info
}

func getRouteInfo(ctx context.Context) *routeInfo {
	info, _ := ctx.Value(routeKey).(*routeInfo)
	return info
}

// GetStartTime extracts the request start time from the context.
// Returns zero time if not found.
func GetStartTime(ctx context.Context) time.Time {
	if startTime, ok := ctx.Value(StartTimeKey).(time.Time); ok {
		return startTime
	}
	return time.Time{}
}
