package handlers

import (
	"context"
	"net/url"

	"storefront-hq/gateway/pkg/downstream"
)

// Downstream is the client a proxy handler forwards to.
// *downstream.Client satisfies it.
type Downstream interface {
	Name() string
	Do(ctx context.Context, method, path string, query url.Values, payload any) (*downstream.Result, error)
}

// TrackingFunc returns the tracking id attached to composed price responses.
// It is called once per request.
type TrackingFunc func() string
