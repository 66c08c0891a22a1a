// Gateway is a single-purpose HTTP API gateway for the storefront backends.
//
// It accepts client requests, optionally checks a static API key, forwards
// each request to the price, notification or analytics service, and maps the
// result back to the client.
//
// Usage:
//
//	# Start the gateway (same as "gateway serve")
//	gateway
//
//	# Print the effective configuration with secrets redacted
//	gateway config
//
//	# Show version information
//	gateway version
//
// Configuration is read from the environment (PRICE_SERVICE_URL,
// API_GATEWAY_API_KEY, ...) and optionally a YAML file named by
// GATEWAY_CONFIG_FILE.
package main

func main() {
	Execute()
}
