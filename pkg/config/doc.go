// Package config provides configuration management for the storefront API gateway.
//
// Configuration is read once at startup and passed explicitly to the server;
// there is no package-level singleton. Every field has a default, so the
// gateway runs with an empty environment and points each downstream at a
// distinct localhost port.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from the YAML file named by GATEWAY_CONFIG_FILE, if set
//  3. Environment variable overrides
//  4. Derived defaults and validation (fails fast if invalid)
//
// # Environment Variables
//
//   - API_GATEWAY_SERVICE_NAME, ENV: service identity reported by /health
//   - PRICE_SERVICE_URL, NOTIFICATION_SERVICE_URL, ANALYTICS_SERVICE_URL: downstream base URLs
//   - ALLOWED_ORIGINS: comma-separated CORS origins ("*" allows any)
//   - API_GATEWAY_API_KEY: static key expected in the x-api-key header
//   - GATEWAY_HTTP_TIMEOUT: downstream call timeout in seconds
//   - TRACKING_ID: tracking id attached to composed price responses, read per request
//
// Listener, logging and metrics settings use the GATEWAY_ prefix; see load.go.
//
// # YAML File
//
//	service:
//	  name: "Storefront Gateway"
//	  env: "production"
//	downstreams:
//	  price_url: "http://price:8001"
//	  notification_url: "http://notification:8002"
//	  analytics_url: "http://analytics:8003"
//	  timeout: "20s"
//	cors:
//	  allowed_origins: ["https://shop.example.com"]
//	telemetry:
//	  logging:
//	    level: "debug"
//	    format: "text"
//
// # Validation
//
// All validation errors are collected and returned together as a
// ValidationError, so a misconfigured deployment reports every problem at once.
package config
