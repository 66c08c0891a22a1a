/*
Package auth guards protected gateway routes with a static API key.

# Strategies

NewAuthorizer picks the strategy from configuration:

	authorizer := auth.NewAuthorizer(cfg.Security.APIKey)

An empty key yields AllowAll. Any other key yields a StaticKeyAuthorizer,
which compares the x-api-key header against the key in constant time.
A missing header and a mismatched header are both denied with an
*UnauthorizedError whose Reason tells them apart.

When the key lives in a mounted file, SecretKeyAuthorizer reads it from a
SecretSource on each request so rotation takes effect without a restart:

	provider, _ := secrets.NewFileProvider(dir, true)
	authorizer := auth.NewSecretKeyAuthorizer(provider, "api-key")

# Middleware

	mw := auth.NewMiddleware(authorizer, func(w http.ResponseWriter, r *http.Request, err error) {
		_ = proxy.WriteError(w, err)
	})
	router.Handle("/compose/product-price", mw.Handle(priceHandler))

Denied requests are logged at warn level with the reason, remote address
and path. Errors that are not denials, such as an unreadable key file, are
logged at error level. The presented key is never logged.
*/
package auth
