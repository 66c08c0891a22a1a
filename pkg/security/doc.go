/*
Package security groups the gateway's access control.

  - auth: the Authorizer strategies and the middleware guarding protected routes
  - secrets: file-backed secret loading for the API key

The only credential the gateway knows is a single shared API key, supplied
either inline (API_GATEWAY_API_KEY) or as a mounted file
(API_GATEWAY_API_KEY_FILE).
*/
package security
