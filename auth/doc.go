// Package auth provides the authentication methods the delivery pipeline
// composes: a no-op method, static header-key and cookie methods, and a
// rotating access/refresh token pair with coalesced (single-flight)
// credential refresh.
package auth
