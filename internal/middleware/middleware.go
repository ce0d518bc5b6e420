// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request-scoped logging, New Relic tracing, CORS, rate
// limiting, upload size limits and panic recovery. The global error handler
// that renders every failure as the JSON error envelope lives here too.
package middleware
