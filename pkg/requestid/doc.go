// Package requestid assigns a correlation ID to every HTTP request and makes
// it available through the request context and structured logs.
package requestid
