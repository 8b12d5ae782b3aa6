// Package clientip extracts the real client IP address from HTTP requests,
// accounting for common proxy and CDN headers, and carries it through the
// request context so business logic never reads transport details directly.
package clientip
