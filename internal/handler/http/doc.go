// Package http exposes the marketplace REST API on a chi router.
//
// Requests pass through trace id, access log and gzip middleware. Bearer
// tokens are checked by auth, optionalAuth and requireRole before the
// listing, contact and payment handlers delegate to the service layer.
// Provider callbacks are authenticated by their body signature instead.
// Service errors are translated to statuses by errorStatusMap.
package http
