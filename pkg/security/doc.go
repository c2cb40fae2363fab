// Package security builds the authentication part of outgoing requests.
//
// The base request configuration (content type, any static headers) is
// owned by the caller. AddSecurityHeader layers the bearer token on top
// of it without touching the original:
//
//	base := security.RequestConfig{Headers: http.Header{}}
//	base.Headers.Set("Content-Type", "application/json")
//
//	cfg := security.AddSecurityHeader(base, token)
//	security.Apply(req, cfg)
package security
