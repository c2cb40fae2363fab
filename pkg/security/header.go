package security

import "net/http"

// AuthorizationHeader is the header carrying the bearer token.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestConfig holds the per-request settings shared by every call.
type RequestConfig struct {
	Headers http.Header
}

// AddSecurityHeader returns a copy of base with the Authorization header
// derived from token. The base config is not modified. An empty token is
// forwarded as-is.
func AddSecurityHeader(base RequestConfig, token string) RequestConfig {
	headers := base.Headers.Clone()
	if headers == nil {
		headers = http.Header{}
	}
	headers.Set(AuthorizationHeader, BearerPrefix+token)
	return RequestConfig{Headers: headers}
}

// Apply sets every header from cfg on req, replacing existing values.
func Apply(req *http.Request, cfg RequestConfig) {
	for key, values := range cfg.Headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
}
