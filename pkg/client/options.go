package client

import (
	"time"

	"github.com/bft-labs/blockinfo/pkg/log"
)

// DefaultTimeout bounds a request made through the default *http.Client.
const DefaultTimeout = 15 * time.Second

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient HTTPClient
	logger     log.Logger
	timeout    time.Duration
}

func defaultOptions() options {
	return options{
		logger:  log.NewNoopLogger(),
		timeout: DefaultTimeout,
	}
}

// WithHTTPClient replaces the default *http.Client. The timeout option is
// ignored when a custom client is supplied.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTimeout sets the timeout of the default *http.Client.
// Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}
