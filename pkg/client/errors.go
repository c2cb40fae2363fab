package client

import (
	"errors"
	"fmt"
)

// ErrEmptyBaseURL is returned by New when no base URL is given.
var ErrEmptyBaseURL = errors.New("base url is required")

var errTrailingData = errors.New("unexpected data after JSON value")

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, string(e.Body))
}
