package router

import (
	"errors"

	"dqx0.com/go/minirouter/router/internal/http1"
)

var (
	ErrMalformedRequest = errors.New("router: malformed request line")
	ErrResponseSent     = errors.New("router: response already sent")
	ErrServerClosed     = errors.New("router: server closed")
)

// QueryError reports a query pair that was dropped because its value
// could not be percent-decoded.
type QueryError = http1.QueryError
