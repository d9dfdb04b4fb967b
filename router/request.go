package router

import (
	"context"
	"errors"

	"dqx0.com/go/minirouter/router/internal/http1"
)

// Request represents one HTTP request parsed from a single received chunk.
//
// Everything except Params and the extension values is fixed once
// ParseRequest returns. Params is filled by the router after a match.
type Request struct {
	// ID is generated per request and is also available from Context.
	ID       string
	Method   Method
	Path     string
	RawQuery string
	Proto    string
	Header   Header
	// Query holds percent-decoded query values; a key without "=" maps to "".
	Query map[string]string
	// Params holds values bound from {name} segments of the matched route.
	Params map[string]string
	// Body is everything after the first blank line. HasBody tells an
	// empty body apart from no body at all.
	Body    string
	HasBody bool
	// Raw is the whole message as received.
	Raw string

	ctx context.Context
	ext map[string]any
}

// ParseRequest builds a Request from data, which must hold the complete
// message. Parsing is relaxed and always yields a usable Request. The
// error, when non-nil, wraps ErrMalformedRequest if the request line was
// short and one *QueryError per dropped query pair.
func ParseRequest(data []byte) (*Request, error) {
	pr, qerr := http1.ParseRequest(data)
	r := &Request{
		ID:       genID(),
		Method:   Method(pr.Method),
		Path:     pr.Path,
		RawQuery: pr.RawQuery,
		Proto:    pr.Proto,
		Header:   Header(pr.Header),
		Query:    pr.Query,
		Params:   map[string]string{},
		Body:     pr.Body,
		HasBody:  pr.HasBody,
		Raw:      pr.Raw,
		ext:      map[string]any{},
	}
	var err error
	if pr.Malformed {
		err = ErrMalformedRequest
	}
	return r, errors.Join(err, qerr)
}

// Context returns the request's context. If nil, returns Background.
func (r *Request) Context() context.Context {
	if r == nil || r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext returns a shallow copy of r with its context changed to ctx.
// The copy shares Params and extension values with r.
func WithContext(r *Request, ctx context.Context) *Request {
	if r == nil {
		return nil
	}
	r2 := *r
	r2.ctx = ctx
	return &r2
}

// Param returns the path parameter bound to name, or "".
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// QueryValue returns the decoded query value for key and whether it was present.
func (r *Request) QueryValue(key string) (string, bool) {
	v, ok := r.Query[key]
	return v, ok
}

// Set stores a value for later handlers in the same chain.
func (r *Request) Set(key string, value any) {
	if r.ext == nil {
		r.ext = make(map[string]any)
	}
	r.ext[key] = value
}

// Get returns a value stored with Set.
func (r *Request) Get(key string) (any, bool) {
	v, ok := r.ext[key]
	return v, ok
}
