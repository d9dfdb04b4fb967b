package router

import "strings"

// Method is an HTTP request method. All is only meaningful on routes,
// where it matches every request method.
type Method string

const (
	GET     Method = "GET"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	PATCH   Method = "PATCH"
	OPTIONS Method = "OPTIONS"
	HEAD    Method = "HEAD"
	All     Method = "ALL"
)

// Known reports whether m is one of the request methods above.
func (m Method) Known() bool {
	switch m {
	case GET, POST, PUT, DELETE, PATCH, OPTIONS, HEAD:
		return true
	}
	return false
}

// accepts reports whether a route registered with m serves a request
// made with method req.
func (m Method) accepts(req Method) bool {
	return m == All || m == req
}

// Header maps header names to values. Keys are case-sensitive and each
// key holds a single value; setting a key again replaces it.
type Header map[string]string

func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[key]
}

// Lookup is Get with a presence flag.
func (h Header) Lookup(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	v, ok := h[key]
	return v, ok
}

func (h Header) Set(key, value string) {
	if h == nil {
		return
	}
	h[key] = value
}

func (h Header) Del(key string) {
	if h == nil {
		return
	}
	delete(h, key)
}

// GetFold finds key ignoring ASCII case. If several keys match, which one
// is returned is unspecified.
func (h Header) GetFold(key string) string {
	if v, ok := h[key]; ok {
		return v
	}
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// Clone returns a copy of h.
func (h Header) Clone() Header {
	c := make(Header, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
