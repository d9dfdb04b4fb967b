package http1

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	crlf          = "\r\n"
	bodySeparator = "\r\n\r\n"
	headerSep     = ": "
)

// ParsedRequest is a minimal representation parsed from one received chunk.
type ParsedRequest struct {
	Raw      string
	Method   string
	Target   string
	Path     string
	RawQuery string
	Proto    string
	Header   map[string]string
	Query    map[string]string
	Body     string
	HasBody  bool
	// Malformed is set when the request line had fewer than three tokens.
	Malformed bool
}

// QueryError reports a query pair whose value could not be percent-decoded.
type QueryError struct {
	Key string
	Raw string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("http1: query parameter %q: cannot decode %q: %v", e.Key, e.Raw, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ParseRequest parses a whole request message held in data. Parsing is
// relaxed: missing request-line tokens become empty strings and header
// lines without ": " are skipped. The returned error, if any, joins one
// *QueryError per query pair that was dropped; the request is still valid.
func ParseRequest(data []byte) (*ParsedRequest, error) {
	text := string(data)
	pr := &ParsedRequest{
		Raw:    text,
		Header: make(map[string]string),
		Query:  make(map[string]string),
	}

	lines := strings.Split(text, crlf)
	parts := strings.SplitN(lines[0], " ", 3)
	if len(parts) < 3 {
		pr.Malformed = true
	}
	for i, p := range parts {
		switch i {
		case 0:
			pr.Method = p
		case 1:
			pr.Target = p
		case 2:
			pr.Proto = p
		}
	}

	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		i := strings.Index(line, headerSep)
		if i < 0 {
			continue
		}
		k := line[:i]
		if k == "" {
			continue
		}
		pr.Header[k] = strings.TrimSpace(line[i+len(headerSep):])
	}

	pr.Path = pr.Target
	var errs []error
	if i := strings.IndexByte(pr.Target, '?'); i >= 0 {
		pr.Path = pr.Target[:i]
		pr.RawQuery = pr.Target[i+1:]
		errs = parseQuery(pr.Query, pr.RawQuery)
	}

	if i := strings.Index(text, bodySeparator); i >= 0 {
		pr.Body = text[i+len(bodySeparator):]
		pr.HasBody = true
	}
	return pr, errors.Join(errs...)
}

func parseQuery(dst map[string]string, raw string) []error {
	var errs []error
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		dv, err := url.PathUnescape(v)
		if err != nil {
			errs = append(errs, &QueryError{Key: k, Raw: v, Err: err})
			continue
		}
		dst[k] = dv
	}
	return errs
}
