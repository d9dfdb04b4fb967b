package http1

import (
	"bufio"
	"fmt"
	"sort"
)

// DefaultProto is written in the status line when the caller gives none.
const DefaultProto = "HTTP/1.1"

// WriteResponse writes a complete response: status line, one line per
// header (sorted by key so output is deterministic), a blank line and body.
// Headers with an invalid name are skipped.
func WriteResponse(bw *bufio.Writer, proto string, status int, hdr map[string]string, body []byte) error {
	if proto == "" {
		proto = DefaultProto
	}
	if _, err := fmt.Fprintf(bw, "%s %d %s\r\n", proto, status, Reason(status)); err != nil {
		return err
	}
	keys := make([]string, 0, len(hdr))
	for k := range hdr {
		if SanitizeHeaderKey(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", k, SanitizeHeaderValue(hdr[k])); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(bw, "\r\n"); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := bw.Write(body); err != nil {
			return err
		}
	}
	return nil
}

// UnknownReason is the reason phrase for codes outside the table.
const UnknownReason = "Unknown Status"

// Reason returns the reason phrase for code.
func Reason(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	default:
		return UnknownReason
	}
}
