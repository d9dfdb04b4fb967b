package router

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"dqx0.com/go/minirouter/router/internal/http1"
)

// Response accumulates headers and sends exactly one response onto its
// sink. After Send the sink is closed and the Response is terminal.
type Response struct {
	// Proto is written in the status line; empty means HTTP/1.1.
	Proto string

	sink   io.WriteCloser
	hdr    Header
	status int
	sent   bool
}

// NewResponse returns a Response that writes to and then closes sink.
func NewResponse(sink io.WriteCloser) *Response {
	return &Response{sink: sink, hdr: Header{}}
}

// Header returns the live header map sent with the response.
func (w *Response) Header() Header {
	if w.hdr == nil {
		w.hdr = Header{}
	}
	return w.hdr
}

func (w *Response) AddHeader(key, value string) { w.Header().Set(key, value) }

func (w *Response) RemoveHeader(key string) { w.Header().Del(key) }

func (w *Response) ResetHeaders() { w.hdr = Header{} }

// Sent reports whether Send has been called successfully or has at least
// started writing.
func (w *Response) Sent() bool { return w.sent }

// Status returns the status code that was sent, or 0.
func (w *Response) Status() int { return w.status }

// Send merges headers into the response headers, sets Content-Type and
// Content-Length from body, writes the full response and closes the sink.
// A nil body sends Content-Length: 0 and no Content-Type. Calling Send
// again returns ErrResponseSent without touching the sink.
func (w *Response) Send(status int, body Body, headers Header) error {
	if w.sent {
		return ErrResponseSent
	}
	var payload []byte
	if body != nil {
		b, err := body.Encode()
		if err != nil {
			return fmt.Errorf("router: encode %s body: %w", body.ContentType(), err)
		}
		payload = b
	}

	h := w.Header()
	for k, v := range headers {
		h.Set(k, v)
	}
	if body != nil {
		h.Set("Content-Type", body.ContentType())
	} else {
		h.Del("Content-Type")
	}
	h.Set("Content-Length", strconv.Itoa(len(payload)))

	w.sent = true
	w.status = status
	if w.sink == nil {
		return nil
	}
	bw := bufio.NewWriter(w.sink)
	werr := http1.WriteResponse(bw, w.Proto, status, h, payload)
	if werr == nil {
		werr = bw.Flush()
	}
	return errors.Join(werr, w.sink.Close())
}

// OK sends a 200 response.
func (w *Response) OK(body Body) error { return w.Send(200, body, nil) }

// NotFound sends a 404 response.
func (w *Response) NotFound(body Body) error { return w.Send(404, body, nil) }
