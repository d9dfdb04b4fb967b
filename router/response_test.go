package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// sink is an in-memory byte-stream sink.
type sink struct {
	bytes.Buffer
	closed int
}

func (s *sink) Close() error {
	s.closed++
	return nil
}

func TestResponse_Bodies(t *testing.T) {
	cases := []struct {
		name string
		body Body
		want string
	}{
		{"none", nil, "HTTP/1.1 404 Not Found\r\nContent-Length: 0\r\n\r\n"},
		{"text", Text("héllo"), "HTTP/1.1 404 Not Found\r\nContent-Length: 6\r\nContent-Type: text/plain\r\n\r\nhéllo"},
		{"empty text", Text(""), "HTTP/1.1 404 Not Found\r\nContent-Length: 0\r\nContent-Type: text/plain\r\n\r\n"},
		{"binary", Binary{0, 1, 2}, "HTTP/1.1 404 Not Found\r\nContent-Length: 3\r\nContent-Type: application/octet-stream\r\n\r\n\x00\x01\x02"},
		{"json", JSON(map[string]any{"b": 1, "a": "<x>"}), "HTTP/1.1 404 Not Found\r\nContent-Length: 17\r\nContent-Type: application/json\r\n\r\n{\"a\":\"<x>\",\"b\":1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &sink{}
			w := NewResponse(s)
			if err := w.NotFound(tc.body); err != nil {
				t.Fatalf("NotFound: %v", err)
			}
			if got := s.String(); got != tc.want {
				t.Fatalf("wire=%q\nwant=%q", got, tc.want)
			}
			if s.closed != 1 {
				t.Fatalf("closed=%d", s.closed)
			}
		})
	}
}

func TestResponse_Headers(t *testing.T) {
	s := &sink{}
	w := NewResponse(s)
	w.AddHeader("X-Keep", "1")
	w.AddHeader("X-Drop", "1")
	w.RemoveHeader("X-Drop")
	w.AddHeader("Content-Type", "stale")
	if err := w.Send(201, nil, Header{"X-Extra": "2"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := "HTTP/1.1 201 Created\r\nContent-Length: 0\r\nX-Extra: 2\r\nX-Keep: 1\r\n\r\n"
	if got := s.String(); got != want {
		t.Fatalf("wire=%q\nwant=%q", got, want)
	}
	if w.Status() != 201 || !w.Sent() {
		t.Fatalf("status=%d sent=%v", w.Status(), w.Sent())
	}
}

func TestResponse_ResetHeadersAndUnknownStatus(t *testing.T) {
	s := &sink{}
	w := NewResponse(s)
	w.AddHeader("X-Gone", "1")
	w.ResetHeaders()
	if err := w.Send(299, Text("ok"), nil); err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := "HTTP/1.1 299 Unknown Status\r\nContent-Length: 2\r\nContent-Type: text/plain\r\n\r\nok"
	if got := s.String(); got != want {
		t.Fatalf("wire=%q", got)
	}
}

func TestResponse_DoubleSend(t *testing.T) {
	s := &sink{}
	w := NewResponse(s)
	if err := w.OK(Text("first")); err != nil {
		t.Fatalf("OK: %v", err)
	}
	n := s.Len()
	if err := w.OK(Text("second")); !errors.Is(err, ErrResponseSent) {
		t.Fatalf("second send err=%v", err)
	}
	if s.Len() != n || s.closed != 1 {
		t.Fatalf("second send touched sink: len %d->%d closed=%d", n, s.Len(), s.closed)
	}
}

func TestResponse_EncodeError(t *testing.T) {
	s := &sink{}
	w := NewResponse(s)
	if err := w.OK(JSON(make(chan int))); err == nil {
		t.Fatal("expected encode error")
	}
	if w.Sent() || s.Len() != 0 {
		t.Fatal("failed encode must not send")
	}
	if err := w.Send(500, nil, nil); err != nil {
		t.Fatalf("Send after encode error: %v", err)
	}
}

func TestResponse_JSONRoundTrip(t *testing.T) {
	in := map[string]any{"name": "ann", "tags": []any{"a", "b"}, "n": 3.5, "nested": map[string]any{"ok": true}}
	s := &sink{}
	if err := NewResponse(s).OK(JSON(in)); err != nil {
		t.Fatalf("OK: %v", err)
	}
	r, _ := ParseRequest(s.Bytes())
	if !r.HasBody {
		t.Fatal("no body in response bytes")
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(r.Body), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip: %v != %v", out, in)
	}
}
