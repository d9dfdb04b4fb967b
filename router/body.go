package router

import (
	"bytes"
	"encoding/json"
)

// Body is a response payload. The concrete kinds are Text, Binary and
// the value returned by JSON; each decides its own Content-Type and
// wire encoding.
type Body interface {
	ContentType() string
	Encode() ([]byte, error)
}

// Text is a UTF-8 text body sent as text/plain.
type Text string

func (Text) ContentType() string { return "text/plain" }

func (t Text) Encode() ([]byte, error) { return []byte(t), nil }

// Binary is a raw byte body sent as application/octet-stream.
type Binary []byte

func (Binary) ContentType() string { return "application/octet-stream" }

func (b Binary) Encode() ([]byte, error) { return b, nil }

type jsonBody struct {
	v any
}

// JSON wraps any JSON-serializable value as an application/json body.
// Map keys are emitted in sorted order.
func JSON(v any) Body { return jsonBody{v: v} }

func (jsonBody) ContentType() string { return "application/json" }

func (j jsonBody) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(j.v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
