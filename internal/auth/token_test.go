package auth

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"dqx0.com/go/minirouter/router"
)

var testParams = Argon2idParams{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

func TestHashAndVerify(t *testing.T) {
	hash, err := HashToken("s3cret", testParams)
	if err != nil {
		t.Fatalf("HashToken: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("hash=%q", hash)
	}
	if err := VerifyToken(hash, "s3cret"); err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if err := VerifyToken(hash, "wrong"); !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("wrong token err=%v", err)
	}
	if err := VerifyToken("plain", "s3cret"); !errors.Is(err, ErrInvalidTokenHash) {
		t.Fatalf("bad hash err=%v", err)
	}
	bad := strings.Replace(hash, "v=19", "v=18", 1)
	if err := VerifyToken(bad, "s3cret"); !errors.Is(err, ErrIncompatibleTokenVersion) {
		t.Fatalf("version err=%v", err)
	}
}

type buffer struct{ bytes.Buffer }

func (*buffer) Close() error { return nil }

func TestBearerGuard(t *testing.T) {
	hash, err := HashToken("s3cret", testParams)
	if err != nil {
		t.Fatalf("HashToken: %v", err)
	}
	rt := router.New(nil)
	rt.Route(router.GET, "/admin", BearerGuard(hash, nil)).HandleFunc(
		func(w *router.Response, r *router.Request) (router.Outcome, error) {
			sub, _ := r.Get(SubjectKey)
			return router.Stop, w.OK(router.Text(sub.(string)))
		})

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing", "", "HTTP/1.1 401 Unauthorized\r\n"},
		{"wrong scheme", "Authorization: Basic abc\r\n", "HTTP/1.1 401 Unauthorized\r\n"},
		{"bad token", "Authorization: Bearer nope\r\n", "HTTP/1.1 401 Unauthorized\r\n"},
		{"ok", "authorization: Bearer s3cret\r\n", "HTTP/1.1 200 OK\r\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := router.ParseRequest([]byte("GET /admin HTTP/1.1\r\n" + tc.header + "\r\n"))
			out := &buffer{}
			if err := rt.Dispatch(context.Background(), router.NewResponse(out), req); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if !strings.HasPrefix(out.String(), tc.want) {
				t.Fatalf("response=%q", out.String())
			}
			if tc.name == "ok" && !strings.HasSuffix(out.String(), "admin") {
				t.Fatalf("response=%q", out.String())
			}
		})
	}
}
