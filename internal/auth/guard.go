package auth

import (
	"strings"

	"dqx0.com/go/minirouter/router"
)

// SubjectKey is the request extension key set by a passing guard.
const SubjectKey = "auth.subject"

// BearerGuard returns a handler that lets the chain continue only when the
// request carries "Authorization: Bearer <token>" matching encodedHash.
// Otherwise it answers 401 and stops the chain.
func BearerGuard(encodedHash string, logger router.Logger) router.Handler {
	return router.HandlerFunc(func(w *router.Response, r *router.Request) (router.Outcome, error) {
		token, ok := bearerToken(r.Header.GetFold("Authorization"))
		if !ok {
			return router.Stop, w.Send(401, router.Text("missing bearer token"), nil)
		}
		if err := VerifyToken(encodedHash, token); err != nil {
			if logger != nil {
				logger.Logf(router.LevelWarn, "rejected token for %s %s: %v", r.Method, r.Path, err)
			}
			return router.Stop, w.Send(401, router.Text("invalid token"), nil)
		}
		r.Set(SubjectKey, "admin")
		return router.Continue, nil
	})
}

func bearerToken(v string) (string, bool) {
	const prefix = "Bearer "
	if len(v) <= len(prefix) || !strings.EqualFold(v[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(v[len(prefix):])
	return tok, tok != ""
}
