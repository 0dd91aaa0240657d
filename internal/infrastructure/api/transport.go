package api

import (
	"net/http"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token, if any
type TokenSource interface {
	Token() string
}

// authTransport is the server bearer-token middleware mirrored to the client
// side: every outgoing request carries the session's token when one exists,
// and is forwarded unmodified otherwise. It reads the token at send time, so
// a completed store transition is always reflected in the next request. No
// retries, no response inspection.
type authTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func newAuthTransport(tokens TokenSource, next http.RoundTripper) *authTransport {
	return &authTransport{tokens: tokens, next: next}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-Id", uuid.New().String())
	if token := t.tokens.Token(); token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(clone)
}
