package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"

	"github.com/GregMSThompson/ledger-backend/internal/response"
	"github.com/GregMSThompson/ledger-backend/pkg/logger"
)

type stubVerifier struct {
	token *auth.Token
	err   error
	got   string
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	s.got = idToken
	return s.token, s.err
}

func newAuthMiddleware(v *stubVerifier) *Middleware {
	return NewMiddleware(v, response.New(slog.New(logger.NewTestHandler(slog.LevelInfo))))
}

func TestFirebaseAuthSetsIdentity(t *testing.T) {
	v := &stubVerifier{token: &auth.Token{UID: "uid-1", Claims: map[string]interface{}{"email": "jane@example.com"}}}
	m := newAuthMiddleware(v)

	var uid, email string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid = UID(r.Context())
		email = Email(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rr := httptest.NewRecorder()
	m.FirebaseAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "token-abc", v.got)
	assert.Equal(t, "uid-1", uid)
	assert.Equal(t, "jane@example.com", email)
}

func TestFirebaseAuthRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
	}{
		{"missing header", "", nil},
		{"wrong scheme", "Basic abc", nil},
		{"invalid token", "Bearer bad", errors.New("expired")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAuthMiddleware(&stubVerifier{err: tt.err})
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			m.FirebaseAuth(next).ServeHTTP(rr, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
