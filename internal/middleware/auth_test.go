package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/review-dashboard/internal/response"
)

type stubVerifier struct {
	uid       string
	err       error
	lastToken string
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	s.lastToken = idToken
	if s.err != nil {
		return nil, s.err
	}
	return &auth.Token{UID: s.uid}, nil
}

func captureUID(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = UID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestFirebaseAuthValidToken(t *testing.T) {
	verifier := &stubVerifier{uid: "uid-123"}
	m := &Middleware{AuthClient: verifier, ResponseHandler: response.New(nil)}

	var uid string
	req := httptest.NewRequest(http.MethodGet, "/api/filters", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rr := httptest.NewRecorder()
	m.FirebaseAuth(captureUID(&uid)).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected request to pass, got %d", rr.Code)
	}
	if uid != "uid-123" || verifier.lastToken != "token-abc" {
		t.Fatalf("unexpected uid %q token %q", uid, verifier.lastToken)
	}
}

func TestFirebaseAuthRejects(t *testing.T) {
	tests := map[string]struct {
		header string
		err    error
	}{
		"missing header": {header: ""},
		"wrong scheme":   {header: "Basic abc"},
		"bad token":      {header: "Bearer nope", err: errors.New("expired")},
	}
	for name, tt := range tests {
		m := &Middleware{AuthClient: &stubVerifier{uid: "uid", err: tt.err}, ResponseHandler: response.New(nil)}

		var uid string
		req := httptest.NewRequest(http.MethodGet, "/api/filters", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rr := httptest.NewRecorder()
		m.FirebaseAuth(captureUID(&uid)).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, rr.Code)
		}
		var body response.ErrorResponse
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil || body.Code != "unauthorized" {
			t.Errorf("%s: expected unauthorized error envelope, got %+v %v", name, body, err)
		}
		if uid != "" {
			t.Errorf("%s: next handler should not run", name)
		}
	}
}

func TestLocalUID(t *testing.T) {
	var uid string
	rr := httptest.NewRecorder()
	LocalUID("local-user")(captureUID(&uid)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if uid != "local-user" {
		t.Fatalf("expected local uid, got %q", uid)
	}
}
