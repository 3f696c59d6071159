package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/pkg/logger"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type errorHandler interface {
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

type Middleware struct {
	AuthClient      tokenVerifier
	ResponseHandler errorHandler
}

func NewMiddleware(client *auth.Client, rh errorHandler) *Middleware {
	return &Middleware{AuthClient: client, ResponseHandler: rh}
}

// context key
type contextKey string

const UIDKey contextKey = "uid"

func withUID(r *http.Request, uid string) *http.Request {
	_, ctx := logger.With(r.Context(), "uid", uid)
	ctx = context.WithValue(ctx, UIDKey, uid)
	return r.WithContext(ctx)
}

// FirebaseAuth verifies the bearer ID token and stores its uid in the
// request context.
func (m *Middleware) FirebaseAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		header := r.Header.Get("Authorization")
		if header == "" {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("missing Authorization header"))
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("invalid Authorization header"))
			return
		}

		token, err := m.AuthClient.VerifyIDToken(r.Context(), parts[1])
		if err != nil {
			log.Debug("id token rejected", "error", err)
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("invalid or expired token"))
			return
		}

		next.ServeHTTP(w, withUID(r, token.UID))
	})
}

// LocalUID runs every request as uid. Used when authentication is disabled.
func LocalUID(uid string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, withUID(r, uid))
		})
	}
}

// Helper to extract UID
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}
