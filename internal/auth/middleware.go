package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated user id stored by Middleware.
func UserID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}

// Middleware wraps protected handlers: it verifies the Bearer token before
// delegating and stores the embedded user id in the request context. Every
// failure is answered with a uniform 401 and a short machine-readable
// message; the wrapped handler is never invoked.
func Middleware(svc *Service, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				logger.Debugw("auth rejected", "path", r.URL.Path, "err", err)
				writeUnauthorized(w, err)
				return
			}
			claims, err := svc.Verify(token)
			if err != nil {
				logger.Debugw("auth rejected", "path", r.URL.Path, "err", err)
				writeUnauthorized(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. The header
// must split into exactly two space-separated parts; the scheme word itself
// is not validated, matching the existing client contract.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrTokenMissing
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return "", ErrTokenMalformed
	}
	return parts[1], nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	msg := "Token inválido"
	switch err {
	case ErrTokenMissing:
		msg = "Token não fornecido"
	case ErrTokenMalformed:
		msg = "Token mal formatado"
	case ErrTokenExpired:
		msg = "Token expirado"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
