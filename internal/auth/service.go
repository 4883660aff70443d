// Package auth issues and verifies the stateless session tokens that gate
// the protected endpoints. Tokens are self-contained HS256 JWTs; nothing is
// persisted server-side, so a token stays valid until its expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the session token lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

var (
	ErrTokenMissing   = errors.New("token não fornecido")
	ErrTokenMalformed = errors.New("token mal formatado")
	ErrTokenExpired   = errors.New("token expirado")
	ErrTokenInvalid   = errors.New("token inválido")
)

// Claims carries the identity embedded in a session token. The JSON keys
// are part of the wire contract consumed by the frontend.
type Claims struct {
	UserID int64  `json:"userId"`
	Tipo   string `json:"tipo"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a server-held secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. A zero ttl selects DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

func (s *Service) TTL() time.Duration { return s.ttl }

// Issue signs a token embedding the user identity, expiring TTL from now.
func (s *Service) Issue(userID int64, tipo, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Tipo:   tipo,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry. An elapsed expiry yields
// ErrTokenExpired; every other verification failure yields ErrTokenInvalid.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
