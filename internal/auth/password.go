package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier checks a supplied password against the stored credential.
type PasswordVerifier interface {
	Verify(stored, supplied string) bool
}

// PlainVerifier compares the stored value verbatim in constant time. The
// users table currently holds plaintext senha values, so this is the active
// scheme; storing hashes instead requires a data migration first.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptVerifier treats the stored value as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// VerifierForScheme maps the PASSWORD_SCHEME setting to a verifier.
// Unknown values fall back to the plaintext scheme the stored data uses.
func VerifierForScheme(scheme string) PasswordVerifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
