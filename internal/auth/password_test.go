package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPlainVerifier(t *testing.T) {
	v := PlainVerifier{}
	if !v.Verify("123456", "123456") {
		t.Error("Verify() = false for matching passwords")
	}
	if v.Verify("123456", "1234567") {
		t.Error("Verify() = true for mismatched passwords")
	}
	if v.Verify("123456", "") {
		t.Error("Verify() = true for empty supplied password")
	}
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh4"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword() error = %v", err)
	}
	v := BcryptVerifier{}
	if !v.Verify(string(hash), "s3nh4") {
		t.Error("Verify() = false for matching hash")
	}
	if v.Verify(string(hash), "wrong") {
		t.Error("Verify() = true for mismatched hash")
	}
}

func TestVerifierForScheme(t *testing.T) {
	if _, ok := VerifierForScheme("bcrypt").(BcryptVerifier); !ok {
		t.Error(`VerifierForScheme("bcrypt") is not a BcryptVerifier`)
	}
	if _, ok := VerifierForScheme("plain").(PlainVerifier); !ok {
		t.Error(`VerifierForScheme("plain") is not a PlainVerifier`)
	}
	if _, ok := VerifierForScheme("").(PlainVerifier); !ok {
		t.Error(`VerifierForScheme("") should fall back to PlainVerifier`)
	}
}
