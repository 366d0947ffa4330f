// Package auth implements the admin gate: password check at login, signed
// bearer tokens, and verification of those tokens on admin routes.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier decides whether a presented admin password is correct.
type PasswordVerifier interface {
	Verify(password string) bool
}

type plainVerifier struct {
	secret []byte
}

// NewPlainVerifier compares passwords byte-for-byte against a shared secret.
func NewPlainVerifier(secret string) PasswordVerifier {
	return &plainVerifier{secret: []byte(secret)}
}

func (v *plainVerifier) Verify(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), v.secret) == 1
}

type bcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier checks passwords against a bcrypt hash.
func NewBcryptVerifier(hash string) PasswordVerifier {
	return &bcryptVerifier{hash: []byte(hash)}
}

func (v *bcryptVerifier) Verify(password string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
}

// VerifierFromConfig prefers the bcrypt hash when one is configured.
func VerifierFromConfig(password, hash string) PasswordVerifier {
	if hash != "" {
		return NewBcryptVerifier(hash)
	}
	return NewPlainVerifier(password)
}
