package admin

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker decides whether a username/password pair belongs to the
// operator. It is injected into the gate so the credential source can be
// swapped for a real auth provider without touching the login flow.
type CredentialChecker interface {
	Check(username, password string) bool
}

// StaticCredentials checks against the configured operator pair. The password
// may be stored as a bcrypt hash; anything else is compared in constant time.
type StaticCredentials struct {
	username string
	password string
}

func NewStaticCredentials(username, password string) *StaticCredentials {
	return &StaticCredentials{username: username, password: password}
}

func (s *StaticCredentials) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if isBcryptHash(s.password) {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	return userOK && passOK
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
