// Package password wraps bcrypt hashing so callers never handle salts
// or digest formats directly.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of the plaintext. A fresh salt is
// generated per call and embedded in the digest.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest. A malformed
// digest yields false, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
