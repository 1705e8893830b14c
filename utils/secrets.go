package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecret returns a password built from n bytes of
// cryptographic randomness, URL-safe base64 encoded.
func GenerateSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
