package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// NewOneTimeToken generates a random one-time secret and the hash under which it
// is stored. Only the hash is persisted; the raw secret is sent to the user once.
func NewOneTimeToken() (raw string, hash string, err error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}
	raw = hex.EncodeToString(buf)
	return raw, HashOneTimeToken(raw), nil
}

// HashOneTimeToken returns the storage hash of a one-time token secret.
func HashOneTimeToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// HashOrigin returns a one-way hash of a caller's network origin combined with a
// server secret, for abuse tracking without retaining the raw origin.
func HashOrigin(origin, secret string) string {
	sum := sha256.Sum256([]byte(origin + secret))
	return hex.EncodeToString(sum[:])
}
