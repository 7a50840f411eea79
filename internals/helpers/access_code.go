package helper

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// GenerateAccessCode returns a URL-safe opaque bearer token for shareable
// congregation / missionary-portal links. Regenerating a code invalidates
// every previously distributed link.
func GenerateAccessCode() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateVerificationCode returns a 6-digit numeric code for missionary
// self-registration email verification.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
