package util

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
)

// NewSecretToken returns a random URL-safe token suitable for the webhook secret header.
func NewSecretToken() (token string, err error) {
	secret := make([]byte, binary.MaxVarintLen64)
	_, err = rand.Read(secret)
	if err == nil {
		token = base64.RawURLEncoding.EncodeToString(secret)
	}
	return
}
