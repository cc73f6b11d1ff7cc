// Package csrf issues and checks the double submit tokens that protect the
// state changing requests of a dashboard client.
//
// A token is "<mac>.<nonce>", both base64url without padding, where mac is
// an HMAC-SHA256 over the client id and the nonce.
package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// MinKeyLength is the shortest secret accepted for signing tokens.
	MinKeyLength = 32

	nonceLength = 32
)

var ErrKeyTooShort = fmt.Errorf("csrf secret must be at least %d bytes", MinKeyLength)

var encoding = base64.RawURLEncoding

// CheckKey reports whether key is long enough to sign tokens.
func CheckKey(key []byte) error {
	if len(key) < MinKeyLength {
		return ErrKeyTooShort
	}

	return nil
}

// NewToken binds a fresh token to clientID.
func NewToken(clientID string, key []byte) (string, error) {
	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("reading csrf nonce: %w", err)
	}

	return encoding.EncodeToString(sign(clientID, nonce, key)) + "." + encoding.EncodeToString(nonce), nil
}

// Validate reports whether token was issued for clientID with key.
func Validate(token, clientID string, key []byte) bool {
	macPart, noncePart, ok := strings.Cut(token, ".")
	if !ok || macPart == "" || noncePart == "" {
		return false
	}

	mac, err := encoding.DecodeString(macPart)
	if err != nil {
		return false
	}

	nonce, err := encoding.DecodeString(noncePart)
	if err != nil {
		return false
	}

	return hmac.Equal(mac, sign(clientID, nonce, key))
}

// sign length-prefixes both parts so that no two (id, nonce) pairs share a
// message.
func sign(clientID string, nonce, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	_, _ = fmt.Fprintf(h, "%d!%s!%d!", len(clientID), clientID, len(nonce))
	h.Write(nonce)

	return h.Sum(nil)
}
