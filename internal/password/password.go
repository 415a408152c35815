// Package password generates the short credentials handed to participants
// at registration.
package password

import (
	"crypto/rand"
	"fmt"
)

// Lowercase letters and digits only; uppercase is deliberately excluded so
// the password survives being read aloud or typed on a phone.
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random password of n characters.
func Generate(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
