package helper

import (
	"crypto/rand"
	"encoding/hex"
)

// NewTableSlug returns the random token embedded in a table's QR code.
// 16 bytes of entropy keeps the slug unguessable.
func NewTableSlug() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
