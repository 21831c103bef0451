package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const codeSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderCode builds a human-readable order code:
// "ORD" + 6 digits derived from the current time + 3 random
// uppercase alphanumerics. Uniqueness is enforced by the store;
// callers retry with a fresh code on collision.
func GenerateOrderCode() string {
	numeric := time.Now().UnixMilli() % 1000000
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = codeSuffixChars[rand.Intn(len(codeSuffixChars))]
	}
	return fmt.Sprintf("ORD%06d%s", numeric, suffix)
}
