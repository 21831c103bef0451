package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^ORD\d{6}[A-Z0-9]{3}$`)
	for i := 0; i < 100; i++ {
		code := GenerateOrderCode()
		assert.Len(t, code, 12)
		assert.Regexp(t, re, code)
	}
}

func TestGenerateOrderCodeVaries(t *testing.T) {
	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		seen[GenerateOrderCode()]++
	}
	// the random suffix makes same-millisecond collisions unlikely;
	// a couple in 200 draws is tolerable, mass duplication is a bug
	assert.Greater(t, len(seen), 190)
}
