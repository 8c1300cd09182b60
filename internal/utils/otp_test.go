package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTPCode(t *testing.T) {
	code, err := GenerateOTPCode(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)

	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", code)
	}
}

func TestGenerateOTPCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateOTPCode(6)
		assert.NoError(t, err)
		seen[code] = true
	}
	// 20 identical draws from a million-value space means a broken generator
	assert.Greater(t, len(seen), 1)
}
