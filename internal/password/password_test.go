package password

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndCharset(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]+$`)
	for i := 0; i < 50; i++ {
		pw, err := Generate(5)
		require.NoError(t, err)
		assert.Len(t, pw, 5)
		assert.Regexp(t, pattern, pw)
	}
}

func TestGenerateZeroLength(t *testing.T) {
	pw, err := Generate(0)
	require.NoError(t, err)
	assert.Empty(t, pw)
}
