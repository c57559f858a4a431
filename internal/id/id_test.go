package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate("post")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "post-"))
	// NanoID default length is 21 characters plus prefix and separator.
	assert.Len(t, got, len("post-")+21)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		got, err := Generate("rec")
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate ID generated: %s", got)
		seen[got] = true
	}
}

func TestMustGenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		got := MustGenerate("user")
		assert.True(t, strings.HasPrefix(got, "user-"))
	})
}
