package object

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	key, err := Key("student:42", "abc", "Jane_Doe_modern_Resume.pdf")
	require.NoError(t, err)
	parts := strings.Split(key, "/")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 64)
	assert.Equal(t, "abc_Jane_Doe_modern_Resume.pdf", parts[1])

	again, err := Key("student:42", "def", "x.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(again, parts[0]+"/"))

	other, err := Key("student:43", "abc", "x.pdf")
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(other, parts[0]+"/"))
}

func TestKeyRejectsBadNames(t *testing.T) {
	for _, name := range []string{"../etc/passwd", "  ", ""} {
		_, err := Key("student:42", "abc", name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}

	key, err := Key("student:42", "abc", `a/b\c.pdf`)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "/abc_a_b_c.pdf"))
}
