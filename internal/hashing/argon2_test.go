package hashing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewArgon2Hasher()

	encoded, err := h.Hash("pass_1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
	assert.NotContains(t, encoded, "pass_1234")

	ok, err := h.Verify("pass_1234", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := NewArgon2Hasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	h := NewArgon2Hasher()

	for _, encoded := range []string{"", "plaintext", "$bcrypt$something", "$argon2id$v=19$m=65536,t=3,p=2$only-one-part"} {
		_, err := h.Verify("pass", encoded)
		assert.Error(t, err, encoded)
	}
}
