package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOtp(t *testing.T) {
	t.Run("Generates fixed-width numeric codes", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			code, err := GenerateOtp(6)
			require.NoError(t, err)
			assert.Len(t, code, 6)
			for _, c := range code {
				assert.True(t, c >= '0' && c <= '9', "unexpected character %q in %q", c, code)
			}
		}
	})

	t.Run("Respects configured digit count", func(t *testing.T) {
		code, err := GenerateOtp(4)
		require.NoError(t, err)
		assert.Len(t, code, 4)

		code, err = GenerateOtp(8)
		require.NoError(t, err)
		assert.Len(t, code, 8)
	})

	t.Run("Invalid digit count", func(t *testing.T) {
		_, err := GenerateOtp(0)
		assert.Error(t, err)
	})
}

func TestHashAndVerifyOtp(t *testing.T) {
	code, err := GenerateOtp(6)
	require.NoError(t, err)

	hash, err := HashOtp(code)
	require.NoError(t, err)
	assert.NotEqual(t, code, hash)

	t.Run("Correct code verifies", func(t *testing.T) {
		assert.True(t, VerifyOtp(hash, code))
	})

	t.Run("Wrong code is rejected", func(t *testing.T) {
		assert.False(t, VerifyOtp(hash, "000000"))
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		other, err := HashOtp(code)
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
		assert.True(t, VerifyOtp(other, code))
	})
}
