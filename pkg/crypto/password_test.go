package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("anujr3259")
	require.NoError(t, err)
	require.NotEqual(t, "anujr3259", hash)
	require.True(t, CheckPassword("anujr3259", hash))
	require.False(t, CheckPassword("wrong", hash))
}

func TestHashPassword_Error(t *testing.T) {
	orig := bcryptGenerateFromPassword
	defer func() { bcryptGenerateFromPassword = orig }()
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("cost out of range")
	}
	_, err := HashPassword("x")
	require.Error(t, err)
}

func TestGenerateOTPCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code %q not numeric", code)
		}
		seen[code] = true
	}
	// 50 draws from a million values colliding every time is not credible.
	require.Greater(t, len(seen), 1)
}

func TestGenerateSessionTokenID(t *testing.T) {
	tok, err := GenerateSessionTokenID()
	require.NoError(t, err)
	require.Len(t, tok, 32)

	other, err := GenerateSessionTokenID()
	require.NoError(t, err)
	require.NotEqual(t, tok, other)
}

func TestGenerateRandomToken_Error(t *testing.T) {
	orig := randomRead
	defer func() { randomRead = orig }()
	randomRead = func([]byte) (int, error) { return 0, errors.New("entropy gone") }
	_, err := GenerateRandomToken(16)
	require.Error(t, err)
}
