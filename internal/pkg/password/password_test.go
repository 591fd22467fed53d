//go:build unit

package password_test

import (
	"strings"
	"testing"

	"charter-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("reel-it-in-42")
	require.NoError(t, err)
	assert.NotEqual(t, "reel-it-in-42", hash)

	assert.NoError(t, password.ComparePassword(hash, "reel-it-in-42"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashPassword_Length(t *testing.T) {
	_, err := password.HashPassword(strings.Repeat("k", password.MaxBytes))
	require.NoError(t, err)

	_, err = password.HashPassword(strings.Repeat("k", password.MaxBytes+1))
	assert.ErrorIs(t, err, password.ErrTooLong)
}

func TestComparePassword_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("hash", ""), password.ErrInvalidPassword)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := password.ComparePassword("not-a-bcrypt-hash", "reel-it-in-42")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrComparisonFailed)
}

func TestCompareDecoy(t *testing.T) {
	assert.NotPanics(t, func() {
		password.CompareDecoy("reel-it-in-42")
		password.CompareDecoy("")
	})
}
