package solana

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrefix(t *testing.T) {
	require.NoError(t, ValidatePrefix("Sol"))
	require.NoError(t, ValidatePrefix(strings.Repeat("z", MaxAddressLen)))

	require.ErrorIs(t, ValidatePrefix(""), ErrEmptyPrefix)

	var invalid *InvalidBase58Error
	err := ValidatePrefix("S0I")
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []rune{'0', 'I'}, invalid.Chars)

	var tooLong *PrefixTooLongError
	err = ValidatePrefix(strings.Repeat("z", MaxAddressLen+1))
	require.True(t, errors.As(err, &tooLong))
}

func TestValidatePrefixes(t *testing.T) {
	require.Error(t, ValidatePrefixes(nil))
	require.NoError(t, ValidatePrefixes([]string{"AB", "AB", "zz"}))

	err := ValidatePrefixes([]string{"AB", "O0", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPrefix)
	assert.Contains(t, err.Error(), "O0")
}

func TestInvalidBase58Chars(t *testing.T) {
	assert.Empty(t, InvalidBase58Chars("123abcXYZ"))
	assert.Equal(t, []rune{'O', '0'}, InvalidBase58Chars("SOL0"))
	assert.False(t, IsValidBase58("hello world"))
}

func TestEstimateAttempts(t *testing.T) {
	assert.InDelta(t, 58.0, EstimateAttempts([]string{"A"}), 1e-9)
	assert.InDelta(t, 3364.0, EstimateAttempts([]string{"AB"}), 1e-9)
	assert.InDelta(t, 29.0, EstimateAttempts([]string{"A", "B"}), 1e-9)
	assert.True(t, math.IsInf(EstimateAttempts(nil), 1))
}
