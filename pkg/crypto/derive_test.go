package crypto

import (
	"errors"
	"strings"
	"testing"

	"sharedcrypto/pkg/crypto/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCredentials(t *testing.T) {
	creds, err := DeriveCredentials("correct-horse-battery", "saltsaltsaltsalt")
	require.NoError(t, err)

	assert.Len(t, creds.Key, 32)
	assert.Len(t, creds.IV, 16)
	assert.False(t, creds.Empty())
}

func TestDeriveCredentials_Deterministic(t *testing.T) {
	first, err := DeriveCredentials("correct-horse-battery", "saltsaltsaltsalt")
	require.NoError(t, err)

	second, err := DeriveCredentials("correct-horse-battery", "saltsaltsaltsalt")
	require.NoError(t, err)

	assert.Equal(t, first.Key, second.Key, "same password and salt must derive the same key")
	assert.Equal(t, first.IV, second.IV, "same password and salt must derive the same IV")
}

func TestDeriveCredentials_DistinctInputs(t *testing.T) {
	base, err := DeriveCredentials("correct-horse-battery", "saltsaltsaltsalt")
	require.NoError(t, err)

	otherPassword, err := DeriveCredentials("correct-horse-staple!", "saltsaltsaltsalt")
	require.NoError(t, err)

	otherSalt, err := DeriveCredentials("correct-horse-battery", "pepperpepperpepper")
	require.NoError(t, err)

	assert.NotEqual(t, base.Key, otherPassword.Key)
	assert.NotEqual(t, base.Key, otherSalt.Key)
	assert.NotEqual(t, base.IV, otherPassword.IV)
	assert.NotEqual(t, base.IV, otherSalt.IV)
}

func TestDeriveCredentials_Validation(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		salt     string
		field    string
	}{
		{
			name:     "empty password",
			password: "",
			salt:     "saltsaltsaltsalt",
			field:    "password",
		},
		{
			name:     "short password",
			password: "short",
			salt:     "saltsaltsaltsalt",
			field:    "password",
		},
		{
			name:     "eleven character password",
			password: "elevenchars",
			salt:     "saltsaltsaltsalt",
			field:    "password",
		},
		{
			name:     "overlong password",
			password: strings.Repeat("p", 61),
			salt:     "saltsaltsaltsalt",
			field:    "password",
		},
		{
			name:     "empty salt",
			password: "correct-horse-battery",
			salt:     "",
			field:    "salt",
		},
		{
			name:     "short salt",
			password: "correct-horse-battery",
			salt:     "tiny",
			field:    "salt",
		},
		{
			name:     "overlong salt",
			password: "correct-horse-battery",
			salt:     strings.Repeat("s", 61),
			field:    "salt",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DeriveCredentials(tc.password, tc.salt)
			require.Error(t, err)

			var cfgErr types.ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected a ConfigError, got %T", err)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestDeriveCredentials_BoundaryLengths(t *testing.T) {
	// 12 and 60 characters are both inside the bounds.
	twelve := strings.Repeat("a", 12)
	sixty := strings.Repeat("b", 60)

	creds, err := DeriveCredentials(twelve, sixty)
	require.NoError(t, err)
	assert.False(t, creds.Empty())

	creds, err = DeriveCredentials(sixty, twelve)
	require.NoError(t, err)
	assert.False(t, creds.Empty())
}
