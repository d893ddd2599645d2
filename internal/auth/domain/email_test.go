package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid addresses", func(t *testing.T) {
		for _, raw := range []string{
			"user@domain.com",
			"user+tag@domain.com",
			"first.last@sub.domain.org",
			"UPPER@DOMAIN.COM",
		} {
			email, err := NewEmail(raw)
			require.NoError(t, err, "address %q", raw)
			require.Equal(t, raw, email.String())
			require.False(t, email.IsZero())
		}
	})

	t.Run("trims surrounding whitespace before validating", func(t *testing.T) {
		email, err := NewEmail("  user@domain.com  ")
		require.NoError(t, err)
		require.Equal(t, "user@domain.com", email.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			_, err := NewEmail(raw)
			require.ErrorIs(t, err, ErrEmailEmpty, "address %q", raw)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{
			"invalid-email",
			"@domain.com",
			"user@domain", // no TLD
			"user@",
			"user @domain.com",
		} {
			_, err := NewEmail(raw)
			require.ErrorIs(t, err, ErrEmailFormat, "address %q", raw)
		}
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.True(t, Email{}.IsZero())
		require.Empty(t, Email{}.String())
	})
}
