package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSalary(t *testing.T) {
	t.Parallel()

	t.Run("accepts boundaries inclusively", func(t *testing.T) {
		low, err := NewSalary("0")
		require.NoError(t, err)
		require.Equal(t, "0", low.String())

		high, err := NewSalary("15000000")
		require.NoError(t, err)
		require.Equal(t, "15000000", high.String())
	})

	t.Run("accepts decimals", func(t *testing.T) {
		s, err := NewSalary("1250.75")
		require.NoError(t, err)
		require.Equal(t, "1250.75", s.String())

		trimmed, err := NewSalary("2000.50")
		require.NoError(t, err)
		require.Equal(t, "2000.5", trimmed.String())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := NewSalary("-1")
		require.ErrorIs(t, err, ErrSalaryMin)

		_, err = NewSalary("-0.01")
		require.ErrorIs(t, err, ErrSalaryMin)
	})

	t.Run("rejects above maximum", func(t *testing.T) {
		_, err := NewSalary("15000000.01")
		require.ErrorIs(t, err, ErrSalaryMax)

		_, err = NewSalary("99999999")
		require.ErrorIs(t, err, ErrSalaryMax)
	})

	t.Run("rejects empty and garbage", func(t *testing.T) {
		for _, raw := range []string{"", "  ", "abc", "12abc"} {
			_, err := NewSalary(raw)
			require.ErrorIs(t, err, ErrSalaryEmpty, "input %q", raw)
		}
	})

	t.Run("rejects non-decimal numeric notation", func(t *testing.T) {
		for _, raw := range []string{"3/4", "2e6", "2E6", "1.5e2", "0x10", "1_000"} {
			_, err := NewSalary(raw)
			require.ErrorIs(t, err, ErrSalaryEmpty, "input %q", raw)
		}
	})

	t.Run("equality is numeric", func(t *testing.T) {
		a, err := NewSalary("100.00")
		require.NoError(t, err)
		b, err := NewSalary("100")
		require.NoError(t, err)
		require.True(t, a.Equal(b))

		c, err := NewSalary("101")
		require.NoError(t, err)
		require.False(t, a.Equal(c))
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.True(t, Salary{}.IsZero())
		require.Empty(t, Salary{}.String())
	})
}
