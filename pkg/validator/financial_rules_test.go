package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestStringChain_CreditCard(t *testing.T) {
	check := stringChain(func(c *validator.StringChain[sample]) { c.CreditCard() })

	t.Run("accepts numbers passing the luhn check", func(t *testing.T) {
		for _, n := range []string{"4111111111111111", "4111 1111 1111 1111", "5500-0000-0000-0004", "378282246310005"} {
			assert.Empty(t, check(n), n)
		}
	})

	t.Run("rejects invalid numbers", func(t *testing.T) {
		for _, n := range []string{"4111111111111112", "1234", "4111a11111111111", "", "41111111111111111111"} {
			assert.Equal(t, []string{validator.CodeCreditCard}, codes(check(n)), n)
		}
	})
}

func TestNumberChain_PrecisionScale(t *testing.T) {
	t.Run("floats", func(t *testing.T) {
		check := floatChain(func(c *validator.NumberChain[sample, float64]) { c.PrecisionScale(4, 2) })

		for _, v := range []float64{0, 1.5, 12.34, -12.34, 0.01, 99.99} {
			assert.Empty(t, check(v), v)
		}
		for _, v := range []float64{123.4, 1.234, 100, -0.001} {
			assert.Equal(t, []string{validator.CodePrecisionScale}, codes(check(v)), v)
		}
	})

	t.Run("integers have no decimals", func(t *testing.T) {
		check := intChain(func(c *validator.NumberChain[sample, int]) { c.PrecisionScale(3, 0) })

		assert.Empty(t, check(999))
		assert.Empty(t, check(-999))
		assert.Len(t, check(1000), 1)
	})

	t.Run("renders expected precision and scale", func(t *testing.T) {
		check := floatChain(func(c *validator.NumberChain[sample, float64]) { c.PrecisionScale(4, 2) })

		fs := check(123.456)
		require.Len(t, fs, 1)
		assert.Equal(t, "'value' must not be more than 4 digits in total, with allowance for 2 decimals.", fs[0].Message)
	})

	t.Run("nullable variants", func(t *testing.T) {
		strict := nullableIntChain(func(c *validator.NullableNumberChain[sample, int]) { c.PrecisionScale(2, 0) })
		lenient := nullableIntChain(func(c *validator.NullableNumberChain[sample, int]) { c.PrecisionScaleOrNull(2, 0) })

		assert.Len(t, strict(nil), 1)
		assert.Empty(t, lenient(nil))
		assert.Empty(t, strict(ptr(42)))
		assert.Len(t, lenient(ptr(420)), 1)
	})
}
