package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestStringChain_CPF(t *testing.T) {
	check := stringChain(func(c *validator.StringChain[sample]) { c.CPF() })

	t.Run("accepts formatted and bare numbers", func(t *testing.T) {
		assert.Empty(t, check("529.982.247-25"))
		assert.Empty(t, check("52998224725"))
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		assert.Equal(t, []string{validator.CodeCPF}, codes(check("529.982.247-26")))
		assert.Equal(t, []string{validator.CodeCPF}, codes(check("529.982.247-15")))
	})

	t.Run("rejects repeated digits and bad lengths", func(t *testing.T) {
		for _, v := range []string{"111.111.111-11", "00000000000", "5299822472", "529982247251", ""} {
			assert.Equal(t, []string{validator.CodeCPF}, codes(check(v)), v)
		}
	})

	t.Run("rejects unexpected characters", func(t *testing.T) {
		assert.Equal(t, []string{validator.CodeCPF}, codes(check("529a982.247-25")))
	})

	t.Run("renders message", func(t *testing.T) {
		fs := check("123")
		require.Len(t, fs, 1)
		assert.Equal(t, "'value' is not a valid CPF.", fs[0].Message)
	})
}

func TestStringChain_CNPJ(t *testing.T) {
	check := stringChain(func(c *validator.StringChain[sample]) { c.CNPJ() })

	t.Run("accepts formatted and bare numbers", func(t *testing.T) {
		assert.Empty(t, check("11.222.333/0001-81"))
		assert.Empty(t, check("11222333000181"))
	})

	t.Run("rejects wrong check digits", func(t *testing.T) {
		assert.Equal(t, []string{validator.CodeCNPJ}, codes(check("11.222.333/0001-82")))
		assert.Equal(t, []string{validator.CodeCNPJ}, codes(check("11.222.333/0001-71")))
	})

	t.Run("rejects repeated digits and bad lengths", func(t *testing.T) {
		for _, v := range []string{"00.000.000/0000-00", "1122233300018", ""} {
			assert.Equal(t, []string{validator.CodeCNPJ}, codes(check(v)), v)
		}
	})
}
