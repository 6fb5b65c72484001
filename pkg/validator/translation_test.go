package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestDefaultTranslation(t *testing.T) {
	v := validator.New[customer]()
	validator.RuleForString(v, "email", func(c customer) string { return c.Email }).
		NotEmpty().
		Email()

	t.Run("switching the default language changes new messages", func(t *testing.T) {
		require.NoError(t, i18n.SetLanguage("pt-BR"))
		t.Cleanup(func() { require.NoError(t, i18n.SetLanguage("en")) })

		fs := v.Failures(customer{})
		require.Len(t, fs, 2)
		assert.Equal(t, "'email' não pode ser vazio.", fs[0].Message)
		assert.Equal(t, "'email' não é um endereço de email válido.", fs[1].Message)
	})

	t.Run("produced failures do not change when tables change", func(t *testing.T) {
		before := v.Failures(customer{})

		i18n.Merge("en", i18n.Table{"validation.not_empty": "{PropertyName} is required"})
		t.Cleanup(func() { i18n.SetDefault(nil) })

		after := v.Failures(customer{})
		assert.Equal(t, "'email' must not be empty.", before[0].Message)
		assert.Equal(t, "email is required", after[0].Message)
	})

	t.Run("override message ignores the table", func(t *testing.T) {
		v := validator.New[customer]()
		validator.RuleForString(v, "email", func(c customer) string { return c.Email }).
			NotEmpty(validator.WithMessage("Please enter your email"))

		i18n.Replace("en", i18n.Table{"validation.not_empty": "replaced"})
		t.Cleanup(func() { i18n.SetDefault(nil) })

		fs := v.Failures(customer{})
		require.Len(t, fs, 1)
		assert.Equal(t, "Please enter your email", fs[0].Message)
	})
}
