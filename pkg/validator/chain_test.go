package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type signup struct {
	Email    string
	Password string
	Invited  bool
	Code     string
}

func failing[T, P any](prop *validator.Property, code string) validator.Rule[T, P] {
	return validator.NewRule(prop, func(P, T) bool { return false }, code, nil)
}

func TestChain_Execute(t *testing.T) {
	t.Run("runs rules in order", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { return s.Email })
		chain.Add(failing[signup, string](chain.Property(), "first")).
			Add(failing[signup, string](chain.Property(), "second"))

		fs := chain.Execute(signup{})
		require.Len(t, fs, 2)
		assert.Equal(t, "first", fs[0].Code)
		assert.Equal(t, "second", fs[1].Code)
	})

	t.Run("stop on first failure returns only the first failure", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { return s.Email }).
			Cascade(validator.StopOnFirstFailure)
		chain.Add(failing[signup, string](chain.Property(), "first")).
			Add(failing[signup, string](chain.Property(), "second"))

		fs := chain.Execute(signup{})
		require.Len(t, fs, 1)
		assert.Equal(t, "first", fs[0].Code)
	})

	t.Run("returns empty failures for valid value", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { return s.Email }).
			Must(func(s string) bool { return s != "" })

		fs := chain.Execute(signup{Email: "a@b.co"})
		assert.NotNil(t, fs)
		assert.Empty(t, fs)
	})

	t.Run("ignores nil rules", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { return s.Email }).Add(nil)
		assert.Empty(t, chain.Execute(signup{}))
	})

	t.Run("selector runs once per execution", func(t *testing.T) {
		calls := 0
		chain := validator.NewChain("email", func(s signup) string {
			calls++
			return s.Email
		}).
			Must(func(string) bool { return false }).
			Must(func(string) bool { return false })

		chain.Execute(signup{})
		assert.Equal(t, 1, calls)
	})

	t.Run("selector panics propagate", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { panic("boom") }).
			Must(func(string) bool { return true })

		assert.PanicsWithValue(t, "boom", func() { chain.Execute(signup{}) })
	})

	t.Run("panics without selector", func(t *testing.T) {
		assert.Panics(t, func() { validator.NewChain[signup, string]("email", nil) })
	})
}

func TestChain_Options(t *testing.T) {
	t.Run("label is used as property name", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { return s.Email },
			validator.WithLabel("E-mail"))

		assert.Equal(t, "email", chain.Key())
		assert.Equal(t, "E-mail", chain.Property().DisplayName())
	})

	t.Run("key is used when label is empty", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { return s.Email })
		assert.Equal(t, "email", chain.Property().DisplayName())
	})

	t.Run("cascade option sets mode", func(t *testing.T) {
		chain := validator.NewChain("email", func(s signup) string { return s.Email },
			validator.WithCascade(validator.StopOnFirstFailure))
		assert.Equal(t, validator.StopOnFirstFailure, chain.CascadeMode())
	})

	t.Run("chain inherits validator cascade unless set", func(t *testing.T) {
		v := validator.New[signup](validator.WithCascadeMode(validator.StopOnFirstFailure))

		inherited := validator.RuleFor(v, "email", func(s signup) string { return s.Email })
		explicit := validator.RuleFor(v, "password", func(s signup) string { return s.Password },
			validator.WithCascade(validator.Continue))

		assert.Equal(t, validator.StopOnFirstFailure, inherited.CascadeMode())
		assert.Equal(t, validator.Continue, explicit.CascadeMode())
	})

	t.Run("cascade mode names", func(t *testing.T) {
		assert.Equal(t, "continue", validator.Continue.String())
		assert.Equal(t, "stop_on_first_failure", validator.StopOnFirstFailure.String())
	})
}

func TestChain_Conditions(t *testing.T) {
	newChain := func() *validator.StringChain[signup] {
		v := validator.New[signup]()
		return validator.RuleForString(v, "code", func(s signup) string { return s.Code })
	}

	t.Run("when skips chain for non matching entity", func(t *testing.T) {
		chain := newChain().NotEmpty().When(func(s signup) bool { return s.Invited })

		assert.Empty(t, chain.Execute(signup{Invited: false}))
		assert.Len(t, chain.Execute(signup{Invited: true}), 1)
	})

	t.Run("unless skips chain for matching entity", func(t *testing.T) {
		chain := newChain().NotEmpty().Unless(func(s signup) bool { return s.Invited })

		assert.Len(t, chain.Execute(signup{Invited: false}), 1)
		assert.Empty(t, chain.Execute(signup{Invited: true}))
	})

	t.Run("conditions accumulate", func(t *testing.T) {
		chain := newChain().NotEmpty().
			When(func(s signup) bool { return s.Invited }).
			When(func(s signup) bool { return s.Email != "" })

		assert.Empty(t, chain.Execute(signup{Invited: true}))
		assert.Len(t, chain.Execute(signup{Invited: true, Email: "a@b.co"}), 1)
	})
}

func TestChain_Must(t *testing.T) {
	v := validator.New[signup]()

	t.Run("must uses predicate code and message", func(t *testing.T) {
		chain := validator.RuleForString(v, "password", func(s signup) string { return s.Password }).
			Must(func(p string) bool { return len(p) >= 8 })

		fs := chain.Execute(signup{Password: "short"})
		require.Len(t, fs, 1)
		assert.Equal(t, validator.CodePredicate, fs[0].Code)
		assert.Equal(t, "The specified condition was not met for 'password'.", fs[0].Message)
	})

	t.Run("must with compares against entity", func(t *testing.T) {
		chain := validator.RuleForString(v, "password", func(s signup) string { return s.Password }).
			MustWith(func(p string, s signup) bool { return p != s.Email },
				validator.WithMessage("password must differ from email"),
				validator.WithCode("password.same_as_email"))

		fs := chain.Execute(signup{Email: "a@b.co", Password: "a@b.co"})
		require.Len(t, fs, 1)
		assert.Equal(t, "password must differ from email", fs[0].Message)
		assert.Equal(t, "password.same_as_email", fs[0].Code)
		assert.Empty(t, chain.Execute(signup{Email: "a@b.co", Password: "secret123"}))
	})
}
