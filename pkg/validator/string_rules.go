package validator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func notNil[V any]() check[*V] {
	return check[*V]{
		code: CodeNotNull,
		test: func(v *V) bool { return v != nil },
	}
}

func isNil[V any]() check[*V] {
	return check[*V]{
		code: CodeNull,
		test: func(v *V) bool { return v == nil },
	}
}

// notBlank fails for empty and whitespace-only strings.
func notBlank() check[string] {
	return check[string]{
		code: CodeNotEmpty,
		test: func(s string) bool { return strings.TrimSpace(s) != "" },
	}
}

func blank() check[string] {
	return check[string]{
		code: CodeEmpty,
		test: func(s string) bool { return strings.TrimSpace(s) == "" },
	}
}

// Lengths are counted in runes.
func lengthBetween(min, max int) check[string] {
	return check[string]{
		code: CodeLength,
		test: func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
		params: lengthParams(min, max),
	}
}

func minLength(min int) check[string] {
	return check[string]{
		code:   CodeMinLength,
		test:   func(s string) bool { return utf8.RuneCountInString(s) >= min },
		params: lengthParams(min, -1),
	}
}

func maxLength(max int) check[string] {
	return check[string]{
		code:   CodeMaxLength,
		test:   func(s string) bool { return utf8.RuneCountInString(s) <= max },
		params: lengthParams(-1, max),
	}
}

func exactLength(n int) check[string] {
	return check[string]{
		code:   CodeExactLength,
		test:   func(s string) bool { return utf8.RuneCountInString(s) == n },
		params: lengthParams(n, n),
	}
}

// lengthParams skips bounds given as -1.
func lengthParams(min, max int) func(string) map[string]string {
	return func(s string) map[string]string {
		params := map[string]string{
			ParamTotalLength: strconv.Itoa(utf8.RuneCountInString(s)),
		}
		if min >= 0 {
			params[ParamMinLength] = strconv.Itoa(min)
		}
		if max >= 0 {
			params[ParamMaxLength] = strconv.Itoa(max)
		}
		return params
	}
}

// StringChain validates a string property.
type StringChain[T any] struct {
	*Chain[T, string]
}

// RuleForString registers a chain for a string property.
func RuleForString[T any](v *Validator[T], key string, selector func(T) string, opts ...ChainOption) *StringChain[T] {
	return AddChain(v, &StringChain[T]{NewChain(key, selector, opts...)})
}

// NotEmpty fails for empty or whitespace-only strings.
func (c *StringChain[T]) NotEmpty(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, notBlank(), opts)
	return c
}

// Empty fails unless the string is empty or whitespace-only.
func (c *StringChain[T]) Empty(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, blank(), opts)
	return c
}

// Length fails unless the rune count is within [min, max].
func (c *StringChain[T]) Length(min, max int, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, lengthBetween(min, max), opts)
	return c
}

// MinLength fails when the value has fewer than min runes.
func (c *StringChain[T]) MinLength(min int, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, minLength(min), opts)
	return c
}

// MaxLength fails when the value has more than max runes.
func (c *StringChain[T]) MaxLength(max int, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, maxLength(max), opts)
	return c
}

// ExactLength fails unless the value has exactly n runes.
func (c *StringChain[T]) ExactLength(n int, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, exactLength(n), opts)
	return c
}

// Equal fails unless the value equals other.
func (c *StringChain[T]) Equal(other string, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, equalTo(other), opts)
	return c
}

// NotEqual fails when the value equals other.
func (c *StringChain[T]) NotEqual(other string, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, notEqualTo(other), opts)
	return c
}

// In fails unless the value is one of values.
func (c *StringChain[T]) In(values []string, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, oneOf(values), opts)
	return c
}

// NotIn fails when the value is one of values.
func (c *StringChain[T]) NotIn(values []string, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, noneOf(values), opts)
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *StringChain[T]) Add(rule Rule[T, string]) *StringChain[T] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *StringChain[T]) Cascade(mode CascadeMode) *StringChain[T] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *StringChain[T]) When(cond func(T) bool) *StringChain[T] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *StringChain[T]) Unless(cond func(T) bool) *StringChain[T] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *StringChain[T]) Must(pred func(string) bool, opts ...RuleOption) *StringChain[T] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *StringChain[T]) MustWith(pred func(string, T) bool, opts ...RuleOption) *StringChain[T] {
	c.Chain.MustWith(pred, opts...)
	return c
}

// NullableStringChain validates a *string property. Every value rule comes
// in two forms: X fails for nil, XOrNull passes for nil.
type NullableStringChain[T any] struct {
	*Chain[T, *string]
}

// RuleForNullableString registers a chain for a *string property.
func RuleForNullableString[T any](v *Validator[T], key string, selector func(T) *string, opts ...ChainOption) *NullableStringChain[T] {
	return AddChain(v, &NullableStringChain[T]{NewChain(key, selector, opts...)})
}

// NotNull fails for nil.
func (c *NullableStringChain[T]) NotNull(opts ...RuleOption) *NullableStringChain[T] {
	addCheck(c.Chain, notNil[string](), opts)
	return c
}

// Null fails unless the value is nil.
func (c *NullableStringChain[T]) Null(opts ...RuleOption) *NullableStringChain[T] {
	addCheck(c.Chain, isNil[string](), opts)
	return c
}

// NotEmpty fails for nil or an empty value.
func (c *NullableStringChain[T]) NotEmpty(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(notBlank(), false, opts)
}

// NotEmptyOrNull is NotEmpty that passes for nil.
func (c *NullableStringChain[T]) NotEmptyOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(notBlank(), true, opts)
}

// Empty fails for nil or a value that is not blank.
func (c *NullableStringChain[T]) Empty(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(blank(), false, opts)
}

// EmptyOrNull is Empty that passes for nil.
func (c *NullableStringChain[T]) EmptyOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(blank(), true, opts)
}

// Length fails unless the rune count is within [min, max]. Nil fails.
func (c *NullableStringChain[T]) Length(min, max int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(lengthBetween(min, max), false, opts)
}

// LengthOrNull is Length that passes for nil.
func (c *NullableStringChain[T]) LengthOrNull(min, max int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(lengthBetween(min, max), true, opts)
}

// MinLength fails when the value has fewer than min runes. Nil fails.
func (c *NullableStringChain[T]) MinLength(min int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(minLength(min), false, opts)
}

// MinLengthOrNull is MinLength that passes for nil.
func (c *NullableStringChain[T]) MinLengthOrNull(min int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(minLength(min), true, opts)
}

// MaxLength fails when the value has more than max runes. Nil fails.
func (c *NullableStringChain[T]) MaxLength(max int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(maxLength(max), false, opts)
}

// MaxLengthOrNull is MaxLength that passes for nil.
func (c *NullableStringChain[T]) MaxLengthOrNull(max int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(maxLength(max), true, opts)
}

// ExactLength fails unless the value has exactly n runes. Nil fails.
func (c *NullableStringChain[T]) ExactLength(n int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(exactLength(n), false, opts)
}

// ExactLengthOrNull is ExactLength that passes for nil.
func (c *NullableStringChain[T]) ExactLengthOrNull(n int, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(exactLength(n), true, opts)
}

// Equal fails unless the value equals other. Nil fails.
func (c *NullableStringChain[T]) Equal(other string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(equalTo(other), false, opts)
}

// EqualOrNull is Equal that passes for nil.
func (c *NullableStringChain[T]) EqualOrNull(other string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(equalTo(other), true, opts)
}

// NotEqual fails when the value equals other. Nil fails.
func (c *NullableStringChain[T]) NotEqual(other string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(notEqualTo(other), false, opts)
}

// NotEqualOrNull is NotEqual that passes for nil.
func (c *NullableStringChain[T]) NotEqualOrNull(other string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(notEqualTo(other), true, opts)
}

// In fails unless the value is one of values. Nil fails.
func (c *NullableStringChain[T]) In(values []string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(oneOf(values), false, opts)
}

// InOrNull is In that passes for nil.
func (c *NullableStringChain[T]) InOrNull(values []string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(oneOf(values), true, opts)
}

// NotIn fails when the value is one of values. Nil fails.
func (c *NullableStringChain[T]) NotIn(values []string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(noneOf(values), false, opts)
}

// NotInOrNull is NotIn that passes for nil.
func (c *NullableStringChain[T]) NotInOrNull(values []string, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(noneOf(values), true, opts)
}

func (c *NullableStringChain[T]) lift(ch check[string], allowNil bool, opts []RuleOption) *NullableStringChain[T] {
	addNullableCheck(c.Chain, ch, allowNil, opts)
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *NullableStringChain[T]) Add(rule Rule[T, *string]) *NullableStringChain[T] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *NullableStringChain[T]) Cascade(mode CascadeMode) *NullableStringChain[T] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *NullableStringChain[T]) When(cond func(T) bool) *NullableStringChain[T] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *NullableStringChain[T]) Unless(cond func(T) bool) *NullableStringChain[T] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *NullableStringChain[T]) Must(pred func(*string) bool, opts ...RuleOption) *NullableStringChain[T] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *NullableStringChain[T]) MustWith(pred func(*string, T) bool, opts ...RuleOption) *NullableStringChain[T] {
	c.Chain.MustWith(pred, opts...)
	return c
}
