package validator

import "regexp"

func matches(pattern *regexp.Regexp) check[string] {
	if pattern == nil {
		panic("validator: Matches requires a pattern")
	}
	return check[string]{
		code: CodeMatches,
		test: pattern.MatchString,
	}
}

// Matches fails unless the value matches pattern.
func (c *StringChain[T]) Matches(pattern *regexp.Regexp, opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, matches(pattern), opts)
	return c
}

// MatchesString is Matches with a pattern compiled by regexp.MustCompile.
func (c *StringChain[T]) MatchesString(pattern string, opts ...RuleOption) *StringChain[T] {
	return c.Matches(regexp.MustCompile(pattern), opts...)
}

// Matches fails for nil or a value that does not match pattern.
func (c *NullableStringChain[T]) Matches(pattern *regexp.Regexp, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(matches(pattern), false, opts)
}

// MatchesOrNull is Matches that passes for nil.
func (c *NullableStringChain[T]) MatchesOrNull(pattern *regexp.Regexp, opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(matches(pattern), true, opts)
}
