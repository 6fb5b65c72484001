package validator

import "slices"

func notZero[V comparable]() check[V] {
	var zero V
	return check[V]{
		code: CodeNotEmpty,
		test: func(v V) bool { return v != zero },
	}
}

func equalTo[V comparable](other V) check[V] {
	return check[V]{
		code:   CodeEqual,
		test:   func(v V) bool { return v == other },
		params: func(V) map[string]string { return map[string]string{ParamComparisonValue: formatValue(other)} },
	}
}

func notEqualTo[V comparable](other V) check[V] {
	return check[V]{
		code:   CodeNotEqual,
		test:   func(v V) bool { return v != other },
		params: func(V) map[string]string { return map[string]string{ParamComparisonValue: formatValue(other)} },
	}
}

func oneOf[V comparable](values []V) check[V] {
	values = slices.Clone(values)
	return check[V]{
		code:   CodeIn,
		test:   func(v V) bool { return slices.Contains(values, v) },
		params: func(V) map[string]string { return map[string]string{ParamValues: formatValues(values)} },
	}
}

func noneOf[V comparable](values []V) check[V] {
	values = slices.Clone(values)
	return check[V]{
		code:   CodeNotIn,
		test:   func(v V) bool { return !slices.Contains(values, v) },
		params: func(V) map[string]string { return map[string]string{ParamValues: formatValues(values)} },
	}
}

// ComparableChain validates a property of any comparable type, typically
// enums, booleans and identifiers.
type ComparableChain[T any, P comparable] struct {
	*Chain[T, P]
}

// RuleForValue registers a chain for a comparable property.
func RuleForValue[T any, P comparable](v *Validator[T], key string, selector func(T) P, opts ...ChainOption) *ComparableChain[T, P] {
	return AddChain(v, &ComparableChain[T, P]{NewChain(key, selector, opts...)})
}

// NotEmpty fails for the zero value.
func (c *ComparableChain[T, P]) NotEmpty(opts ...RuleOption) *ComparableChain[T, P] {
	addCheck(c.Chain, notZero[P](), opts)
	return c
}

// Equal fails unless the value equals other.
func (c *ComparableChain[T, P]) Equal(other P, opts ...RuleOption) *ComparableChain[T, P] {
	addCheck(c.Chain, equalTo(other), opts)
	return c
}

// NotEqual fails when the value equals other.
func (c *ComparableChain[T, P]) NotEqual(other P, opts ...RuleOption) *ComparableChain[T, P] {
	addCheck(c.Chain, notEqualTo(other), opts)
	return c
}

// In fails unless the value is one of values.
func (c *ComparableChain[T, P]) In(values []P, opts ...RuleOption) *ComparableChain[T, P] {
	addCheck(c.Chain, oneOf(values), opts)
	return c
}

// NotIn fails when the value is one of values.
func (c *ComparableChain[T, P]) NotIn(values []P, opts ...RuleOption) *ComparableChain[T, P] {
	addCheck(c.Chain, noneOf(values), opts)
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *ComparableChain[T, P]) Add(rule Rule[T, P]) *ComparableChain[T, P] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *ComparableChain[T, P]) Cascade(mode CascadeMode) *ComparableChain[T, P] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *ComparableChain[T, P]) When(cond func(T) bool) *ComparableChain[T, P] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *ComparableChain[T, P]) Unless(cond func(T) bool) *ComparableChain[T, P] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *ComparableChain[T, P]) Must(pred func(P) bool, opts ...RuleOption) *ComparableChain[T, P] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *ComparableChain[T, P]) MustWith(pred func(P, T) bool, opts ...RuleOption) *ComparableChain[T, P] {
	c.Chain.MustWith(pred, opts...)
	return c
}
