package validator

// Numeric is satisfied by the built-in integer and float types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func comparison[N Numeric](code string, other N, test func(v N) bool) check[N] {
	return check[N]{
		code:   code,
		test:   test,
		params: func(N) map[string]string { return map[string]string{ParamComparisonValue: formatValue(other)} },
	}
}

func lessThan[N Numeric](other N) check[N] {
	return comparison(CodeLessThan, other, func(v N) bool { return v < other })
}

func lessThanOrEqual[N Numeric](other N) check[N] {
	return comparison(CodeLessThanOrEqual, other, func(v N) bool { return v <= other })
}

func greaterThan[N Numeric](other N) check[N] {
	return comparison(CodeGreaterThan, other, func(v N) bool { return v > other })
}

func greaterThanOrEqual[N Numeric](other N) check[N] {
	return comparison(CodeGreaterThanOrEqual, other, func(v N) bool { return v >= other })
}

func between[N Numeric](code string, from, to N, test func(v N) bool) check[N] {
	return check[N]{
		code: code,
		test: test,
		params: func(N) map[string]string {
			return map[string]string{
				ParamFrom: formatValue(from),
				ParamTo:   formatValue(to),
			}
		},
	}
}

func inclusiveBetween[N Numeric](from, to N) check[N] {
	return between(CodeInclusiveBetween, from, to, func(v N) bool { return v >= from && v <= to })
}

func exclusiveBetween[N Numeric](from, to N) check[N] {
	return between(CodeExclusiveBetween, from, to, func(v N) bool { return v > from && v < to })
}

func positive[N Numeric]() check[N] {
	return check[N]{
		code: CodePositive,
		test: func(v N) bool { return v > 0 },
	}
}

// NumberChain validates a numeric property.
type NumberChain[T any, N Numeric] struct {
	*Chain[T, N]
}

// RuleForNumber registers a chain for a numeric property.
func RuleForNumber[T any, N Numeric](v *Validator[T], key string, selector func(T) N, opts ...ChainOption) *NumberChain[T, N] {
	return AddChain(v, &NumberChain[T, N]{NewChain(key, selector, opts...)})
}

// NotEmpty fails for zero.
func (c *NumberChain[T, N]) NotEmpty(opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, notZero[N](), opts)
	return c
}

// Equal fails unless the value equals other.
func (c *NumberChain[T, N]) Equal(other N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, equalTo(other), opts)
	return c
}

// NotEqual fails when the value equals other.
func (c *NumberChain[T, N]) NotEqual(other N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, notEqualTo(other), opts)
	return c
}

// LessThan fails unless the value is less than other.
func (c *NumberChain[T, N]) LessThan(other N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, lessThan(other), opts)
	return c
}

// LessThanOrEqual fails unless the value is at most other.
func (c *NumberChain[T, N]) LessThanOrEqual(other N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, lessThanOrEqual(other), opts)
	return c
}

// GreaterThan fails unless the value is greater than other.
func (c *NumberChain[T, N]) GreaterThan(other N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, greaterThan(other), opts)
	return c
}

// GreaterThanOrEqual fails unless the value is at least other.
func (c *NumberChain[T, N]) GreaterThanOrEqual(other N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, greaterThanOrEqual(other), opts)
	return c
}

// Min is an alias for GreaterThanOrEqual.
func (c *NumberChain[T, N]) Min(min N, opts ...RuleOption) *NumberChain[T, N] {
	return c.GreaterThanOrEqual(min, opts...)
}

// Max is an alias for LessThanOrEqual.
func (c *NumberChain[T, N]) Max(max N, opts ...RuleOption) *NumberChain[T, N] {
	return c.LessThanOrEqual(max, opts...)
}

// InclusiveBetween fails unless from <= value <= to.
func (c *NumberChain[T, N]) InclusiveBetween(from, to N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, inclusiveBetween(from, to), opts)
	return c
}

// ExclusiveBetween fails unless from < value < to.
func (c *NumberChain[T, N]) ExclusiveBetween(from, to N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, exclusiveBetween(from, to), opts)
	return c
}

// Positive fails unless the value is greater than zero.
func (c *NumberChain[T, N]) Positive(opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, positive[N](), opts)
	return c
}

// In fails unless the value is one of values.
func (c *NumberChain[T, N]) In(values []N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, oneOf(values), opts)
	return c
}

// NotIn fails when the value is one of values.
func (c *NumberChain[T, N]) NotIn(values []N, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, noneOf(values), opts)
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *NumberChain[T, N]) Add(rule Rule[T, N]) *NumberChain[T, N] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *NumberChain[T, N]) Cascade(mode CascadeMode) *NumberChain[T, N] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *NumberChain[T, N]) When(cond func(T) bool) *NumberChain[T, N] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *NumberChain[T, N]) Unless(cond func(T) bool) *NumberChain[T, N] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *NumberChain[T, N]) Must(pred func(N) bool, opts ...RuleOption) *NumberChain[T, N] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *NumberChain[T, N]) MustWith(pred func(N, T) bool, opts ...RuleOption) *NumberChain[T, N] {
	c.Chain.MustWith(pred, opts...)
	return c
}

// NullableNumberChain validates a pointer-to-number property. Every value
// rule comes in two forms: X fails for nil, XOrNull passes for nil.
type NullableNumberChain[T any, N Numeric] struct {
	*Chain[T, *N]
}

// RuleForNullableNumber registers a chain for a pointer-to-number property.
func RuleForNullableNumber[T any, N Numeric](v *Validator[T], key string, selector func(T) *N, opts ...ChainOption) *NullableNumberChain[T, N] {
	return AddChain(v, &NullableNumberChain[T, N]{NewChain(key, selector, opts...)})
}

// NotNull fails for nil.
func (c *NullableNumberChain[T, N]) NotNull(opts ...RuleOption) *NullableNumberChain[T, N] {
	addCheck(c.Chain, notNil[N](), opts)
	return c
}

// Null fails unless the value is nil.
func (c *NullableNumberChain[T, N]) Null(opts ...RuleOption) *NullableNumberChain[T, N] {
	addCheck(c.Chain, isNil[N](), opts)
	return c
}

// NotEmpty fails for nil or an empty value.
func (c *NullableNumberChain[T, N]) NotEmpty(opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(notZero[N](), false, opts)
}

// NotEmptyOrNull is NotEmpty that passes for nil.
func (c *NullableNumberChain[T, N]) NotEmptyOrNull(opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(notZero[N](), true, opts)
}

// Equal fails unless the value equals other. Nil fails.
func (c *NullableNumberChain[T, N]) Equal(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(equalTo(other), false, opts)
}

// EqualOrNull is Equal that passes for nil.
func (c *NullableNumberChain[T, N]) EqualOrNull(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(equalTo(other), true, opts)
}

// NotEqual fails when the value equals other. Nil fails.
func (c *NullableNumberChain[T, N]) NotEqual(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(notEqualTo(other), false, opts)
}

// NotEqualOrNull is NotEqual that passes for nil.
func (c *NullableNumberChain[T, N]) NotEqualOrNull(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(notEqualTo(other), true, opts)
}

// LessThan fails unless the value is less than other. Nil fails.
func (c *NullableNumberChain[T, N]) LessThan(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(lessThan(other), false, opts)
}

// LessThanOrNull is LessThan that passes for nil.
func (c *NullableNumberChain[T, N]) LessThanOrNull(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(lessThan(other), true, opts)
}

// LessThanOrEqual fails unless the value is at most other. Nil fails.
func (c *NullableNumberChain[T, N]) LessThanOrEqual(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(lessThanOrEqual(other), false, opts)
}

// LessThanOrEqualOrNull is LessThanOrEqual that passes for nil.
func (c *NullableNumberChain[T, N]) LessThanOrEqualOrNull(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(lessThanOrEqual(other), true, opts)
}

// GreaterThan fails unless the value is greater than other. Nil fails.
func (c *NullableNumberChain[T, N]) GreaterThan(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(greaterThan(other), false, opts)
}

// GreaterThanOrNull is GreaterThan that passes for nil.
func (c *NullableNumberChain[T, N]) GreaterThanOrNull(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(greaterThan(other), true, opts)
}

// GreaterThanOrEqual fails unless the value is at least other. Nil fails.
func (c *NullableNumberChain[T, N]) GreaterThanOrEqual(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(greaterThanOrEqual(other), false, opts)
}

// GreaterThanOrEqualOrNull is GreaterThanOrEqual that passes for nil.
func (c *NullableNumberChain[T, N]) GreaterThanOrEqualOrNull(other N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(greaterThanOrEqual(other), true, opts)
}

// Min is GreaterThanOrEqual. Nil fails.
func (c *NullableNumberChain[T, N]) Min(min N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.GreaterThanOrEqual(min, opts...)
}

// MinOrNull is Min that passes for nil.
func (c *NullableNumberChain[T, N]) MinOrNull(min N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.GreaterThanOrEqualOrNull(min, opts...)
}

// Max is LessThanOrEqual. Nil fails.
func (c *NullableNumberChain[T, N]) Max(max N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.LessThanOrEqual(max, opts...)
}

// MaxOrNull is Max that passes for nil.
func (c *NullableNumberChain[T, N]) MaxOrNull(max N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.LessThanOrEqualOrNull(max, opts...)
}

// InclusiveBetween fails unless from <= value <= to. Nil fails.
func (c *NullableNumberChain[T, N]) InclusiveBetween(from, to N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(inclusiveBetween(from, to), false, opts)
}

// InclusiveBetweenOrNull is InclusiveBetween that passes for nil.
func (c *NullableNumberChain[T, N]) InclusiveBetweenOrNull(from, to N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(inclusiveBetween(from, to), true, opts)
}

// ExclusiveBetween fails unless from < value < to. Nil fails.
func (c *NullableNumberChain[T, N]) ExclusiveBetween(from, to N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(exclusiveBetween(from, to), false, opts)
}

// ExclusiveBetweenOrNull is ExclusiveBetween that passes for nil.
func (c *NullableNumberChain[T, N]) ExclusiveBetweenOrNull(from, to N, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(exclusiveBetween(from, to), true, opts)
}

// Positive fails unless the value is greater than zero. Nil fails.
func (c *NullableNumberChain[T, N]) Positive(opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(positive[N](), false, opts)
}

// PositiveOrNull is Positive that passes for nil.
func (c *NullableNumberChain[T, N]) PositiveOrNull(opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(positive[N](), true, opts)
}

func (c *NullableNumberChain[T, N]) lift(ch check[N], allowNil bool, opts []RuleOption) *NullableNumberChain[T, N] {
	addNullableCheck(c.Chain, ch, allowNil, opts)
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *NullableNumberChain[T, N]) Add(rule Rule[T, *N]) *NullableNumberChain[T, N] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *NullableNumberChain[T, N]) Cascade(mode CascadeMode) *NullableNumberChain[T, N] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *NullableNumberChain[T, N]) When(cond func(T) bool) *NullableNumberChain[T, N] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *NullableNumberChain[T, N]) Unless(cond func(T) bool) *NullableNumberChain[T, N] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *NullableNumberChain[T, N]) Must(pred func(*N) bool, opts ...RuleOption) *NullableNumberChain[T, N] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *NullableNumberChain[T, N]) MustWith(pred func(*N, T) bool, opts ...RuleOption) *NullableNumberChain[T, N] {
	c.Chain.MustWith(pred, opts...)
	return c
}
