package validator

import "time"

func notZeroTime() check[time.Time] {
	return check[time.Time]{
		code: CodeNotEmpty,
		test: func(t time.Time) bool { return !t.IsZero() },
	}
}

func timeComparison(code string, other time.Time, test func(time.Time) bool) check[time.Time] {
	return check[time.Time]{
		code:   code,
		test:   test,
		params: func(time.Time) map[string]string { return map[string]string{ParamComparisonValue: formatValue(other)} },
	}
}

func before(other time.Time) check[time.Time] {
	return timeComparison(CodeBefore, other, func(t time.Time) bool { return t.Before(other) })
}

func after(other time.Time) check[time.Time] {
	return timeComparison(CodeAfter, other, func(t time.Time) bool { return t.After(other) })
}

func timeBetween(from, to time.Time) check[time.Time] {
	return check[time.Time]{
		code: CodeInclusiveBetween,
		test: func(t time.Time) bool { return !t.Before(from) && !t.After(to) },
		params: func(time.Time) map[string]string {
			return map[string]string{
				ParamFrom: formatValue(from),
				ParamTo:   formatValue(to),
			}
		},
	}
}

// past and future compare against the clock at evaluation time.
func past() check[time.Time] {
	return check[time.Time]{
		code: CodePast,
		test: func(t time.Time) bool { return t.Before(time.Now()) },
	}
}

func future() check[time.Time] {
	return check[time.Time]{
		code: CodeFuture,
		test: func(t time.Time) bool { return t.After(time.Now()) },
	}
}

// TimeChain validates a time.Time property.
type TimeChain[T any] struct {
	*Chain[T, time.Time]
}

// RuleForTime registers a chain for a time.Time property.
func RuleForTime[T any](v *Validator[T], key string, selector func(T) time.Time, opts ...ChainOption) *TimeChain[T] {
	return AddChain(v, &TimeChain[T]{NewChain(key, selector, opts...)})
}

// NotEmpty fails for the zero time.
func (c *TimeChain[T]) NotEmpty(opts ...RuleOption) *TimeChain[T] {
	addCheck(c.Chain, notZeroTime(), opts)
	return c
}

// Before fails unless the value is before other.
func (c *TimeChain[T]) Before(other time.Time, opts ...RuleOption) *TimeChain[T] {
	addCheck(c.Chain, before(other), opts)
	return c
}

// After fails unless the value is after other.
func (c *TimeChain[T]) After(other time.Time, opts ...RuleOption) *TimeChain[T] {
	addCheck(c.Chain, after(other), opts)
	return c
}

// InclusiveBetween fails unless from <= value <= to.
func (c *TimeChain[T]) InclusiveBetween(from, to time.Time, opts ...RuleOption) *TimeChain[T] {
	addCheck(c.Chain, timeBetween(from, to), opts)
	return c
}

// Past fails unless the value is before the current time.
func (c *TimeChain[T]) Past(opts ...RuleOption) *TimeChain[T] {
	addCheck(c.Chain, past(), opts)
	return c
}

// Future fails unless the value is after the current time.
func (c *TimeChain[T]) Future(opts ...RuleOption) *TimeChain[T] {
	addCheck(c.Chain, future(), opts)
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *TimeChain[T]) Add(rule Rule[T, time.Time]) *TimeChain[T] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *TimeChain[T]) Cascade(mode CascadeMode) *TimeChain[T] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *TimeChain[T]) When(cond func(T) bool) *TimeChain[T] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *TimeChain[T]) Unless(cond func(T) bool) *TimeChain[T] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *TimeChain[T]) Must(pred func(time.Time) bool, opts ...RuleOption) *TimeChain[T] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *TimeChain[T]) MustWith(pred func(time.Time, T) bool, opts ...RuleOption) *TimeChain[T] {
	c.Chain.MustWith(pred, opts...)
	return c
}

// NullableTimeChain validates a *time.Time property. Every value rule comes
// in two forms: X fails for nil, XOrNull passes for nil.
type NullableTimeChain[T any] struct {
	*Chain[T, *time.Time]
}

// RuleForNullableTime registers a chain for a *time.Time property.
func RuleForNullableTime[T any](v *Validator[T], key string, selector func(T) *time.Time, opts ...ChainOption) *NullableTimeChain[T] {
	return AddChain(v, &NullableTimeChain[T]{NewChain(key, selector, opts...)})
}

// NotNull fails for nil.
func (c *NullableTimeChain[T]) NotNull(opts ...RuleOption) *NullableTimeChain[T] {
	addCheck(c.Chain, notNil[time.Time](), opts)
	return c
}

// Null fails unless the value is nil.
func (c *NullableTimeChain[T]) Null(opts ...RuleOption) *NullableTimeChain[T] {
	addCheck(c.Chain, isNil[time.Time](), opts)
	return c
}

// NotEmpty fails for nil or an empty value.
func (c *NullableTimeChain[T]) NotEmpty(opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(notZeroTime(), false, opts)
}

// NotEmptyOrNull is NotEmpty that passes for nil.
func (c *NullableTimeChain[T]) NotEmptyOrNull(opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(notZeroTime(), true, opts)
}

// Before fails unless the value is before other. Nil fails.
func (c *NullableTimeChain[T]) Before(other time.Time, opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(before(other), false, opts)
}

// BeforeOrNull is Before that passes for nil.
func (c *NullableTimeChain[T]) BeforeOrNull(other time.Time, opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(before(other), true, opts)
}

// After fails unless the value is after other. Nil fails.
func (c *NullableTimeChain[T]) After(other time.Time, opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(after(other), false, opts)
}

// AfterOrNull is After that passes for nil.
func (c *NullableTimeChain[T]) AfterOrNull(other time.Time, opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(after(other), true, opts)
}

// InclusiveBetween fails unless from <= value <= to. Nil fails.
func (c *NullableTimeChain[T]) InclusiveBetween(from, to time.Time, opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(timeBetween(from, to), false, opts)
}

// InclusiveBetweenOrNull is InclusiveBetween that passes for nil.
func (c *NullableTimeChain[T]) InclusiveBetweenOrNull(from, to time.Time, opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(timeBetween(from, to), true, opts)
}

// Past fails unless the value is before the current time. Nil fails.
func (c *NullableTimeChain[T]) Past(opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(past(), false, opts)
}

// PastOrNull is Past that passes for nil.
func (c *NullableTimeChain[T]) PastOrNull(opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(past(), true, opts)
}

// Future fails unless the value is after the current time. Nil fails.
func (c *NullableTimeChain[T]) Future(opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(future(), false, opts)
}

// FutureOrNull is Future that passes for nil.
func (c *NullableTimeChain[T]) FutureOrNull(opts ...RuleOption) *NullableTimeChain[T] {
	return c.lift(future(), true, opts)
}

func (c *NullableTimeChain[T]) lift(ch check[time.Time], allowNil bool, opts []RuleOption) *NullableTimeChain[T] {
	addNullableCheck(c.Chain, ch, allowNil, opts)
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *NullableTimeChain[T]) Add(rule Rule[T, *time.Time]) *NullableTimeChain[T] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *NullableTimeChain[T]) Cascade(mode CascadeMode) *NullableTimeChain[T] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *NullableTimeChain[T]) When(cond func(T) bool) *NullableTimeChain[T] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *NullableTimeChain[T]) Unless(cond func(T) bool) *NullableTimeChain[T] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *NullableTimeChain[T]) Must(pred func(*time.Time) bool, opts ...RuleOption) *NullableTimeChain[T] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *NullableTimeChain[T]) MustWith(pred func(*time.Time, T) bool, opts ...RuleOption) *NullableTimeChain[T] {
	c.Chain.MustWith(pred, opts...)
	return c
}
