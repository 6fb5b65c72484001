package validator

import (
	"reflect"
	"strconv"
)

func notEmptySlice[E any]() check[[]E] {
	return check[[]E]{
		code: CodeNotEmpty,
		test: func(items []E) bool { return len(items) > 0 },
	}
}

func minItems[E any](min int) check[[]E] {
	return check[[]E]{
		code:   CodeMinItems,
		test:   func(items []E) bool { return len(items) >= min },
		params: itemsParams[E](min, -1),
	}
}

func maxItems[E any](max int) check[[]E] {
	return check[[]E]{
		code:   CodeMaxItems,
		test:   func(items []E) bool { return len(items) <= max },
		params: itemsParams[E](-1, max),
	}
}

func exactItems[E any](n int) check[[]E] {
	return check[[]E]{
		code:   CodeExactItems,
		test:   func(items []E) bool { return len(items) == n },
		params: itemsParams[E](n, n),
	}
}

// itemsParams skips bounds given as -1.
func itemsParams[E any](min, max int) func([]E) map[string]string {
	return func(items []E) map[string]string {
		params := map[string]string{
			ParamTotalItems: strconv.Itoa(len(items)),
		}
		if min >= 0 {
			params[ParamMinItems] = strconv.Itoa(min)
		}
		if max >= 0 {
			params[ParamMaxItems] = strconv.Itoa(max)
		}
		return params
	}
}

func uniqueBy[E any, K comparable](key func(E) K) check[[]E] {
	return check[[]E]{
		code: CodeUnique,
		test: func(items []E) bool {
			seen := make(map[K]struct{}, len(items))
			for _, item := range items {
				k := key(item)
				if _, ok := seen[k]; ok {
					return false
				}
				seen[k] = struct{}{}
			}
			return true
		},
	}
}

// SliceChain validates a slice property.
type SliceChain[T, E any] struct {
	*Chain[T, []E]
}

// RuleForSlice registers a chain for a slice property.
func RuleForSlice[T, E any](v *Validator[T], key string, selector func(T) []E, opts ...ChainOption) *SliceChain[T, E] {
	return AddChain(v, &SliceChain[T, E]{NewChain(key, selector, opts...)})
}

// NotEmpty fails for a nil or empty slice.
func (c *SliceChain[T, E]) NotEmpty(opts ...RuleOption) *SliceChain[T, E] {
	addCheck(c.Chain, notEmptySlice[E](), opts)
	return c
}

// MinItems fails when the slice has fewer than min elements.
func (c *SliceChain[T, E]) MinItems(min int, opts ...RuleOption) *SliceChain[T, E] {
	addCheck(c.Chain, minItems[E](min), opts)
	return c
}

// MaxItems fails when the slice has more than max elements.
func (c *SliceChain[T, E]) MaxItems(max int, opts ...RuleOption) *SliceChain[T, E] {
	addCheck(c.Chain, maxItems[E](max), opts)
	return c
}

// ExactItems fails unless the slice has exactly n elements.
func (c *SliceChain[T, E]) ExactItems(n int, opts ...RuleOption) *SliceChain[T, E] {
	addCheck(c.Chain, exactItems[E](n), opts)
	return c
}

// Unique fails when two elements are equal. It panics when E is not a
// comparable type; use UniqueBy for those.
func (c *SliceChain[T, E]) Unique(opts ...RuleOption) *SliceChain[T, E] {
	if !reflect.TypeFor[E]().Comparable() {
		panic("validator: Unique requires a comparable element type, use UniqueBy")
	}
	addCheck(c.Chain, uniqueBy(func(item E) any { return item }), opts)
	return c
}

// UniqueBy fails when two elements share the same key.
func (c *SliceChain[T, E]) UniqueBy(key func(E) string, opts ...RuleOption) *SliceChain[T, E] {
	if key == nil {
		panic("validator: UniqueBy requires a key function")
	}
	addCheck(c.Chain, uniqueBy(key), opts)
	return c
}

// ForEach validates every element with v. Element failures are reported
// under indexed keys such as "items.1.sku".
func (c *SliceChain[T, E]) ForEach(v EntityValidator[E]) *SliceChain[T, E] {
	c.Chain.SetValidator(Each(v))
	return c
}

// Add appends a rule. Nil rules are ignored.
func (c *SliceChain[T, E]) Add(rule Rule[T, []E]) *SliceChain[T, E] {
	c.Chain.Add(rule)
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *SliceChain[T, E]) Cascade(mode CascadeMode) *SliceChain[T, E] {
	c.Chain.Cascade(mode)
	return c
}

// When runs the chain only when cond holds for the entity.
func (c *SliceChain[T, E]) When(cond func(T) bool) *SliceChain[T, E] {
	c.Chain.When(cond)
	return c
}

// Unless skips the chain when cond holds for the entity.
func (c *SliceChain[T, E]) Unless(cond func(T) bool) *SliceChain[T, E] {
	c.Chain.Unless(cond)
	return c
}

// Must adds a predicate rule reported with CodePredicate.
func (c *SliceChain[T, E]) Must(pred func([]E) bool, opts ...RuleOption) *SliceChain[T, E] {
	c.Chain.Must(pred, opts...)
	return c
}

// MustWith is Must with access to the entity.
func (c *SliceChain[T, E]) MustWith(pred func([]E, T) bool, opts ...RuleOption) *SliceChain[T, E] {
	c.Chain.MustWith(pred, opts...)
	return c
}
