package validator

import (
	"strconv"
	"strings"
)

// EntityValidator validates a property value as an entity of its own.
// *Validator[T] implements it; Ptr and Each adapt it to pointers and slices.
type EntityValidator[T any] interface {
	Failures(entity T) Failures
	ByField(entity T, key string, override func(Failures)) FieldFunc
}

type ptrValidator[T any] struct {
	v *Validator[T]
}

// Ptr adapts a validator of T to *T. A nil pointer has no failures.
func Ptr[T any](v *Validator[T]) EntityValidator[*T] {
	return ptrValidator[T]{v: v}
}

func (p ptrValidator[T]) Failures(entity *T) Failures {
	if entity == nil {
		return Failures{}
	}
	return p.v.Failures(*entity)
}

func (p ptrValidator[T]) ByField(entity *T, key string, override func(Failures)) FieldFunc {
	if entity == nil {
		return noField(override)
	}
	return p.v.ByField(*entity, key, override)
}

type eachValidator[T any] struct {
	v EntityValidator[T]
}

// Each validates every element of a slice. Failure keys are prefixed with the
// element index, so the chain "items" reports "items.0.name".
func Each[T any](v EntityValidator[T]) EntityValidator[[]T] {
	return eachValidator[T]{v: v}
}

func (e eachValidator[T]) Failures(items []T) Failures {
	failures := Failures{}
	for i, item := range items {
		failures = append(failures, prefixKeys(strconv.Itoa(i), e.v.Failures(item))...)
	}
	return failures
}

func (e eachValidator[T]) ByField(items []T, key string, override func(Failures)) FieldFunc {
	head, rest, _ := strings.Cut(key, ".")

	i, err := strconv.Atoi(head)
	if err != nil || i < 0 || i >= len(items) {
		return noField(override)
	}

	if rest == "" {
		return func() (string, bool) {
			return firstMessage(prefixKeys(head, e.v.Failures(items[i])), override)
		}
	}

	var prefixed func(Failures)
	if override != nil {
		prefixed = func(fs Failures) { override(prefixKeys(head, fs)) }
	}
	return e.v.ByField(items[i], rest, prefixed)
}
