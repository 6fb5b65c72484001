package validator_test

import (
	"time"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// sample carries one property of every kind the typed chains support.
type sample struct {
	Str     string
	StrPtr  *string
	Int     int
	IntPtr  *int
	Float   float64
	FloatP  *float64
	Time    time.Time
	TimePtr *time.Time
	Status  status
}

type status string

func ptr[T any](v T) *T {
	return &v
}

func codes(fs validator.Failures) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Code)
	}
	return out
}

func stringChain(build func(c *validator.StringChain[sample])) func(string) validator.Failures {
	v := validator.New[sample]()
	build(validator.RuleForString(v, "value", func(s sample) string { return s.Str }))
	return func(value string) validator.Failures {
		return v.Failures(sample{Str: value})
	}
}

func nullableStringChain(build func(c *validator.NullableStringChain[sample])) func(*string) validator.Failures {
	v := validator.New[sample]()
	build(validator.RuleForNullableString(v, "value", func(s sample) *string { return s.StrPtr }))
	return func(value *string) validator.Failures {
		return v.Failures(sample{StrPtr: value})
	}
}

func intChain(build func(c *validator.NumberChain[sample, int])) func(int) validator.Failures {
	v := validator.New[sample]()
	build(validator.RuleForNumber(v, "value", func(s sample) int { return s.Int }))
	return func(value int) validator.Failures {
		return v.Failures(sample{Int: value})
	}
}

func floatChain(build func(c *validator.NumberChain[sample, float64])) func(float64) validator.Failures {
	v := validator.New[sample]()
	build(validator.RuleForNumber(v, "value", func(s sample) float64 { return s.Float }))
	return func(value float64) validator.Failures {
		return v.Failures(sample{Float: value})
	}
}

func nullableIntChain(build func(c *validator.NullableNumberChain[sample, int])) func(*int) validator.Failures {
	v := validator.New[sample]()
	build(validator.RuleForNullableNumber(v, "value", func(s sample) *int { return s.IntPtr }))
	return func(value *int) validator.Failures {
		return v.Failures(sample{IntPtr: value})
	}
}

func timeChain(build func(c *validator.TimeChain[sample])) func(time.Time) validator.Failures {
	v := validator.New[sample]()
	build(validator.RuleForTime(v, "value", func(s sample) time.Time { return s.Time }))
	return func(value time.Time) validator.Failures {
		return v.Failures(sample{Time: value})
	}
}

func nullableTimeChain(build func(c *validator.NullableTimeChain[sample])) func(*time.Time) validator.Failures {
	v := validator.New[sample]()
	build(validator.RuleForNullableTime(v, "value", func(s sample) *time.Time { return s.TimePtr }))
	return func(value *time.Time) validator.Failures {
		return v.Failures(sample{TimePtr: value})
	}
}
