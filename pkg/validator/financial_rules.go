package validator

import (
	"reflect"
	"strconv"
	"strings"
)

// isCreditCard checks the digit count and the Luhn checksum. Spaces and
// dashes are ignored.
func isCreditCard(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")

	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	isEven := false

	// Process digits from right to left
	for i := len(cleaned) - 1; i >= 0; i-- {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return false
		}
		digit := int(cleaned[i] - '0')

		if isEven {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}

		sum += digit
		isEven = !isEven
	}

	return sum%10 == 0
}

func creditCard() check[string] {
	return check[string]{code: CodeCreditCard, test: isCreditCard}
}

// CreditCard fails unless the value passes the Luhn check.
func (c *StringChain[T]) CreditCard(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, creditCard(), opts)
	return c
}

// CreditCard fails unless the value passes the Luhn check. Nil fails.
func (c *NullableStringChain[T]) CreditCard(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(creditCard(), false, opts)
}

// CreditCardOrNull is CreditCard that passes for nil.
func (c *NullableStringChain[T]) CreditCardOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(creditCard(), true, opts)
}

// decimalDigits returns the number of integer and fractional digits of v in
// its shortest decimal form. Leading zeros of the integer part do not count.
func decimalDigits[N Numeric](v N) (integer, fraction int) {
	rv := reflect.ValueOf(v)

	var s string
	switch rv.Kind() {
	case reflect.Float32:
		s = strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		s = strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s = strconv.FormatUint(rv.Uint(), 10)
	default:
		s = strconv.FormatInt(rv.Int(), 10)
	}

	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")

	return len(intPart), len(fracPart)
}

// precisionScale fails when v has more than scale decimals or more than
// precision-scale integer digits.
func precisionScale[N Numeric](precision, scale int) check[N] {
	return check[N]{
		code: CodePrecisionScale,
		test: func(v N) bool {
			integer, fraction := decimalDigits(v)
			return fraction <= scale && integer <= precision-scale
		},
		params: func(N) map[string]string {
			return map[string]string{
				ParamExpectedPrecision: strconv.Itoa(precision),
				ParamExpectedScale:     strconv.Itoa(scale),
			}
		},
	}
}

// PrecisionScale limits the value to precision digits in total, scale of
// them after the decimal point.
func (c *NumberChain[T, N]) PrecisionScale(precision, scale int, opts ...RuleOption) *NumberChain[T, N] {
	addCheck(c.Chain, precisionScale[N](precision, scale), opts)
	return c
}

// PrecisionScale fails when the value has more than scale decimals or more than precision-scale integer digits. Nil fails.
func (c *NullableNumberChain[T, N]) PrecisionScale(precision, scale int, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(precisionScale[N](precision, scale), false, opts)
}

// PrecisionScaleOrNull is PrecisionScale that passes for nil.
func (c *NullableNumberChain[T, N]) PrecisionScaleOrNull(precision, scale int, opts ...RuleOption) *NullableNumberChain[T, N] {
	return c.lift(precisionScale[N](precision, scale), true, opts)
}
