package validator

import "strings"

// digitsOf extracts the digits of a formatted document number. Only the
// separators ".", "-", "/" and spaces are allowed besides digits.
func digitsOf(value string) ([]int, bool) {
	digits := make([]int, 0, len(value))
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case strings.ContainsRune(".-/ ", r):
		default:
			return nil, false
		}
	}
	return digits, true
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// isCPF validates a Brazilian individual taxpayer number, formatted
// ("529.982.247-25") or not.
func isCPF(value string) bool {
	digits, ok := digitsOf(value)
	if !ok || len(digits) != 11 || allSame(digits) {
		return false
	}

	for n := 9; n <= 10; n++ {
		sum := 0
		for i := 0; i < n; i++ {
			sum += digits[i] * (n + 1 - i)
		}
		digit := sum * 10 % 11
		if digit == 10 {
			digit = 0
		}
		if digit != digits[n] {
			return false
		}
	}

	return true
}

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// isCNPJ validates a Brazilian company registration number, formatted
// ("11.222.333/0001-81") or not.
func isCNPJ(value string) bool {
	digits, ok := digitsOf(value)
	if !ok || len(digits) != 14 || allSame(digits) {
		return false
	}

	for _, weights := range [][]int{cnpjFirstWeights, cnpjSecondWeights} {
		sum := 0
		for i, w := range weights {
			sum += digits[i] * w
		}
		digit := 0
		if r := sum % 11; r >= 2 {
			digit = 11 - r
		}
		if digit != digits[len(weights)] {
			return false
		}
	}

	return true
}

func cpf() check[string] {
	return check[string]{code: CodeCPF, test: isCPF}
}

func cnpj() check[string] {
	return check[string]{code: CodeCNPJ, test: isCNPJ}
}

// CPF fails unless the value is a CPF with valid check digits.
func (c *StringChain[T]) CPF(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, cpf(), opts)
	return c
}

// CNPJ fails unless the value is a CNPJ with valid check digits.
func (c *StringChain[T]) CNPJ(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, cnpj(), opts)
	return c
}

// CPF fails unless the value is a CPF with valid check digits. Nil fails.
func (c *NullableStringChain[T]) CPF(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(cpf(), false, opts)
}

// CPFOrNull is CPF that passes for nil.
func (c *NullableStringChain[T]) CPFOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(cpf(), true, opts)
}

// CNPJ fails unless the value is a CNPJ with valid check digits. Nil fails.
func (c *NullableStringChain[T]) CNPJ(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(cnpj(), false, opts)
}

// CNPJOrNull is CNPJ that passes for nil.
func (c *NullableStringChain[T]) CNPJOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(cnpj(), true, opts)
}
