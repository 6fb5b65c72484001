package validator

import "github.com/google/uuid"

// isUUID accepts the canonical 36-character form only.
func isUUID(value string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}

func validUUID() check[string] {
	return check[string]{code: CodeUUID, test: isUUID}
}

// UUID fails unless the value is a hyphenated UUID.
func (c *StringChain[T]) UUID(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, validUUID(), opts)
	return c
}

// UUID fails unless the value is a hyphenated UUID. Nil fails.
func (c *NullableStringChain[T]) UUID(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(validUUID(), false, opts)
}

// UUIDOrNull is UUID that passes for nil.
func (c *NullableStringChain[T]) UUIDOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(validUUID(), true, opts)
}
