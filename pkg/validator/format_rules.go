package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// International format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// Separators people type between phone digits
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// Reject display-name forms such as "Bob <bob@example.com>".
	if addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

func isURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

func isPhone(value string) bool {
	return phoneRegex.MatchString(phoneSeparators.Replace(value))
}

func email() check[string] {
	return check[string]{code: CodeEmail, test: isEmail}
}

func validURL() check[string] {
	return check[string]{code: CodeURL, test: isURL}
}

func phone() check[string] {
	return check[string]{code: CodePhone, test: isPhone}
}

func alphanumeric() check[string] {
	return check[string]{code: CodeAlphanumeric, test: alphanumericRegex.MatchString}
}

// Email fails unless the value is a plain email address.
func (c *StringChain[T]) Email(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, email(), opts)
	return c
}

// URL requires an absolute URL with scheme and host.
func (c *StringChain[T]) URL(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, validURL(), opts)
	return c
}

// Phone accepts E.164 numbers; spaces, dashes, dots and parentheses are ignored.
func (c *StringChain[T]) Phone(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, phone(), opts)
	return c
}

// Alphanumeric allows ASCII letters and digits only.
func (c *StringChain[T]) Alphanumeric(opts ...RuleOption) *StringChain[T] {
	addCheck(c.Chain, alphanumeric(), opts)
	return c
}

// Email fails unless the value is a plain email address. Nil fails.
func (c *NullableStringChain[T]) Email(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(email(), false, opts)
}

// EmailOrNull is Email that passes for nil.
func (c *NullableStringChain[T]) EmailOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(email(), true, opts)
}

// URL fails unless the value is an absolute URL. Nil fails.
func (c *NullableStringChain[T]) URL(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(validURL(), false, opts)
}

// URLOrNull is URL that passes for nil.
func (c *NullableStringChain[T]) URLOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(validURL(), true, opts)
}

// Phone fails unless the value is a phone number. Nil fails.
func (c *NullableStringChain[T]) Phone(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(phone(), false, opts)
}

// PhoneOrNull is Phone that passes for nil.
func (c *NullableStringChain[T]) PhoneOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(phone(), true, opts)
}

// Alphanumeric fails unless the value has only letters and digits. Nil fails.
func (c *NullableStringChain[T]) Alphanumeric(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(alphanumeric(), false, opts)
}

// AlphanumericOrNull is Alphanumeric that passes for nil.
func (c *NullableStringChain[T]) AlphanumericOrNull(opts ...RuleOption) *NullableStringChain[T] {
	return c.lift(alphanumeric(), true, opts)
}
