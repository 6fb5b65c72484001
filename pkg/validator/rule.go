package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

// Translator renders failure messages. *i18n.Translator satisfies it.
type Translator interface {
	Translate(code string, params map[string]string, defaultMessage string) string
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(code string, params map[string]string, defaultMessage string) string

func (f TranslatorFunc) Translate(code string, params map[string]string, defaultMessage string) string {
	return f(code, params, defaultMessage)
}

// defaultTranslator resolves the process-wide i18n default on every call so
// i18n.SetDefault takes effect for validators that were already built.
var defaultTranslator Translator = TranslatorFunc(i18n.Translate)

// Rule checks a single property value. It returns nil when the value is valid.
type Rule[T, P any] func(value P, entity T) *Failure

// ParamsFunc supplies extra message parameters for a failing value.
type ParamsFunc[T, P any] func(value P, entity T) map[string]string

// Property describes the entity property a chain validates.
// Rules keep a pointer to it, so translator and label changes made while the
// chain is registered are visible to rules that were added earlier.
type Property struct {
	Key   string
	Label string

	translator Translator
}

// DisplayName returns the label used in messages: Label if set, else Key.
func (p *Property) DisplayName() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Key
}

func (p *Property) translate(code string, params map[string]string, message string) string {
	if p.translator != nil {
		return p.translator.Translate(code, params, message)
	}
	return defaultTranslator.Translate(code, params, message)
}

type ruleConfig struct {
	message string
	code    string
}

// RuleOption customizes a single rule.
type RuleOption func(*ruleConfig)

// WithMessage overrides the failure message. Placeholders such as
// {PropertyName} are still rendered; the translation tables are not consulted.
func WithMessage(message string) RuleOption {
	return func(c *ruleConfig) {
		c.message = message
	}
}

// WithCode replaces the rule's code. The new code is reported on the failure
// and used to look up its message; an unregistered code becomes the message.
func WithCode(code string) RuleOption {
	return func(c *ruleConfig) {
		c.code = code
	}
}

// NewRule builds a rule from a predicate. When the predicate returns false the
// rule renders a message for code with the PropertyName and PropertyValue
// parameters plus whatever params returns.
func NewRule[T, P any](prop *Property, predicate func(value P, entity T) bool, code string, params ParamsFunc[T, P], opts ...RuleOption) Rule[T, P] {
	if prop == nil {
		panic("validator: NewRule requires a property")
	}
	if predicate == nil {
		panic("validator: NewRule requires a predicate")
	}

	var cfg ruleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.code != "" {
		code = cfg.code
	}

	return func(value P, entity T) *Failure {
		if predicate(value, entity) {
			return nil
		}

		values := map[string]string{
			ParamPropertyName:  prop.DisplayName(),
			ParamPropertyValue: formatValue(value),
		}
		if params != nil {
			for k, v := range params(value, entity) {
				values[k] = v
			}
		}

		return &Failure{
			Message: prop.translate(code, values, cfg.message),
			Code:    code,
			Key:     prop.Key,
		}
	}
}

// check is an entity-independent predicate together with its code and
// message parameters. The typed chains are built from these.
type check[V any] struct {
	code   string
	test   func(V) bool
	params func(V) map[string]string
}

func addCheck[T, V any](c *Chain[T, V], ch check[V], opts []RuleOption) {
	var params ParamsFunc[T, V]
	if ch.params != nil {
		params = func(v V, _ T) map[string]string { return ch.params(v) }
	}
	c.Add(NewRule(c.prop, func(v V, _ T) bool { return ch.test(v) }, ch.code, params, opts...))
}

// addNullableCheck lifts a value check onto a pointer property. With
// allowNil the rule passes for nil (the XOrNull variant), otherwise nil fails.
func addNullableCheck[T, V any](c *Chain[T, *V], ch check[V], allowNil bool, opts []RuleOption) {
	test := nilFails(ch.test)
	if allowNil {
		test = nilPasses(ch.test)
	}

	var params ParamsFunc[T, *V]
	if ch.params != nil {
		params = func(v *V, _ T) map[string]string {
			if v == nil {
				var zero V
				return ch.params(zero)
			}
			return ch.params(*v)
		}
	}
	c.Add(NewRule(c.prop, func(v *V, _ T) bool { return test(v) }, ch.code, params, opts...))
}

func nilFails[V any](test func(V) bool) func(*V) bool {
	return func(v *V) bool {
		return v != nil && test(*v)
	}
}

func nilPasses[V any](test func(V) bool) func(*V) bool {
	return func(v *V) bool {
		return v == nil || test(*v)
	}
}

// formatValue renders a property or comparison value for a message.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return formatTime(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return formatTime(*v)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return ""
		}
		return v.String()
	}

	if s, err := cast.ToStringE(value); err == nil {
		return s
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return formatValue(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

func formatValues[V any](values []V) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, formatValue(v))
	}
	return strings.Join(parts, ", ")
}
