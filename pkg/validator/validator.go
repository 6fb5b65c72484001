package validator

import (
	"io"
	"log/slog"
	"strings"
)

type settings struct {
	translator Translator
	logger     *slog.Logger
	cascade    CascadeMode
}

// Option configures a Validator.
type Option func(*settings)

// WithTranslator renders messages with t instead of the process-wide
// i18n default.
func WithTranslator(t Translator) Option {
	return func(s *settings) {
		s.translator = t
	}
}

// WithLogger sets the logger used for diagnostics. Nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		s.logger = logger
	}
}

// WithCascadeMode sets the cascade mode for chains that do not set their own.
func WithCascadeMode(mode CascadeMode) Option {
	return func(s *settings) {
		s.cascade = mode
	}
}

// Validator holds the chains declared for entities of type T.
//
// Chains are registered while building the validator and must not be added
// once it is in use. After that the validator is read-only and safe for
// concurrent use.
type Validator[T any] struct {
	chains     []PropertyChain[T]
	translator Translator
	logger     *slog.Logger
	cascade    CascadeMode
}

// New creates an empty validator.
func New[T any](opts ...Option) *Validator[T] {
	s := settings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Validator[T]{
		translator: s.translator,
		logger:     s.logger,
		cascade:    s.cascade,
	}
}

// AddChain registers chain and returns it for further configuration.
// Duplicate keys are accepted: every chain runs in Validate, and key lookups
// resolve to the first chain registered under the key.
func AddChain[T any, C PropertyChain[T]](v *Validator[T], chain C) C {
	chain.bind(v.translator, v.cascade)
	v.chains = append(v.chains, chain)
	return chain
}

// RuleFor registers a chain for any property type.
func RuleFor[T, P any](v *Validator[T], key string, selector func(T) P, opts ...ChainOption) *Chain[T, P] {
	return AddChain(v, NewChain(key, selector, opts...))
}

// Keys returns the registered chain keys in registration order.
func (v *Validator[T]) Keys() []string {
	keys := make([]string, 0, len(v.chains))
	for _, c := range v.chains {
		keys = append(keys, c.Key())
	}
	return keys
}

// Validate runs every chain against entity in registration order.
func (v *Validator[T]) Validate(entity T) Result {
	return newResult(v.Failures(entity))
}

// Failures runs the chains like Validate and returns the raw failure list.
// A StopOnFirstFailure chain that fails ends the run.
func (v *Validator[T]) Failures(entity T) Failures {
	failures := Failures{}
	for _, chain := range v.chains {
		chainFailures := chain.Execute(entity)
		failures = append(failures, chainFailures...)
		if len(chainFailures) > 0 && chain.CascadeMode() == StopOnFirstFailure {
			break
		}
	}
	return failures
}

// FailuresFor runs only the chain registered under key. An unknown key yields
// an empty list.
func (v *Validator[T]) FailuresFor(entity T, key string) Failures {
	chain := v.chain(key)
	if chain == nil {
		return Failures{}
	}
	return chain.Execute(entity)
}

// ByField returns a probe for a single field. Dotted keys such as
// "address.postcode" are resolved through nested validators. When override is
// not nil it receives the probed failures on every call.
//
// The probe is evaluated lazily, each call re-runs the rules.
func (v *Validator[T]) ByField(entity T, key string, override func(Failures)) FieldFunc {
	head, rest, _ := strings.Cut(key, ".")

	chain := v.chain(head)
	if chain == nil {
		return noField(override)
	}
	return chain.resolve(entity, rest, override)
}

func (v *Validator[T]) chain(key string) PropertyChain[T] {
	for _, c := range v.chains {
		if c.Key() == key {
			return c
		}
	}
	v.logger.Debug("No chain registered for key", "key", key)
	return nil
}
