package validator

// FieldFunc is a lazily evaluated single-field probe. It returns the first
// failure message of the probed field, and false when the field is valid.
type FieldFunc func() (string, bool)

// PropertyChain is a registered rule chain for entities of type T.
// *Chain and the typed chains returned by the RuleFor functions implement it.
type PropertyChain[T any] interface {
	Key() string
	CascadeMode() CascadeMode
	Execute(entity T) Failures

	bind(translator Translator, cascade CascadeMode)
	resolve(entity T, path string, override func(Failures)) FieldFunc
}

type chainConfig struct {
	label      string
	cascade    CascadeMode
	cascadeSet bool
}

// ChainOption configures a chain at registration time.
type ChainOption func(*chainConfig)

// WithLabel sets the property name used in messages instead of the key.
func WithLabel(label string) ChainOption {
	return func(c *chainConfig) {
		c.label = label
	}
}

// WithCascade sets the chain's cascade mode. Without it the chain inherits
// the validator's default.
func WithCascade(mode CascadeMode) ChainOption {
	return func(c *chainConfig) {
		c.cascade = mode
		c.cascadeSet = true
	}
}

// Chain is the ordered list of rules bound to one property of T.
type Chain[T, P any] struct {
	prop       *Property
	selector   func(T) P
	rules      []Rule[T, P]
	cascade    CascadeMode
	cascadeSet bool
	conditions []func(T) bool
	nested     EntityValidator[P]
}

// NewChain creates an unregistered chain. Use AddChain to register it, or
// one of the RuleFor functions to create and register in one step.
func NewChain[T, P any](key string, selector func(T) P, opts ...ChainOption) *Chain[T, P] {
	if selector == nil {
		panic("validator: chain " + key + " requires a selector")
	}

	var cfg chainConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Chain[T, P]{
		prop:       &Property{Key: key, Label: cfg.label},
		selector:   selector,
		cascade:    cfg.cascade,
		cascadeSet: cfg.cascadeSet,
	}
}

// Key returns the key failures are reported under.
func (c *Chain[T, P]) Key() string {
	return c.prop.Key
}

// Property returns the property the chain validates, for use with NewRule.
func (c *Chain[T, P]) Property() *Property {
	return c.prop
}

// CascadeMode returns the effective cascade mode of the chain.
func (c *Chain[T, P]) CascadeMode() CascadeMode {
	return c.cascade
}

// Add appends a rule.
func (c *Chain[T, P]) Add(rule Rule[T, P]) *Chain[T, P] {
	if rule != nil {
		c.rules = append(c.rules, rule)
	}
	return c
}

// Cascade sets the cascade mode of the chain.
func (c *Chain[T, P]) Cascade(mode CascadeMode) *Chain[T, P] {
	c.cascade = mode
	c.cascadeSet = true
	return c
}

// When runs the chain only for entities matching cond. Conditions accumulate.
func (c *Chain[T, P]) When(cond func(T) bool) *Chain[T, P] {
	if cond != nil {
		c.conditions = append(c.conditions, cond)
	}
	return c
}

// Unless skips the chain for entities matching cond.
func (c *Chain[T, P]) Unless(cond func(T) bool) *Chain[T, P] {
	if cond == nil {
		return c
	}
	return c.When(func(entity T) bool { return !cond(entity) })
}

// Must adds a custom rule that fails when pred returns false.
func (c *Chain[T, P]) Must(pred func(P) bool, opts ...RuleOption) *Chain[T, P] {
	return c.MustWith(func(value P, _ T) bool { return pred(value) }, opts...)
}

// MustWith is like Must but the predicate also receives the entity.
func (c *Chain[T, P]) MustWith(pred func(P, T) bool, opts ...RuleOption) *Chain[T, P] {
	return c.Add(NewRule(c.prop, pred, CodePredicate, nil, opts...))
}

// SetValidator validates the property value with a nested validator.
// Nested failures are reported with keys prefixed by the chain key.
func (c *Chain[T, P]) SetValidator(v EntityValidator[P]) *Chain[T, P] {
	c.nested = v
	return c
}

// Execute runs the chain against entity.
func (c *Chain[T, P]) Execute(entity T) Failures {
	if !c.applies(entity) {
		return Failures{}
	}

	value := c.selector(entity)
	failures := Failures{}
	for _, rule := range c.rules {
		f := rule(value, entity)
		if f == nil {
			continue
		}
		failures = append(failures, *f)
		if c.cascade == StopOnFirstFailure {
			return failures
		}
	}

	if c.nested != nil {
		failures = append(failures, prefixKeys(c.prop.Key, c.nested.Failures(value))...)
	}

	return failures
}

func (c *Chain[T, P]) applies(entity T) bool {
	for _, cond := range c.conditions {
		if !cond(entity) {
			return false
		}
	}
	return true
}

func (c *Chain[T, P]) bind(translator Translator, cascade CascadeMode) {
	c.prop.translator = translator
	if !c.cascadeSet {
		c.cascade = cascade
	}
}

// resolve returns a probe for the chain itself when path is empty, and for
// the nested field at path otherwise.
func (c *Chain[T, P]) resolve(entity T, path string, override func(Failures)) FieldFunc {
	if path == "" {
		return func() (string, bool) {
			return firstMessage(c.Execute(entity), override)
		}
	}

	return func() (string, bool) {
		if c.nested == nil || !c.applies(entity) {
			return noField(override)()
		}

		var prefixed func(Failures)
		if override != nil {
			prefixed = func(fs Failures) { override(prefixKeys(c.prop.Key, fs)) }
		}
		return c.nested.ByField(c.selector(entity), path, prefixed)()
	}
}

func firstMessage(failures Failures, override func(Failures)) (string, bool) {
	if failures == nil {
		failures = Failures{}
	}
	if override != nil {
		override(failures)
	}
	if len(failures) == 0 {
		return "", false
	}
	return failures[0].Message, true
}

// noField is the probe for a key that cannot be resolved.
func noField(override func(Failures)) FieldFunc {
	return func() (string, bool) {
		if override != nil {
			override(Failures{})
		}
		return "", false
	}
}

func joinKey(parent, child string) string {
	switch {
	case child == "":
		return parent
	case parent == "":
		return child
	default:
		return parent + "." + child
	}
}

func prefixKeys(prefix string, failures Failures) Failures {
	out := make(Failures, 0, len(failures))
	for _, f := range failures {
		f.Key = joinKey(prefix, f.Key)
		out = append(out, f)
	}
	return out
}
