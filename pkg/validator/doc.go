// Package validator provides a declarative, type-safe rule engine for
// validating entities.
//
// Rules are declared once per entity type on a Validator. Each property gets
// a chain: an ordered list of rules bound to a selector that extracts the
// property value from the entity. Evaluating the validator runs every chain
// in registration order and collects failures as plain data, never as
// control flow.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `date_rules.go`, etc.). Rules are
// built by NewRule from a predicate and a translation code; messages are
// rendered through the i18n package only when a rule fails.
//
// Core building blocks:
//   - Validator[T]       – ordered chains for entity type T
//   - Chain[T, P]        – rules for one property of type P
//   - StringChain etc.   – typed chains with the built-in rules
//   - Rule[T, P]         – func(value P, entity T) *Failure
//   - Failure, Failures  – failure records; Failures implements error
//   - Result             – Valid flag plus the failures
//
// # Usage
//
//	v := validator.New[User]()
//
//	validator.RuleForString(v, "email", func(u User) string { return u.Email }).
//	    NotEmpty().
//	    Email()
//
//	validator.RuleForNumber(v, "age", func(u User) int { return u.Age }).
//	    Min(18)
//
//	res := v.Validate(user)
//	if !res.Valid {
//	    for _, f := range res.Failures {
//	        fmt.Println(f.Key, f.Message)
//	    }
//	}
//
// # Cascade
//
// A chain in StopOnFirstFailure mode stops at its first failing rule and,
// when it fails, stops the whole validation: later chains are not run.
// Continue collects every failure. The validator default is set with
// WithCascadeMode and individual chains override it with WithCascade or
// Cascade.
//
// # Nullable properties
//
// Chains for pointer properties (RuleForNullableString, RuleForNullableNumber,
// RuleForNullableTime) expose NotNull and Null, and every other rule in two
// forms: X fails for nil, XOrNull passes for nil.
//
// # Nested entities
//
// SetValidator delegates a property to another validator. Nested failures
// are reported under dotted keys ("address.postcode"), and ByField resolves
// dotted keys through the nested validators:
//
//	msg, failed := v.ByField(customer, "address.postcode", nil)()
//
// Use Ptr for pointer properties and Each for slices. RuleForSlice adds item
// count and uniqueness rules, and ForEach attaches an element validator.
//
// # Messages
//
// Messages come from the i18n package default translator unless the
// validator was built WithTranslator. WithMessage overrides the message of a
// single rule and WithCode replaces its code, which is then used for both the
// reported code and the message lookup.
//
// # Error Handling
//
// Result.Err returns the failures as an error. Use ExtractFailures or
// IsValidationError to recover them from an error chain.
package validator
