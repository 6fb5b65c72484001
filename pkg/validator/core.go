package validator

import (
	"fmt"
	"strings"
)

// Failure is a single validation failure.
type Failure struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Key     string `json:"key,omitempty"`
}

func (f Failure) String() string {
	if f.Key == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Key, f.Message)
}

// Failures is an ordered collection of failures. It satisfies the error
// interface so a failed validation can be returned as an error.
type Failures []Failure

func (fs Failures) Error() string {
	if len(fs) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, f.String())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) match any Failures value.
func (fs Failures) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends f.
func (fs *Failures) Add(f Failure) {
	*fs = append(*fs, f)
}

// Has reports whether any failure was recorded for key.
func (fs Failures) Has(key string) bool {
	for _, f := range fs {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for key, in order.
func (fs Failures) Get(key string) []string {
	var messages []string
	for _, f := range fs {
		if f.Key == key {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// Filter returns the failures recorded for key.
func (fs Failures) Filter(key string) Failures {
	var filtered Failures
	for _, f := range fs {
		if f.Key == key {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// Keys returns the distinct keys in order of first appearance.
func (fs Failures) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, f := range fs {
		if !seen[f.Key] {
			keys = append(keys, f.Key)
			seen[f.Key] = true
		}
	}
	return keys
}

// First returns the first failure, if any.
func (fs Failures) First() (Failure, bool) {
	if len(fs) == 0 {
		return Failure{}, false
	}
	return fs[0], true
}

// IsEmpty reports whether there are no failures.
func (fs Failures) IsEmpty() bool {
	return len(fs) == 0
}

// Result is the outcome of validating one entity.
type Result struct {
	Valid    bool     `json:"valid"`
	Failures Failures `json:"failures"`
}

func newResult(failures Failures) Result {
	if failures == nil {
		failures = Failures{}
	}
	return Result{
		Valid:    len(failures) == 0,
		Failures: failures,
	}
}

// Err returns the failures as an error, or nil when the entity is valid.
func (r Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return r.Failures
}
