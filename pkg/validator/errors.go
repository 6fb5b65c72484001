package validator

import "errors"

// ErrValidationFailed matches every error returned from Result.Err.
var ErrValidationFailed = errors.New("validation failed")

// ExtractFailures extracts Failures from an error chain.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var failures Failures
	if errors.As(err, &failures) {
		return failures
	}

	return nil
}

// IsValidationError reports whether err carries Failures.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var failures Failures
	return errors.As(err, &failures)
}
