package validator

// CascadeMode controls whether evaluation stops at the first failure.
//
// Inside a chain, StopOnFirstFailure skips the remaining rules once one fails.
// Across chains, a StopOnFirstFailure chain that produced failures stops the
// whole validation: later chains are not executed.
type CascadeMode int

const (
	Continue CascadeMode = iota
	StopOnFirstFailure
)

func (m CascadeMode) String() string {
	switch m {
	case StopOnFirstFailure:
		return "stop_on_first_failure"
	default:
		return "continue"
	}
}
