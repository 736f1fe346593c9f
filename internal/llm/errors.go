package llm

import "errors"

var (
	// ErrOracleUnavailable indicates the generation endpoint is unreachable.
	ErrOracleUnavailable = errors.New("oracle endpoint unavailable")

	// ErrInvalidOutput indicates the oracle response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid oracle output format")
)
