package payroll

import "errors"

var (
	// ErrInvalidMonth reports a month parameter that is not a valid "YYYY-MM".
	ErrInvalidMonth = errors.New("invalid month, use YYYY-MM")
)
