package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrNotShiftOwner = errors.New("shift belongs to another employee")
	ErrShiftLocked   = errors.New("shift is no longer editable")

	// Request data errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
