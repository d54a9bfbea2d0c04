package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMemberNotFound       = errors.New("member not found")

	// Request data errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
