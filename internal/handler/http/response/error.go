package response

import (
	"errors"
	"net/http"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/timeclock"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A malformed stored time means corrupt data; surface it loudly instead
	// of estimating around it.
	var timeErr *timeclock.MalformedTimeError
	if errors.As(err, &timeErr) {
		InternalServerError(w, err.Error())
		return
	}

	switch {
	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrMemberNotFound):
		NotFound(w, "Member not found")
	case errors.Is(err, organization.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNotShiftOwner):
		Forbidden(w, "Shift belongs to another employee")
	case errors.Is(err, shift.ErrShiftLocked):
		Conflict(w, "Shift is no longer editable")
	case errors.Is(err, shift.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Invalid month, expected YYYY-MM", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
