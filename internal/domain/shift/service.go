package shift

import (
	"context"
)

// ShiftService defines business logic for shift submission and review
type ShiftService interface {
	Submit(ctx context.Context, req SubmitShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, organizationID, shiftID string) (ShiftResponse, error)

	// ListMonth returns one month of shifts, optionally filtered by status
	// and employee
	ListMonth(ctx context.Context, filter ListShiftsFilter) ([]ShiftResponse, error)

	// UpdateShift edits a pending shift; only the owner may edit
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift removes a pending shift; only the owner may delete
	DeleteShift(ctx context.Context, organizationID, shiftID, employeeID string) error

	// Approve and Reject overwrite the review decision from any state
	Approve(ctx context.Context, req ApproveShiftRequest) (ShiftResponse, error)
	Reject(ctx context.Context, req RejectShiftRequest) (ShiftResponse, error)
}
