package payroll

import (
	"context"
	"time"
)

// PayrollService defines the payroll views built on the computation engine.
// Months are identified by their first day.
type PayrollService interface {
	// MonthlySummary aggregates one organization's month. includePending
	// switches to the speculative estimate view; finalized payroll always
	// passes false.
	MonthlySummary(ctx context.Context, organizationID string, month time.Time, includePending bool) (MonthlySummaryResponse, error)

	// ShiftBreakdown recomputes the pay breakdown for a single shift.
	ShiftBreakdown(ctx context.Context, organizationID, shiftID string) (PayBreakdownResponse, error)

	// ExportDetailCSV returns the per-shift detail export as CSV records.
	ExportDetailCSV(ctx context.Context, organizationID string, month time.Time, includePending bool) ([][]string, error)

	// ExportMemberCSV returns the per-member monthly export as CSV records.
	ExportMemberCSV(ctx context.Context, organizationID string, month time.Time, includePending bool) ([][]string, error)
}
