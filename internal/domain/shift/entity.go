package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []Status{StatusPending, StatusApproved, StatusRejected}

// StatusStrings returns the valid status values as plain strings, for query
// parameter validation.
func StatusStrings() []string {
	values := make([]string, len(StatusValues))
	for i, s := range StatusValues {
		values[i] = string(s)
	}
	return values
}

// Shift - one submitted work record. Times are wall-clock "HH:mm" strings on
// a single calendar date; a shift never spans midnight. HourlyWage is an
// optional per-shift wage snapshot that wins over the member override and the
// organization default.
type Shift struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	EmployeeName   string

	Date      time.Time
	StartTime string // "HH:mm"
	EndTime   string // "HH:mm", strictly after StartTime

	Status     Status
	HourlyWage *decimal.Decimal

	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Approve stamps the shift approved. Transitions are unconditional
// overwrites: approving a rejected shift simply replaces the rejection,
// clearing its reason.
func (s *Shift) Approve(approverID string, at time.Time) {
	s.Status = StatusApproved
	s.ApprovedBy = &approverID
	s.ApprovedAt = &at
	s.RejectionReason = nil
	s.UpdatedAt = at
}

// Reject stamps the shift rejected, replacing any earlier approval stamp.
// The reason is optional.
func (s *Shift) Reject(reason *string, at time.Time) {
	s.Status = StatusRejected
	s.ApprovedBy = nil
	s.ApprovedAt = nil
	s.RejectionReason = reason
	s.UpdatedAt = at
}

// Editable reports whether the owner may still modify or delete the shift.
// Only pending shifts are editable; a manager's decision locks the record.
func (s *Shift) Editable() bool {
	return s.Status == StatusPending
}
