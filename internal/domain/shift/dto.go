package shift

import (
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SHIFT DTOs ==========

type SubmitShiftRequest struct {
	OrganizationID string `json:"-"`
	EmployeeID     string `json:"-"`

	EmployeeName string           `json:"employee_name"`
	Date         string           `json:"date"` // "YYYY-MM-DD"
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	HourlyWage   *decimal.Decimal `json:"hourly_wage,omitempty"`
}

func (r *SubmitShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	errs = append(errs, validateShiftTimes(r.StartTime, r.EndTime)...)
	if r.HourlyWage != nil && !r.HourlyWage.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	OrganizationID string `json:"-"`
	ShiftID        string `json:"-"`
	EmployeeID     string `json:"-"`

	Date       string           `json:"date"`
	StartTime  string           `json:"start_time"`
	EndTime    string           `json:"end_time"`
	HourlyWage *decimal.Decimal `json:"hourly_wage,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	errs = append(errs, validateShiftTimes(r.StartTime, r.EndTime)...)
	if r.HourlyWage != nil && !r.HourlyWage.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveShiftRequest struct {
	OrganizationID string `json:"-"`
	ShiftID        string `json:"-"`
	ApproverID     string `json:"-"`
}

type RejectShiftRequest struct {
	OrganizationID string `json:"-"`
	ShiftID        string `json:"-"`

	Reason *string `json:"reason,omitempty"`
}

// ListShiftsFilter scopes a month listing. Month is the first day of the
// month. Nil Status and EmployeeID mean no filtering on that axis.
type ListShiftsFilter struct {
	OrganizationID string
	Month          time.Time
	Status         *Status
	EmployeeID     *string
}

type ShiftResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Status     Status           `json:"status"`
	HourlyWage *decimal.Decimal `json:"hourly_wage,omitempty"`

	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:              s.ID,
		OrganizationID:  s.OrganizationID,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		Date:            s.Date.Format("2006-01-02"),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Status:          s.Status,
		HourlyWage:      s.HourlyWage,
		ApprovedBy:      s.ApprovedBy,
		ApprovedAt:      s.ApprovedAt,
		RejectionReason: s.RejectionReason,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// validateShiftTimes checks format first, then ordering. End must be strictly
// after start on the same calendar date; overnight shifts are submitted as
// two records.
func validateShiftTimes(startTime, endTime string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(startTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid HH:mm time"})
	}
	if !validator.IsValidClockTime(endTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid HH:mm time"})
	}
	if len(errs) > 0 {
		return errs
	}
	if startTime >= endTime {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be after start_time"})
	}
	return errs
}
