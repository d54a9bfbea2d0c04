package organization

import (
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	rateCeiling      = decimal.NewFromInt(2)
	minutesPerDayMax = 1440
)

// ========== ORGANIZATION DTOs ==========

type CreateOrganizationRequest struct {
	Name      string `json:"name"`
	CreatedBy string `json:"-"`
}

func (r *CreateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrganizationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
}

func NewOrganizationResponse(o Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		CreatedBy: o.CreatedBy,
	}
}

// ========== PAY SETTINGS DTOs ==========

type PaySettingsResponse struct {
	DefaultHourlyWage decimal.Decimal `json:"default_hourly_wage"`

	NightPremiumEnabled bool            `json:"night_premium_enabled"`
	NightPremiumRate    decimal.Decimal `json:"night_premium_rate"`
	NightStart          string          `json:"night_start"`
	NightEnd            string          `json:"night_end"`

	OvertimePremiumEnabled        bool            `json:"overtime_premium_enabled"`
	OvertimePremiumRate           decimal.Decimal `json:"overtime_premium_rate"`
	OvertimeDailyThresholdMinutes int             `json:"overtime_daily_threshold_minutes"`

	HolidayPremiumEnabled  bool            `json:"holiday_premium_enabled"`
	HolidayPremiumRate     decimal.Decimal `json:"holiday_premium_rate"`
	HolidayIncludesWeekend bool            `json:"holiday_includes_weekend"`

	TransportAllowanceEnabled  bool            `json:"transport_allowance_enabled"`
	TransportAllowancePerShift decimal.Decimal `json:"transport_allowance_per_shift"`
}

func NewPaySettingsResponse(s payroll.PaySettings) PaySettingsResponse {
	return PaySettingsResponse{
		DefaultHourlyWage:             s.DefaultHourlyWage,
		NightPremiumEnabled:           s.NightPremiumEnabled,
		NightPremiumRate:              s.NightPremiumRate,
		NightStart:                    s.NightStart,
		NightEnd:                      s.NightEnd,
		OvertimePremiumEnabled:        s.OvertimePremiumEnabled,
		OvertimePremiumRate:           s.OvertimePremiumRate,
		OvertimeDailyThresholdMinutes: s.OvertimeDailyThresholdMinutes,
		HolidayPremiumEnabled:         s.HolidayPremiumEnabled,
		HolidayPremiumRate:            s.HolidayPremiumRate,
		HolidayIncludesWeekend:        s.HolidayIncludesWeekend,
		TransportAllowanceEnabled:     s.TransportAllowanceEnabled,
		TransportAllowancePerShift:    s.TransportAllowancePerShift,
	}
}

// UpdatePaySettingsRequest applies partial updates on top of the current
// resolved policy. Range checks happen here, at configuration-write time; the
// calculator itself trusts its inputs.
type UpdatePaySettingsRequest struct {
	OrganizationID string `json:"-"`

	DefaultHourlyWage *decimal.Decimal `json:"default_hourly_wage,omitempty"`

	NightPremiumEnabled *bool            `json:"night_premium_enabled,omitempty"`
	NightPremiumRate    *decimal.Decimal `json:"night_premium_rate,omitempty"`
	NightStart          *string          `json:"night_start,omitempty"`
	NightEnd            *string          `json:"night_end,omitempty"`

	OvertimePremiumEnabled        *bool            `json:"overtime_premium_enabled,omitempty"`
	OvertimePremiumRate           *decimal.Decimal `json:"overtime_premium_rate,omitempty"`
	OvertimeDailyThresholdMinutes *int             `json:"overtime_daily_threshold_minutes,omitempty"`

	HolidayPremiumEnabled  *bool            `json:"holiday_premium_enabled,omitempty"`
	HolidayPremiumRate     *decimal.Decimal `json:"holiday_premium_rate,omitempty"`
	HolidayIncludesWeekend *bool            `json:"holiday_includes_weekend,omitempty"`

	TransportAllowanceEnabled  *bool            `json:"transport_allowance_enabled,omitempty"`
	TransportAllowancePerShift *decimal.Decimal `json:"transport_allowance_per_shift,omitempty"`
}

func (r *UpdatePaySettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DefaultHourlyWage != nil && !r.DefaultHourlyWage.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "default_hourly_wage", Message: "must be positive"})
	}
	errs = append(errs, validateRate("night_premium_rate", r.NightPremiumRate)...)
	errs = append(errs, validateRate("overtime_premium_rate", r.OvertimePremiumRate)...)
	errs = append(errs, validateRate("holiday_premium_rate", r.HolidayPremiumRate)...)
	if r.NightStart != nil && !validator.IsValidClockTime(*r.NightStart) {
		errs = append(errs, validator.ValidationError{Field: "night_start", Message: "must be a valid HH:mm time"})
	}
	if r.NightEnd != nil && !validator.IsValidClockTime(*r.NightEnd) {
		errs = append(errs, validator.ValidationError{Field: "night_end", Message: "must be a valid HH:mm time"})
	}
	if r.OvertimeDailyThresholdMinutes != nil {
		if *r.OvertimeDailyThresholdMinutes < 0 || *r.OvertimeDailyThresholdMinutes > minutesPerDayMax {
			errs = append(errs, validator.ValidationError{Field: "overtime_daily_threshold_minutes", Message: "must be between 0 and 1440"})
		}
	}
	if r.TransportAllowancePerShift != nil && r.TransportAllowancePerShift.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance_per_shift", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateRate(field string, rate *decimal.Decimal) validator.ValidationErrors {
	if rate == nil {
		return nil
	}
	if rate.IsNegative() || rate.GreaterThan(rateCeiling) {
		return validator.ValidationErrors{{Field: field, Message: "must be between 0 and 2"}}
	}
	return nil
}

// ========== MEMBER DTOs ==========

type MemberResponse struct {
	EmployeeID                 string           `json:"employee_id"`
	DisplayName                string           `json:"display_name"`
	HourlyWage                 *decimal.Decimal `json:"hourly_wage,omitempty"`
	TransportAllowancePerShift *decimal.Decimal `json:"transport_allowance_per_shift,omitempty"`
}

func NewMemberResponse(m Member) MemberResponse {
	return MemberResponse{
		EmployeeID:                 m.EmployeeID,
		DisplayName:                m.DisplayName,
		HourlyWage:                 m.Override.HourlyWage,
		TransportAllowancePerShift: m.Override.TransportAllowancePerShift,
	}
}

// PutOverrideRequest sets or clears a member's pay overrides. Nil fields
// clear the override so the organization default applies again.
type PutOverrideRequest struct {
	OrganizationID string `json:"-"`
	EmployeeID     string `json:"-"`

	DisplayName                *string          `json:"display_name,omitempty"`
	HourlyWage                 *decimal.Decimal `json:"hourly_wage,omitempty"`
	TransportAllowancePerShift *decimal.Decimal `json:"transport_allowance_per_shift,omitempty"`
}

func (r *PutOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyWage != nil && !r.HourlyWage.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be positive"})
	}
	if r.TransportAllowancePerShift != nil && r.TransportAllowancePerShift.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance_per_shift", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
