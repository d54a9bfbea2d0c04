package payroll

import (
	"github.com/shopspring/decimal"
)

// PaySettings - an organization's pay policy. Rates are multipliers applied
// to the base hourly rate, never absolute amounts. The engine requires a
// fully resolved policy; callers apply DefaultPaySettings values for fields
// an organization never configured.
type PaySettings struct {
	DefaultHourlyWage decimal.Decimal

	NightPremiumEnabled bool
	NightPremiumRate    decimal.Decimal
	NightStart          string // "HH:mm"
	NightEnd            string // "HH:mm"; may be earlier than NightStart (wraps midnight)

	OvertimePremiumEnabled        bool
	OvertimePremiumRate           decimal.Decimal
	OvertimeDailyThresholdMinutes int

	HolidayPremiumEnabled  bool
	HolidayPremiumRate     decimal.Decimal
	HolidayIncludesWeekend bool

	TransportAllowanceEnabled  bool
	TransportAllowancePerShift decimal.Decimal
}

// DefaultPaySettings returns the documented fallback policy used whenever an
// organization has no stored value for a field.
func DefaultPaySettings() PaySettings {
	return PaySettings{
		DefaultHourlyWage:             decimal.NewFromInt(1100),
		NightPremiumEnabled:           false,
		NightPremiumRate:              decimal.NewFromFloat(0.25),
		NightStart:                    "22:00",
		NightEnd:                      "05:00",
		OvertimePremiumEnabled:        false,
		OvertimePremiumRate:           decimal.NewFromFloat(0.25),
		OvertimeDailyThresholdMinutes: 480,
		HolidayPremiumEnabled:         false,
		HolidayPremiumRate:            decimal.NewFromFloat(0.35),
		HolidayIncludesWeekend:        true,
		TransportAllowanceEnabled:     false,
		TransportAllowancePerShift:    decimal.Zero,
	}
}

// EmployeeOverride - per-employee values that take precedence over the
// organization defaults. Nil fields fall back.
type EmployeeOverride struct {
	HourlyWage                 *decimal.Decimal
	TransportAllowancePerShift *decimal.Decimal
}

// PayBreakdown - gross pay for one shift. Components stay fractional so they
// sum correctly across shifts; only Total is rounded, to the nearest whole
// currency unit.
type PayBreakdown struct {
	TotalMinutes    int
	NightMinutes    int
	OvertimeMinutes int
	HolidayApplied  bool
	HourlyWage      decimal.Decimal

	Base            decimal.Decimal
	NightPremium    decimal.Decimal
	OvertimePremium decimal.Decimal
	HolidayPremium  decimal.Decimal
	Transport       decimal.Decimal
	Total           decimal.Decimal
}

// MemberSummary - one employee's monthly aggregate over eligible shifts.
type MemberSummary struct {
	EmployeeID   string
	EmployeeName string

	ShiftCount   int
	TotalMinutes int
	NightMinutes int

	Base            decimal.Decimal
	NightPremium    decimal.Decimal
	OvertimePremium decimal.Decimal
	HolidayPremium  decimal.Decimal
	Transport       decimal.Decimal
	// Total is the sum of the per-shift rounded totals, matching how the
	// payroll report has always added shifts up.
	Total decimal.Decimal
}

// MonthlySummary - organization-wide aggregate plus the per-member rows,
// sorted by employee display name.
type MonthlySummary struct {
	ShiftCount   int
	TotalMinutes int
	NightMinutes int

	Base            decimal.Decimal
	NightPremium    decimal.Decimal
	OvertimePremium decimal.Decimal
	HolidayPremium  decimal.Decimal
	Transport       decimal.Decimal
	Total           decimal.Decimal

	Members []MemberSummary
}

// ShiftDetail - one eligible shift together with its computed breakdown,
// used by the detail export.
type ShiftDetail struct {
	EmployeeID   string
	EmployeeName string
	Date         string // "YYYY-MM-DD"
	StartTime    string
	EndTime      string
	Breakdown    PayBreakdown
}
