package payroll

import (
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/holiday"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/timeclock"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// ResolveHourlyWage picks the hourly rate for one shift. Precedence: the wage
// snapshot on the shift itself, then the member's override, then the
// organization default.
func ResolveHourlyWage(shiftWage, overrideWage *decimal.Decimal, settings PaySettings) decimal.Decimal {
	if shiftWage != nil {
		return *shiftWage
	}
	if overrideWage != nil {
		return *overrideWage
	}
	return settings.DefaultHourlyWage
}

// ResolveTransport picks the per-shift transport allowance. Zero when the
// allowance is disabled; otherwise the member's value, falling back to the
// organization default.
func ResolveTransport(override *EmployeeOverride, settings PaySettings) decimal.Decimal {
	if !settings.TransportAllowanceEnabled {
		return decimal.Zero
	}
	if override != nil && override.TransportAllowancePerShift != nil {
		return *override.TransportAllowancePerShift
	}
	return settings.TransportAllowancePerShift
}

// NightPremiumMinutes returns how many of the shift's minutes fall inside the
// policy's night window, or zero when the premium is disabled.
func NightPremiumMinutes(startTime, endTime string, settings PaySettings) (int, error) {
	if !settings.NightPremiumEnabled {
		return 0, nil
	}
	return timeclock.NightOverlapMinutes(startTime, endTime, settings.NightStart, settings.NightEnd)
}

// OvertimeMinutes returns the minutes past the daily threshold, or zero when
// the premium is disabled. The threshold is checked per shift, not summed
// across an employee's shifts on the same day: two under-threshold shifts on
// one date earn no overtime even if their combined time exceeds it. That is a
// known limitation carried over deliberately.
func OvertimeMinutes(startTime, endTime string, settings PaySettings) (int, error) {
	if !settings.OvertimePremiumEnabled {
		return 0, nil
	}
	total, err := timeclock.DurationMinutes(startTime, endTime)
	if err != nil {
		return 0, err
	}
	return max(0, total-settings.OvertimeDailyThresholdMinutes), nil
}

// HolidayApplies reports whether the holiday premium covers the shift's date:
// a weekend day when the policy counts weekends, or a public holiday per the
// calendar oracle. Always false when the premium is disabled.
func HolidayApplies(date time.Time, settings PaySettings, cal holiday.Calendar) bool {
	if !settings.HolidayPremiumEnabled {
		return false
	}
	if settings.HolidayIncludesWeekend {
		switch date.Weekday() {
		case time.Saturday, time.Sunday:
			return true
		}
	}
	return cal.IsHoliday(date)
}

// CalculateShiftPay computes the gross pay breakdown for one shift record.
// Premiums stack additively; there is no capping and no mutual exclusivity.
// The holiday premium covers the whole shift duration, not just holiday-window
// minutes. Only the final total is rounded.
func CalculateShiftPay(sh shift.Shift, settings PaySettings, override *EmployeeOverride, cal holiday.Calendar) (PayBreakdown, error) {
	var overrideWage *decimal.Decimal
	if override != nil {
		overrideWage = override.HourlyWage
	}
	hourly := ResolveHourlyWage(sh.HourlyWage, overrideWage, settings)

	totalMinutes, err := timeclock.DurationMinutes(sh.StartTime, sh.EndTime)
	if err != nil {
		return PayBreakdown{}, err
	}
	nightMinutes, err := NightPremiumMinutes(sh.StartTime, sh.EndTime, settings)
	if err != nil {
		return PayBreakdown{}, err
	}
	overtimeMinutes, err := OvertimeMinutes(sh.StartTime, sh.EndTime, settings)
	if err != nil {
		return PayBreakdown{}, err
	}

	base := hourly.Mul(decimal.NewFromInt(int64(totalMinutes))).Div(sixty)

	nightPremium := decimal.Zero
	if settings.NightPremiumEnabled {
		nightPremium = hourly.
			Mul(decimal.NewFromInt(int64(nightMinutes))).Div(sixty).
			Mul(settings.NightPremiumRate)
	}

	overtimePremium := decimal.Zero
	if settings.OvertimePremiumEnabled {
		overtimePremium = hourly.
			Mul(decimal.NewFromInt(int64(overtimeMinutes))).Div(sixty).
			Mul(settings.OvertimePremiumRate)
	}

	holidayApplied := HolidayApplies(sh.Date, settings, cal)
	holidayPremium := decimal.Zero
	if holidayApplied {
		holidayPremium = base.Mul(settings.HolidayPremiumRate)
	}

	transport := ResolveTransport(override, settings)

	total := base.
		Add(nightPremium).
		Add(overtimePremium).
		Add(holidayPremium).
		Add(transport).
		Round(0)

	return PayBreakdown{
		TotalMinutes:    totalMinutes,
		NightMinutes:    nightMinutes,
		OvertimeMinutes: overtimeMinutes,
		HolidayApplied:  holidayApplied,
		HourlyWage:      hourly,
		Base:            base,
		NightPremium:    nightPremium,
		OvertimePremium: overtimePremium,
		HolidayPremium:  holidayPremium,
		Transport:       transport,
		Total:           total,
	}, nil
}
