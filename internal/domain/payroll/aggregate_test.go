package payroll

import (
	"testing"
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthShift(employeeID, name string, day int, start, end string, status shift.Status) shift.Shift {
	return shift.Shift{
		ID:           employeeID + "-" + start,
		EmployeeID:   employeeID,
		EmployeeName: name,
		Date:         time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
		StartTime:    start,
		EndTime:      end,
		Status:       status,
	}
}

func TestAggregateMonth_EligibilityByStatus(t *testing.T) {
	t.Parallel()

	settings := DefaultPaySettings() // 1100 yen/h, premiums off
	shifts := []shift.Shift{
		monthShift("emp-1", "Tanaka", 3, "09:00", "12:00", shift.StatusApproved), // 3300
		monthShift("emp-1", "Tanaka", 4, "09:00", "11:00", shift.StatusPending),  // 2200
		monthShift("emp-1", "Tanaka", 5, "09:00", "10:00", shift.StatusRejected), // never
	}

	finalized, err := AggregateMonth(shifts, settings, nil, holiday.None, false)
	require.NoError(t, err)
	assert.Equal(t, 1, finalized.ShiftCount)
	assert.True(t, finalized.Total.Equal(dec("3300")), "total = %s", finalized.Total)

	estimate, err := AggregateMonth(shifts, settings, nil, holiday.None, true)
	require.NoError(t, err)
	assert.Equal(t, 2, estimate.ShiftCount)
	assert.True(t, estimate.Total.Equal(dec("5500")), "total = %s", estimate.Total)
}

func TestAggregateMonth_PerMemberSums(t *testing.T) {
	t.Parallel()

	settings := DefaultPaySettings()
	settings.NightPremiumEnabled = true

	shifts := []shift.Shift{
		monthShift("emp-1", "Tanaka", 3, "20:00", "23:00", shift.StatusApproved),
		monthShift("emp-1", "Tanaka", 4, "09:00", "18:00", shift.StatusApproved),
		monthShift("emp-2", "Suzuki", 3, "10:00", "14:00", shift.StatusApproved),
	}
	overrides := map[string]EmployeeOverride{
		"emp-2": {HourlyWage: decPtr("1500")},
	}

	summary, err := AggregateMonth(shifts, settings, overrides, holiday.None, false)
	require.NoError(t, err)
	require.Len(t, summary.Members, 2)

	// Sorted case-insensitively by display name: Suzuki before Tanaka.
	suzuki, tanaka := summary.Members[0], summary.Members[1]
	assert.Equal(t, "Suzuki", suzuki.EmployeeName)
	assert.Equal(t, "Tanaka", tanaka.EmployeeName)

	// Suzuki: 4h at the overridden 1500 yen/h.
	assert.Equal(t, 1, suzuki.ShiftCount)
	assert.Equal(t, 240, suzuki.TotalMinutes)
	assert.True(t, suzuki.Total.Equal(dec("6000")), "suzuki total = %s", suzuki.Total)

	// Tanaka: (3h base 3300 + 1 night hour 275) + 9h base 9900.
	assert.Equal(t, 2, tanaka.ShiftCount)
	assert.Equal(t, 720, tanaka.TotalMinutes)
	assert.Equal(t, 60, tanaka.NightMinutes)
	assert.True(t, tanaka.Total.Equal(dec("13475")), "tanaka total = %s", tanaka.Total)

	// Organization-wide totals are the member sums.
	assert.Equal(t, 3, summary.ShiftCount)
	assert.Equal(t, 960, summary.TotalMinutes)
	assert.True(t, summary.Total.Equal(dec("19475")), "org total = %s", summary.Total)
}

func TestAggregateMonth_SortIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	settings := DefaultPaySettings()
	shifts := []shift.Shift{
		monthShift("emp-1", "aoki", 3, "09:00", "10:00", shift.StatusApproved),
		monthShift("emp-2", "Abe", 3, "09:00", "10:00", shift.StatusApproved),
		monthShift("emp-3", "AOKI", 3, "09:00", "10:00", shift.StatusApproved),
	}

	summary, err := AggregateMonth(shifts, settings, nil, holiday.None, false)
	require.NoError(t, err)
	require.Len(t, summary.Members, 3)

	assert.Equal(t, "Abe", summary.Members[0].EmployeeName)
	// "aoki" and "AOKI" compare equal; the employee ID breaks the tie.
	assert.Equal(t, "emp-1", summary.Members[1].EmployeeID)
	assert.Equal(t, "emp-3", summary.Members[2].EmployeeID)
}

func TestAggregateMonth_TotalsAreSumsOfRoundedShiftTotals(t *testing.T) {
	t.Parallel()

	// Two 41-minute shifts at 1000 yen/h: each shift is 683.33 and rounds to
	// 683, so the month totals 1366. Rounding the unrounded sum (1366.67)
	// would give 1367 instead; the per-shift convention is the contract.
	settings := DefaultPaySettings()
	shifts := []shift.Shift{
		monthShift("emp-1", "Tanaka", 3, "09:00", "09:41", shift.StatusApproved),
		monthShift("emp-1", "Tanaka", 4, "09:00", "09:41", shift.StatusApproved),
	}
	settings.DefaultHourlyWage = dec("1000")

	summary, err := AggregateMonth(shifts, settings, nil, holiday.None, false)
	require.NoError(t, err)
	require.Len(t, summary.Members, 1)

	assert.True(t, summary.Members[0].Total.Equal(dec("1366")), "total = %s", summary.Members[0].Total)
	// The fractional base is preserved in its own column.
	assert.False(t, summary.Members[0].Base.Equal(summary.Members[0].Base.Round(0)))
}

func TestAggregateMonth_EmptyInput(t *testing.T) {
	t.Parallel()

	summary, err := AggregateMonth(nil, DefaultPaySettings(), nil, holiday.None, false)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ShiftCount)
	assert.True(t, summary.Total.IsZero())
	assert.Empty(t, summary.Members)
}

func TestDetailLines(t *testing.T) {
	t.Parallel()

	settings := DefaultPaySettings()
	shifts := []shift.Shift{
		monthShift("emp-1", "Tanaka", 3, "09:00", "12:00", shift.StatusApproved),
		monthShift("emp-2", "Suzuki", 4, "09:00", "10:00", shift.StatusRejected),
	}

	lines, err := DetailLines(shifts, settings, nil, holiday.None, false)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "2024-06-03", lines[0].Date)
	assert.Equal(t, "Tanaka", lines[0].EmployeeName)
	assert.True(t, lines[0].Breakdown.Total.Equal(dec("3300")))
}

func TestCSVRows(t *testing.T) {
	t.Parallel()

	settings := DefaultPaySettings()
	shifts := []shift.Shift{
		monthShift("emp-1", "Tanaka", 3, "09:00", "12:00", shift.StatusApproved),
	}

	lines, err := DetailLines(shifts, settings, nil, holiday.None, false)
	require.NoError(t, err)

	detail := DetailCSVRows(lines)
	require.Len(t, detail, 2)
	assert.Equal(t, DetailCSVHeader, detail[0])
	assert.Equal(t, []string{
		"2024-06-03", "Tanaka", "09:00", "12:00", "180", "0",
		"1100", "3300", "0", "0", "0", "0", "3300",
	}, detail[1])

	summary, err := AggregateMonth(shifts, settings, nil, holiday.None, false)
	require.NoError(t, err)

	members := MemberCSVRows(summary)
	require.Len(t, members, 2)
	assert.Equal(t, MemberCSVHeader, members[0])
	assert.Equal(t, []string{
		"Tanaka", "1", "180", "0", "3300", "0", "0", "0", "0", "3300",
	}, members[1])
}
