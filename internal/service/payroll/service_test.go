package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/holiday"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     payroll.PayrollService
	shifts  *memory.ShiftStore
	members *memory.MemberStore
	orgs    *memory.OrganizationStore
}

func newFixture(t *testing.T, cal holiday.Calendar) fixture {
	t.Helper()

	orgs := memory.NewOrganizationStore()
	members := memory.NewMemberStore()
	shifts := memory.NewShiftStore()

	_, err := orgs.Create(context.Background(), organization.Organization{
		ID:       "org-1",
		Name:     "Cafe Himawari",
		Settings: payroll.DefaultPaySettings(),
	})
	require.NoError(t, err)

	return fixture{
		svc:     NewPayrollService(shifts, orgs, members, cal),
		shifts:  shifts,
		members: members,
		orgs:    orgs,
	}
}

func (f fixture) addShift(t *testing.T, id, employeeID, name string, day int, start, end string, status shift.Status) {
	t.Helper()

	_, err := f.shifts.Create(context.Background(), shift.Shift{
		ID:             id,
		OrganizationID: "org-1",
		EmployeeID:     employeeID,
		EmployeeName:   name,
		Date:           time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
		StartTime:      start,
		EndTime:        end,
		Status:         status,
	})
	require.NoError(t, err)
}

func june() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestMonthlySummary_FinalizedExcludesPending(t *testing.T) {
	t.Parallel()
	f := newFixture(t, holiday.None)
	ctx := context.Background()

	f.addShift(t, "s1", "emp-1", "Tanaka", 3, "09:00", "12:00", shift.StatusApproved) // 3300
	f.addShift(t, "s2", "emp-1", "Tanaka", 4, "09:00", "11:00", shift.StatusPending)  // 2200
	f.addShift(t, "s3", "emp-1", "Tanaka", 5, "09:00", "10:00", shift.StatusRejected)

	finalized, err := f.svc.MonthlySummary(ctx, "org-1", june(), false)
	require.NoError(t, err)
	assert.Equal(t, "2024-06", finalized.Month)
	assert.False(t, finalized.IncludePending)
	assert.Equal(t, 1, finalized.ShiftCount)
	assert.True(t, finalized.Total.Equal(decimal.NewFromInt(3300)), "total = %s", finalized.Total)

	estimate, err := f.svc.MonthlySummary(ctx, "org-1", june(), true)
	require.NoError(t, err)
	assert.True(t, estimate.IncludePending)
	assert.Equal(t, 2, estimate.ShiftCount)
	assert.True(t, estimate.Total.Equal(decimal.NewFromInt(5500)), "total = %s", estimate.Total)
}

func TestMonthlySummary_AppliesMemberOverrides(t *testing.T) {
	t.Parallel()
	f := newFixture(t, holiday.None)
	ctx := context.Background()

	wage := decimal.NewFromInt(1500)
	_, err := f.members.Upsert(ctx, "org-1", organization.Member{
		EmployeeID:  "emp-1",
		DisplayName: "Tanaka",
		Override:    payroll.EmployeeOverride{HourlyWage: &wage},
	})
	require.NoError(t, err)

	f.addShift(t, "s1", "emp-1", "Tanaka", 3, "09:00", "13:00", shift.StatusApproved)

	summary, err := f.svc.MonthlySummary(ctx, "org-1", june(), false)
	require.NoError(t, err)
	require.Len(t, summary.Members, 1)
	assert.True(t, summary.Members[0].Total.Equal(decimal.NewFromInt(6000)), "total = %s", summary.Members[0].Total)
}

func TestMonthlySummary_UnknownOrganization(t *testing.T) {
	t.Parallel()
	f := newFixture(t, holiday.None)

	_, err := f.svc.MonthlySummary(context.Background(), "org-missing", june(), false)
	assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
}

func TestShiftBreakdown_UsesCalendar(t *testing.T) {
	t.Parallel()

	// June 3rd 2024 is a Monday; make it a public holiday via the table.
	f := newFixture(t, holiday.Table{"2024-06-03": "Test Holiday"})
	ctx := context.Background()

	settings := payroll.DefaultPaySettings()
	settings.HolidayPremiumEnabled = true
	require.NoError(t, f.orgs.UpdateSettings(ctx, "org-1", settings))

	f.addShift(t, "s1", "emp-1", "Tanaka", 3, "09:00", "12:00", shift.StatusApproved)

	bd, err := f.svc.ShiftBreakdown(ctx, "org-1", "s1")
	require.NoError(t, err)
	assert.True(t, bd.HolidayApplied)
	// 3300 base + 35% holiday premium on it, rounded at the total.
	assert.True(t, bd.Total.Equal(decimal.NewFromInt(4455)), "total = %s", bd.Total)
}

func TestExportDetailCSV_HeaderAndRows(t *testing.T) {
	t.Parallel()
	f := newFixture(t, holiday.None)

	f.addShift(t, "s1", "emp-1", "Tanaka", 3, "09:00", "12:00", shift.StatusApproved)
	f.addShift(t, "s2", "emp-1", "Tanaka", 4, "09:00", "11:00", shift.StatusPending)

	rows, err := f.svc.ExportDetailCSV(context.Background(), "org-1", june(), false)
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one eligible shift
	assert.Equal(t, payroll.DetailCSVHeader, rows[0])
	assert.Equal(t, "2024-06-03", rows[1][0])
	assert.Equal(t, "Tanaka", rows[1][1])
}

func TestExportMemberCSV_SortedByName(t *testing.T) {
	t.Parallel()
	f := newFixture(t, holiday.None)

	f.addShift(t, "s1", "emp-1", "Tanaka", 3, "09:00", "12:00", shift.StatusApproved)
	f.addShift(t, "s2", "emp-2", "Suzuki", 3, "10:00", "14:00", shift.StatusApproved)

	rows, err := f.svc.ExportMemberCSV(context.Background(), "org-1", june(), false)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, payroll.MemberCSVHeader, rows[0])
	assert.Equal(t, "Suzuki", rows[1][0])
	assert.Equal(t, "Tanaka", rows[2][0])
}
