package shift

import (
	"context"
	"testing"
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/validator"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (shift.ShiftService, string) {
	t.Helper()

	orgStore := memory.NewOrganizationStore()
	memberStore := memory.NewMemberStore()
	shiftStore := memory.NewShiftStore()

	org, err := orgStore.Create(context.Background(), organization.Organization{
		ID:       "org-1",
		Name:     "Cafe Himawari",
		Settings: payroll.DefaultPaySettings(),
	})
	require.NoError(t, err)

	return NewShiftService(shiftStore, orgStore, memberStore), org.ID
}

func submit(t *testing.T, svc shift.ShiftService, orgID, employeeID, date, start, end string) shift.ShiftResponse {
	t.Helper()

	resp, err := svc.Submit(context.Background(), shift.SubmitShiftRequest{
		OrganizationID: orgID,
		EmployeeID:     employeeID,
		EmployeeName:   "Tanaka",
		Date:           date,
		StartTime:      start,
		EndTime:        end,
	})
	require.NoError(t, err)
	return resp
}

func TestSubmit_StartsPending(t *testing.T) {
	t.Parallel()
	svc, orgID := newTestService(t)

	resp := submit(t, svc, orgID, "emp-1", "2024-06-03", "09:00", "17:00")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, shift.StatusPending, resp.Status)
	assert.Nil(t, resp.ApprovedBy)
	assert.Nil(t, resp.RejectionReason)
}

func TestSubmit_RejectsInvalidTimes(t *testing.T) {
	t.Parallel()
	svc, orgID := newTestService(t)

	_, err := svc.Submit(context.Background(), shift.SubmitShiftRequest{
		OrganizationID: orgID,
		EmployeeID:     "emp-1",
		EmployeeName:   "Tanaka",
		Date:           "2024-06-03",
		StartTime:      "17:00",
		EndTime:        "09:00",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_time")
}

func TestSubmit_UnknownOrganization(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), shift.SubmitShiftRequest{
		OrganizationID: "org-missing",
		EmployeeID:     "emp-1",
		EmployeeName:   "Tanaka",
		Date:           "2024-06-03",
		StartTime:      "09:00",
		EndTime:        "17:00",
	})
	assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
}

func TestUpdateShift_OwnerOnlyWhilePending(t *testing.T) {
	t.Parallel()
	svc, orgID := newTestService(t)
	ctx := context.Background()

	created := submit(t, svc, orgID, "emp-1", "2024-06-03", "09:00", "17:00")

	_, err := svc.UpdateShift(ctx, shift.UpdateShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		EmployeeID:     "emp-2",
		Date:           "2024-06-03",
		StartTime:      "10:00",
		EndTime:        "18:00",
	})
	assert.ErrorIs(t, err, shift.ErrNotShiftOwner)

	updated, err := svc.UpdateShift(ctx, shift.UpdateShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		EmployeeID:     "emp-1",
		Date:           "2024-06-03",
		StartTime:      "10:00",
		EndTime:        "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", updated.StartTime)

	_, err = svc.Approve(ctx, shift.ApproveShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		ApproverID:     "mgr-1",
	})
	require.NoError(t, err)

	_, err = svc.UpdateShift(ctx, shift.UpdateShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		EmployeeID:     "emp-1",
		Date:           "2024-06-03",
		StartTime:      "11:00",
		EndTime:        "19:00",
	})
	assert.ErrorIs(t, err, shift.ErrShiftLocked)
}

func TestDeleteShift_LockedAfterDecision(t *testing.T) {
	t.Parallel()
	svc, orgID := newTestService(t)
	ctx := context.Background()

	created := submit(t, svc, orgID, "emp-1", "2024-06-03", "09:00", "17:00")

	_, err := svc.Reject(ctx, shift.RejectShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
	})
	require.NoError(t, err)

	err = svc.DeleteShift(ctx, orgID, created.ID, "emp-1")
	assert.ErrorIs(t, err, shift.ErrShiftLocked)
}

func TestApprove_StampsApprover(t *testing.T) {
	t.Parallel()
	svc, orgID := newTestService(t)

	created := submit(t, svc, orgID, "emp-1", "2024-06-03", "09:00", "17:00")

	approved, err := svc.Approve(context.Background(), shift.ApproveShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		ApproverID:     "mgr-1",
	})
	require.NoError(t, err)

	assert.Equal(t, shift.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "mgr-1", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
}

// Decisions overwrite each other from any state: rejecting an approved shift
// replaces the approval stamp, and re-approving clears the rejection reason.
func TestDecisions_OverwriteFromAnyState(t *testing.T) {
	t.Parallel()
	svc, orgID := newTestService(t)
	ctx := context.Background()

	created := submit(t, svc, orgID, "emp-1", "2024-06-03", "09:00", "17:00")

	_, err := svc.Approve(ctx, shift.ApproveShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		ApproverID:     "mgr-1",
	})
	require.NoError(t, err)

	reason := "wrong date"
	rejected, err := svc.Reject(ctx, shift.RejectShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		Reason:         &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, shift.StatusRejected, rejected.Status)
	assert.Nil(t, rejected.ApprovedBy)
	assert.Nil(t, rejected.ApprovedAt)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "wrong date", *rejected.RejectionReason)

	reapproved, err := svc.Approve(ctx, shift.ApproveShiftRequest{
		OrganizationID: orgID,
		ShiftID:        created.ID,
		ApproverID:     "mgr-2",
	})
	require.NoError(t, err)
	assert.Equal(t, shift.StatusApproved, reapproved.Status)
	assert.Nil(t, reapproved.RejectionReason)
	require.NotNil(t, reapproved.ApprovedBy)
	assert.Equal(t, "mgr-2", *reapproved.ApprovedBy)
}

func TestListMonth_Filters(t *testing.T) {
	t.Parallel()
	svc, orgID := newTestService(t)
	ctx := context.Background()

	first := submit(t, svc, orgID, "emp-1", "2024-06-03", "09:00", "17:00")
	submit(t, svc, orgID, "emp-2", "2024-06-04", "10:00", "15:00")
	submit(t, svc, orgID, "emp-1", "2024-07-01", "09:00", "17:00") // next month

	_, err := svc.Approve(ctx, shift.ApproveShiftRequest{
		OrganizationID: orgID,
		ShiftID:        first.ID,
		ApproverID:     "mgr-1",
	})
	require.NoError(t, err)

	june := mustMonth(t, "2024-06")

	all, err := svc.ListMonth(ctx, shift.ListShiftsFilter{OrganizationID: orgID, Month: june})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved := shift.StatusApproved
	onlyApproved, err := svc.ListMonth(ctx, shift.ListShiftsFilter{
		OrganizationID: orgID,
		Month:          june,
		Status:         &approved,
	})
	require.NoError(t, err)
	require.Len(t, onlyApproved, 1)
	assert.Equal(t, first.ID, onlyApproved[0].ID)

	emp2 := "emp-2"
	byEmployee, err := svc.ListMonth(ctx, shift.ListShiftsFilter{
		OrganizationID: orgID,
		Month:          june,
		EmployeeID:     &emp2,
	})
	require.NoError(t, err)
	require.Len(t, byEmployee, 1)
	assert.Equal(t, "emp-2", byEmployee[0].EmployeeID)
}

func TestSubmit_EnrollsMember(t *testing.T) {
	t.Parallel()

	orgStore := memory.NewOrganizationStore()
	memberStore := memory.NewMemberStore()
	shiftStore := memory.NewShiftStore()
	ctx := context.Background()

	_, err := orgStore.Create(ctx, organization.Organization{
		ID:       "org-1",
		Settings: payroll.DefaultPaySettings(),
	})
	require.NoError(t, err)

	svc := NewShiftService(shiftStore, orgStore, memberStore)
	submit(t, svc, "org-1", "emp-1", "2024-06-03", "09:00", "17:00")

	m, err := memberStore.Get(ctx, "org-1", "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "Tanaka", m.DisplayName)
}

func mustMonth(t *testing.T, value string) time.Time {
	t.Helper()

	month, err := time.Parse("2006-01", value)
	require.NoError(t, err)
	return month
}
