package payroll

import (
	"context"
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/holiday"
)

type payrollServiceImpl struct {
	shiftRepo  shift.ShiftRepository
	orgRepo    organization.OrganizationRepository
	memberRepo organization.MemberRepository
	calendar   holiday.Calendar
}

func NewPayrollService(
	shiftRepo shift.ShiftRepository,
	orgRepo organization.OrganizationRepository,
	memberRepo organization.MemberRepository,
	calendar holiday.Calendar,
) payroll.PayrollService {
	return &payrollServiceImpl{
		shiftRepo:  shiftRepo,
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		calendar:   calendar,
	}
}

// monthInputs loads everything a monthly computation needs: the resolved pay
// policy, the override map and the month's shifts.
func (s *payrollServiceImpl) monthInputs(ctx context.Context, organizationID string, month time.Time) (payroll.PaySettings, map[string]payroll.EmployeeOverride, []shift.Shift, error) {
	settings, err := s.orgRepo.GetSettings(ctx, organizationID)
	if err != nil {
		return payroll.PaySettings{}, nil, nil, err
	}
	overrides, err := s.memberRepo.Overrides(ctx, organizationID)
	if err != nil {
		return payroll.PaySettings{}, nil, nil, err
	}
	shifts, err := s.shiftRepo.ListMonth(ctx, organizationID, month)
	if err != nil {
		return payroll.PaySettings{}, nil, nil, err
	}
	return settings, overrides, shifts, nil
}

// MonthlySummary implements payroll.PayrollService.
func (s *payrollServiceImpl) MonthlySummary(ctx context.Context, organizationID string, month time.Time, includePending bool) (payroll.MonthlySummaryResponse, error) {
	settings, overrides, shifts, err := s.monthInputs(ctx, organizationID, month)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}

	summary, err := payroll.AggregateMonth(shifts, settings, overrides, s.calendar, includePending)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}
	return payroll.NewMonthlySummaryResponse(month.Format("2006-01"), includePending, summary), nil
}

// ShiftBreakdown implements payroll.PayrollService.
func (s *payrollServiceImpl) ShiftBreakdown(ctx context.Context, organizationID, shiftID string) (payroll.PayBreakdownResponse, error) {
	record, err := s.shiftRepo.GetByID(ctx, shiftID, organizationID)
	if err != nil {
		return payroll.PayBreakdownResponse{}, err
	}
	settings, err := s.orgRepo.GetSettings(ctx, organizationID)
	if err != nil {
		return payroll.PayBreakdownResponse{}, err
	}

	var override *payroll.EmployeeOverride
	if m, err := s.memberRepo.Get(ctx, organizationID, record.EmployeeID); err == nil {
		if m.Override.HourlyWage != nil || m.Override.TransportAllowancePerShift != nil {
			override = &m.Override
		}
	}

	bd, err := payroll.CalculateShiftPay(record, settings, override, s.calendar)
	if err != nil {
		return payroll.PayBreakdownResponse{}, err
	}
	return payroll.NewPayBreakdownResponse(bd), nil
}

// ExportDetailCSV implements payroll.PayrollService.
func (s *payrollServiceImpl) ExportDetailCSV(ctx context.Context, organizationID string, month time.Time, includePending bool) ([][]string, error) {
	settings, overrides, shifts, err := s.monthInputs(ctx, organizationID, month)
	if err != nil {
		return nil, err
	}

	lines, err := payroll.DetailLines(shifts, settings, overrides, s.calendar, includePending)
	if err != nil {
		return nil, err
	}
	return payroll.DetailCSVRows(lines), nil
}

// ExportMemberCSV implements payroll.PayrollService.
func (s *payrollServiceImpl) ExportMemberCSV(ctx context.Context, organizationID string, month time.Time, includePending bool) ([][]string, error) {
	settings, overrides, shifts, err := s.monthInputs(ctx, organizationID, month)
	if err != nil {
		return nil, err
	}

	summary, err := payroll.AggregateMonth(shifts, settings, overrides, s.calendar, includePending)
	if err != nil {
		return nil, err
	}
	return payroll.MemberCSVRows(summary), nil
}
