package payroll

import (
	"sort"
	"strings"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/holiday"
)

// Eligible reports whether a shift counts toward a payroll total. Approved
// shifts always count. Pending shifts count only in the speculative estimate
// view (includePending), which an employee uses for their own running total,
// never for finalized payroll. Rejected shifts never count.
func Eligible(status shift.Status, includePending bool) bool {
	switch status {
	case shift.StatusApproved:
		return true
	case shift.StatusPending:
		return includePending
	default:
		return false
	}
}

// AggregateMonth computes per-member and organization-wide totals over one
// month of shift records. The caller supplies the month's shifts already
// scoped to one organization; the only filtering done here is eligibility by
// status. Inputs are treated as an immutable snapshot and are not mutated.
func AggregateMonth(
	shifts []shift.Shift,
	settings PaySettings,
	overrides map[string]EmployeeOverride,
	cal holiday.Calendar,
	includePending bool,
) (MonthlySummary, error) {
	summary := MonthlySummary{}
	byMember := make(map[string]*MemberSummary)

	for _, sh := range shifts {
		if !Eligible(sh.Status, includePending) {
			continue
		}

		var override *EmployeeOverride
		if ov, ok := overrides[sh.EmployeeID]; ok {
			override = &ov
		}

		bd, err := CalculateShiftPay(sh, settings, override, cal)
		if err != nil {
			return MonthlySummary{}, err
		}

		member, ok := byMember[sh.EmployeeID]
		if !ok {
			member = &MemberSummary{
				EmployeeID:   sh.EmployeeID,
				EmployeeName: sh.EmployeeName,
			}
			byMember[sh.EmployeeID] = member
		}

		member.ShiftCount++
		member.TotalMinutes += bd.TotalMinutes
		member.NightMinutes += bd.NightMinutes
		member.Base = member.Base.Add(bd.Base)
		member.NightPremium = member.NightPremium.Add(bd.NightPremium)
		member.OvertimePremium = member.OvertimePremium.Add(bd.OvertimePremium)
		member.HolidayPremium = member.HolidayPremium.Add(bd.HolidayPremium)
		member.Transport = member.Transport.Add(bd.Transport)
		member.Total = member.Total.Add(bd.Total)
	}

	members := make([]MemberSummary, 0, len(byMember))
	for _, m := range byMember {
		members = append(members, *m)
	}
	sort.Slice(members, func(i, j int) bool {
		a := strings.ToLower(members[i].EmployeeName)
		b := strings.ToLower(members[j].EmployeeName)
		if a == b {
			return members[i].EmployeeID < members[j].EmployeeID
		}
		return a < b
	})

	for _, m := range members {
		summary.ShiftCount += m.ShiftCount
		summary.TotalMinutes += m.TotalMinutes
		summary.NightMinutes += m.NightMinutes
		summary.Base = summary.Base.Add(m.Base)
		summary.NightPremium = summary.NightPremium.Add(m.NightPremium)
		summary.OvertimePremium = summary.OvertimePremium.Add(m.OvertimePremium)
		summary.HolidayPremium = summary.HolidayPremium.Add(m.HolidayPremium)
		summary.Transport = summary.Transport.Add(m.Transport)
		summary.Total = summary.Total.Add(m.Total)
	}
	summary.Members = members

	return summary, nil
}

// DetailLines computes the per-shift detail rows for the month, in the same
// eligibility order the aggregate uses. Shift order follows the input slice,
// which repositories return sorted by date.
func DetailLines(
	shifts []shift.Shift,
	settings PaySettings,
	overrides map[string]EmployeeOverride,
	cal holiday.Calendar,
	includePending bool,
) ([]ShiftDetail, error) {
	var lines []ShiftDetail
	for _, sh := range shifts {
		if !Eligible(sh.Status, includePending) {
			continue
		}

		var override *EmployeeOverride
		if ov, ok := overrides[sh.EmployeeID]; ok {
			override = &ov
		}

		bd, err := CalculateShiftPay(sh, settings, override, cal)
		if err != nil {
			return nil, err
		}

		lines = append(lines, ShiftDetail{
			EmployeeID:   sh.EmployeeID,
			EmployeeName: sh.EmployeeName,
			Date:         sh.Date.Format("2006-01-02"),
			StartTime:    sh.StartTime,
			EndTime:      sh.EndTime,
			Breakdown:    bd,
		})
	}
	return lines, nil
}
