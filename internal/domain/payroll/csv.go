package payroll

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// The exports round each money column for display. Totals are already whole
// units; the other columns stay fractional internally (see PayBreakdown).

var DetailCSVHeader = []string{
	"date", "employee", "start", "end", "minutes", "night_minutes",
	"hourly_wage", "base", "night_premium", "overtime_premium",
	"holiday_premium", "transport", "total",
}

var MemberCSVHeader = []string{
	"employee", "shift_count", "minutes", "night_minutes",
	"base", "night_premium", "overtime_premium",
	"holiday_premium", "transport", "total",
}

// DetailCSVRows renders per-shift detail lines as CSV records, header first.
func DetailCSVRows(lines []ShiftDetail) [][]string {
	rows := make([][]string, 0, len(lines)+1)
	rows = append(rows, DetailCSVHeader)
	for _, line := range lines {
		bd := line.Breakdown
		rows = append(rows, []string{
			line.Date,
			line.EmployeeName,
			line.StartTime,
			line.EndTime,
			strconv.Itoa(bd.TotalMinutes),
			strconv.Itoa(bd.NightMinutes),
			money(bd.HourlyWage),
			money(bd.Base),
			money(bd.NightPremium),
			money(bd.OvertimePremium),
			money(bd.HolidayPremium),
			money(bd.Transport),
			money(bd.Total),
		})
	}
	return rows
}

// MemberCSVRows renders the per-member monthly aggregate as CSV records,
// header first, in the summary's display-name order.
func MemberCSVRows(summary MonthlySummary) [][]string {
	rows := make([][]string, 0, len(summary.Members)+1)
	rows = append(rows, MemberCSVHeader)
	for _, m := range summary.Members {
		rows = append(rows, []string{
			m.EmployeeName,
			strconv.Itoa(m.ShiftCount),
			strconv.Itoa(m.TotalMinutes),
			strconv.Itoa(m.NightMinutes),
			money(m.Base),
			money(m.NightPremium),
			money(m.OvertimePremium),
			money(m.HolidayPremium),
			money(m.Transport),
			money(m.Total),
		})
	}
	return rows
}

func money(d decimal.Decimal) string {
	return d.Round(0).String()
}
