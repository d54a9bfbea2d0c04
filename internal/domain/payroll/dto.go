package payroll

import (
	"github.com/shopspring/decimal"
)

// ========== RESPONSE DTOs ==========

type PayBreakdownResponse struct {
	TotalMinutes    int             `json:"total_minutes"`
	NightMinutes    int             `json:"night_minutes"`
	OvertimeMinutes int             `json:"overtime_minutes"`
	HolidayApplied  bool            `json:"holiday_applied"`
	HourlyWage      decimal.Decimal `json:"hourly_wage"`
	Base            decimal.Decimal `json:"base"`
	NightPremium    decimal.Decimal `json:"night_premium"`
	OvertimePremium decimal.Decimal `json:"overtime_premium"`
	HolidayPremium  decimal.Decimal `json:"holiday_premium"`
	Transport       decimal.Decimal `json:"transport"`
	Total           decimal.Decimal `json:"total"`
}

func NewPayBreakdownResponse(bd PayBreakdown) PayBreakdownResponse {
	return PayBreakdownResponse{
		TotalMinutes:    bd.TotalMinutes,
		NightMinutes:    bd.NightMinutes,
		OvertimeMinutes: bd.OvertimeMinutes,
		HolidayApplied:  bd.HolidayApplied,
		HourlyWage:      bd.HourlyWage,
		Base:            bd.Base,
		NightPremium:    bd.NightPremium,
		OvertimePremium: bd.OvertimePremium,
		HolidayPremium:  bd.HolidayPremium,
		Transport:       bd.Transport,
		Total:           bd.Total,
	}
}

type MemberSummaryResponse struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	ShiftCount      int             `json:"shift_count"`
	TotalMinutes    int             `json:"total_minutes"`
	NightMinutes    int             `json:"night_minutes"`
	Base            decimal.Decimal `json:"base"`
	NightPremium    decimal.Decimal `json:"night_premium"`
	OvertimePremium decimal.Decimal `json:"overtime_premium"`
	HolidayPremium  decimal.Decimal `json:"holiday_premium"`
	Transport       decimal.Decimal `json:"transport"`
	Total           decimal.Decimal `json:"total"`
}

type MonthlySummaryResponse struct {
	Month           string                  `json:"month"` // "YYYY-MM"
	IncludePending  bool                    `json:"include_pending"`
	ShiftCount      int                     `json:"shift_count"`
	TotalMinutes    int                     `json:"total_minutes"`
	NightMinutes    int                     `json:"night_minutes"`
	Base            decimal.Decimal         `json:"base"`
	NightPremium    decimal.Decimal         `json:"night_premium"`
	OvertimePremium decimal.Decimal         `json:"overtime_premium"`
	HolidayPremium  decimal.Decimal         `json:"holiday_premium"`
	Transport       decimal.Decimal         `json:"transport"`
	Total           decimal.Decimal         `json:"total"`
	Members         []MemberSummaryResponse `json:"members"`
}

func NewMonthlySummaryResponse(month string, includePending bool, summary MonthlySummary) MonthlySummaryResponse {
	members := make([]MemberSummaryResponse, 0, len(summary.Members))
	for _, m := range summary.Members {
		members = append(members, MemberSummaryResponse{
			EmployeeID:      m.EmployeeID,
			EmployeeName:    m.EmployeeName,
			ShiftCount:      m.ShiftCount,
			TotalMinutes:    m.TotalMinutes,
			NightMinutes:    m.NightMinutes,
			Base:            m.Base,
			NightPremium:    m.NightPremium,
			OvertimePremium: m.OvertimePremium,
			HolidayPremium:  m.HolidayPremium,
			Transport:       m.Transport,
			Total:           m.Total,
		})
	}
	return MonthlySummaryResponse{
		Month:           month,
		IncludePending:  includePending,
		ShiftCount:      summary.ShiftCount,
		TotalMinutes:    summary.TotalMinutes,
		NightMinutes:    summary.NightMinutes,
		Base:            summary.Base,
		NightPremium:    summary.NightPremium,
		OvertimePremium: summary.OvertimePremium,
		HolidayPremium:  summary.HolidayPremium,
		Transport:       summary.Transport,
		Total:           summary.Total,
		Members:         members,
	}
}
