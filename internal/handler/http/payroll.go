package http

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/handler/http/response"
)

type PayrollHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	ShiftBreakdown(w http.ResponseWriter, r *http.Request)
	ExportDetail(w http.ResponseWriter, r *http.Request)
	ExportMembers(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func includePending(r *http.Request) bool {
	return r.URL.Query().Get("include_pending") == "true"
}

// MonthlySummary implements PayrollHandler.
func (h *PayrollHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.payrollService.MonthlySummary(r.Context(), chi.URLParam(r, "orgID"), month, includePending(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ShiftBreakdown implements PayrollHandler.
func (h *PayrollHandlerImpl) ShiftBreakdown(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.ShiftBreakdown(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ExportDetail implements PayrollHandler.
func (h *PayrollHandlerImpl) ExportDetail(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.payrollService.ExportDetailCSV(r.Context(), chi.URLParam(r, "orgID"), month, includePending(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeCSV(w, fmt.Sprintf("payroll-detail-%s.csv", month.Format("2006-01")), rows)
}

// ExportMembers implements PayrollHandler.
func (h *PayrollHandlerImpl) ExportMembers(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.payrollService.ExportMemberCSV(r.Context(), chi.URLParam(r, "orgID"), month, includePending(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeCSV(w, fmt.Sprintf("payroll-members-%s.csv", month.Format("2006-01")), rows)
}

// writeCSV streams CSV records with a UTF-8 BOM so spreadsheet applications
// detect the encoding and render Japanese names correctly.
func writeCSV(w http.ResponseWriter, filename string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		slog.Error("CSV export write error", "error", err)
		return
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		slog.Error("CSV export write error", "error", err)
	}
}
