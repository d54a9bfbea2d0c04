package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/handler/http/response"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/validator"
)

type ShiftHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// parseMonth parses a "YYYY-MM" query value into the first day of the month.
func parseMonth(value string) (time.Time, error) {
	month, ok := validator.IsValidMonth(value)
	if !ok {
		return time.Time{}, payroll.ErrInvalidMonth
	}
	return month, nil
}

// Submit implements ShiftHandler.
func (h *ShiftHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req shift.SubmitShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrganizationID = chi.URLParam(r, "orgID")
	req.EmployeeID = callerID(r)

	resp, err := h.shiftService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift submitted successfully", resp)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "orgID")
	shiftID := chi.URLParam(r, "shiftID")

	resp, err := h.shiftService.GetShift(r.Context(), organizationID, shiftID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListMonth implements ShiftHandler.
func (h *ShiftHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := shift.ListShiftsFilter{
		OrganizationID: chi.URLParam(r, "orgID"),
		Month:          month,
	}
	if v := r.URL.Query().Get("status"); v != "" {
		if !validator.IsInSlice(v, shift.StatusStrings()) {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		status := shift.Status(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	resp, err := h.shiftService.ListMonth(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrganizationID = chi.URLParam(r, "orgID")
	req.ShiftID = chi.URLParam(r, "shiftID")
	req.EmployeeID = callerID(r)

	resp, err := h.shiftService.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift updated successfully", resp)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "orgID")
	shiftID := chi.URLParam(r, "shiftID")

	if err := h.shiftService.DeleteShift(r.Context(), organizationID, shiftID, callerID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// Approve implements ShiftHandler.
func (h *ShiftHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := shift.ApproveShiftRequest{
		OrganizationID: chi.URLParam(r, "orgID"),
		ShiftID:        chi.URLParam(r, "shiftID"),
		ApproverID:     callerID(r),
	}

	resp, err := h.shiftService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift approved successfully", resp)
}

// Reject implements ShiftHandler.
func (h *ShiftHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req shift.RejectShiftRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Reject shift decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.OrganizationID = chi.URLParam(r, "orgID")
	req.ShiftID = chi.URLParam(r, "shiftID")

	resp, err := h.shiftService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift rejected successfully", resp)
}
