package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/handler/http/response"
)

// Callers identify themselves with this header. Authentication proper is
// handled upstream by the identity proxy; the API trusts the header.
const headerEmployeeID = "X-Employee-ID"

func callerID(r *http.Request) string {
	return r.Header.Get(headerEmployeeID)
}

type OrganizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)

	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)

	ListMembers(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	PutOverride(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{organizationService: organizationService}
}

// Create implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req organization.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create organization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatedBy = callerID(r)

	resp, err := h.organizationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Organization created successfully", resp)
}

// Get implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "orgID")

	resp, err := h.organizationService.Get(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetSettings implements OrganizationHandler.
func (h *OrganizationHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "orgID")

	resp, err := h.organizationService.GetSettings(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateSettings implements OrganizationHandler.
func (h *OrganizationHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdatePaySettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrganizationID = chi.URLParam(r, "orgID")

	resp, err := h.organizationService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay settings updated successfully", resp)
}

// ListMembers implements OrganizationHandler.
func (h *OrganizationHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "orgID")

	resp, err := h.organizationService.ListMembers(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetMember implements OrganizationHandler.
func (h *OrganizationHandlerImpl) GetMember(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "orgID")
	employeeID := chi.URLParam(r, "employeeID")

	resp, err := h.organizationService.GetMember(r.Context(), organizationID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// PutOverride implements OrganizationHandler.
func (h *OrganizationHandlerImpl) PutOverride(w http.ResponseWriter, r *http.Request) {
	var req organization.PutOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PutOverride decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrganizationID = chi.URLParam(r, "orgID")
	req.EmployeeID = chi.URLParam(r, "employeeID")

	resp, err := h.organizationService.PutOverride(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member override updated successfully", resp)
}
