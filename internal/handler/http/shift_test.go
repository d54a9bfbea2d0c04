package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/config"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/pkg/holiday"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/repository/memory"
	organizationService "github.com/hinatanotsu-agelab/timecard-management-app/internal/service/organization"
	payrollService "github.com/hinatanotsu-agelab/timecard-management-app/internal/service/payroll"
	shiftService "github.com/hinatanotsu-agelab/timecard-management-app/internal/service/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	orgRepo := memory.NewOrganizationStore()
	memberRepo := memory.NewMemberStore()
	shiftRepo := memory.NewShiftStore()

	orgSvc := organizationService.NewOrganizationService(orgRepo, memberRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, orgRepo, memberRepo)
	payrollSvc := payrollService.NewPayrollService(shiftRepo, orgRepo, memberRepo, holiday.None)

	cfg := &config.Config{
		AppEnv:      "test",
		FrontendURL: "http://localhost:3000",
		StoreDriver: config.StoreDriverMemory,
	}
	return NewRouter(cfg,
		NewOrganizationHandler(orgSvc),
		NewShiftHandler(shiftSvc),
		NewPayrollHandler(payrollSvc),
	)
}

func doJSON(t *testing.T, router *chi.Mux, method, path, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(headerEmployeeID, caller)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "body: %s", rec.Body.String())
	return envelope.Data
}

func createTestOrg(t *testing.T, router *chi.Mux) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/organizations", "mgr-1", map[string]any{
		"name": "Cafe Himawari",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeData(t, rec)["id"].(string)
}

func TestShiftLifecycleOverHTTP(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	orgID := createTestOrg(t, router)

	// Submit
	rec := doJSON(t, router, http.MethodPost, "/api/v1/organizations/"+orgID+"/shifts", "emp-1", map[string]any{
		"employee_name": "Tanaka",
		"date":          "2024-06-03",
		"start_time":    "09:00",
		"end_time":      "17:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData(t, rec)
	shiftID := created["id"].(string)
	assert.Equal(t, "pending", created["status"])

	// Approve
	rec = doJSON(t, router, http.MethodPost, "/api/v1/organizations/"+orgID+"/shifts/"+shiftID+"/approve", "mgr-1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	approved := decodeData(t, rec)
	assert.Equal(t, "approved", approved["status"])
	assert.Equal(t, "mgr-1", approved["approved_by"])

	// Editing after approval conflicts
	rec = doJSON(t, router, http.MethodPut, "/api/v1/organizations/"+orgID+"/shifts/"+shiftID, "emp-1", map[string]any{
		"date":       "2024-06-03",
		"start_time": "10:00",
		"end_time":   "18:00",
	})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	// Payroll sees the approved shift
	rec = doJSON(t, router, http.MethodGet, "/api/v1/organizations/"+orgID+"/payroll?month=2024-06", "mgr-1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	summary := decodeData(t, rec)
	assert.Equal(t, float64(1), summary["shift_count"])
	assert.Equal(t, "8800", summary["total"])
}

func TestSubmitShift_ValidationErrorOverHTTP(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	orgID := createTestOrg(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/organizations/"+orgID+"/shifts", "emp-1", map[string]any{
		"employee_name": "Tanaka",
		"date":          "2024-06-03",
		"start_time":    "17:00",
		"end_time":      "09:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "end_time")
}

func TestPayrollExport_CSVWithBOM(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	orgID := createTestOrg(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/organizations/"+orgID+"/shifts", "emp-1", map[string]any{
		"employee_name": "Tanaka",
		"date":          "2024-06-03",
		"start_time":    "09:00",
		"end_time":      "12:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	shiftID := decodeData(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/organizations/"+orgID+"/shifts/"+shiftID+"/approve", "mgr-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/organizations/"+orgID+"/payroll/export/detail?month=2024-06", "mgr-1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payroll-detail-2024-06.csv")

	body := rec.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(string(body[3:])), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "date,employee,start,end"))
	assert.Contains(t, lines[1], "Tanaka")
}

func TestPayrollSummary_InvalidMonth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	orgID := createTestOrg(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/organizations/"+orgID+"/payroll?month=June", "mgr-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}
