package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
	payrollService "github.com/staffhub-hr/hrms-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	CreateRun(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
	ApproveRun(w http.ResponseWriter, r *http.Request)
	ProcessRun(w http.ResponseWriter, r *http.Request)
	DeleteRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	RunSummary(w http.ResponseWriter, r *http.Request)
	DepartmentSummaries(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService *payrollService.PayrollService
	clock          timezone.Clock
}

func NewPayrollHandler(service *payrollService.PayrollService, clock timezone.Clock) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: service, clock: clock}
}

// CreateRun implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRunRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRun decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	run, err := h.payrollService.CreateRun(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run created successfully", toRunResponse(run))
}

// Calculate implements PayrollHandler.
func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	entries, err := h.payrollService.Calculate(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll calculated successfully", toEntryResponses(entries))
}

// ApproveRun implements PayrollHandler.
func (h *PayrollHandlerImpl) ApproveRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	approverID, err := userIDFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	run, err := h.payrollService.Approve(r.Context(), runID, approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run approved successfully", toRunResponse(run))
}

// ProcessRun implements PayrollHandler.
func (h *PayrollHandlerImpl) ProcessRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	run, err := h.payrollService.Process(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run processed successfully", toRunResponse(run))
}

// DeleteRun implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteRun(r.Context(), runID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run deleted successfully", nil)
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	run, err := h.payrollService.GetRun(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toRunResponse(run))
}

// ListRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	year := timezone.ToLocal(h.clock.Now()).Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	runs, err := h.payrollService.ListRuns(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, toRunResponse(run))
	}
	response.Success(w, result)
}

// ListEntries implements PayrollHandler.
func (h *PayrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	entries, err := h.payrollService.ListEntries(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEntryResponses(entries))
}

// UpdateEntry implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EntryID = chi.URLParam(r, "entryID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.payrollService.UpdateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry updated successfully", toEntryResponse(entry))
}

// RunSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) RunSummary(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	summary, err := h.payrollService.RunSummary(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.RunSummaryResponse{
		PayrollRunID:    summary.PayrollRunID,
		EmployeeCount:   summary.EmployeeCount,
		TotalGross:      summary.TotalGross,
		TotalDeductions: summary.TotalDeductions,
		TotalNet:        summary.TotalNet,
	})
}

// DepartmentSummaries implements PayrollHandler.
func (h *PayrollHandlerImpl) DepartmentSummaries(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	summaries, err := h.payrollService.DepartmentSummaries(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]payroll.DepartmentSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, payroll.DepartmentSummaryResponse{
			Department:      summary.Department,
			EmployeeCount:   summary.EmployeeCount,
			TotalGross:      summary.TotalGross,
			TotalDeductions: summary.TotalDeductions,
			TotalNet:        summary.TotalNet,
		})
	}
	response.Success(w, result)
}

func toRunResponse(run payroll.PayrollRun) payroll.RunResponse {
	return payroll.RunResponse{
		ID:         run.ID,
		Month:      run.Month,
		Year:       run.Year,
		Status:     string(run.Status),
		ApprovedBy: run.ApprovedBy,
	}
}

func toEntryResponse(entry payroll.PayrollEntry) payroll.EntryResponse {
	return payroll.EntryResponse{
		ID:              entry.ID,
		PayrollRunID:    entry.PayrollRunID,
		EmployeeID:      entry.EmployeeID,
		EmployeeName:    entry.EmployeeName,
		EmployeeCode:    entry.EmployeeCode,
		Department:      entry.Department,
		GrossSalary:     entry.GrossSalary,
		LOPDays:         entry.LOPDays,
		LOPDeduction:    entry.LOPDeduction,
		TotalDeductions: entry.TotalDeductions,
		NetSalary:       entry.NetSalary,
	}
}

func toEntryResponses(entries []payroll.PayrollEntry) []payroll.EntryResponse {
	result := make([]payroll.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toEntryResponse(entry))
	}
	return result
}
