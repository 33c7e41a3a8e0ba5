package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/hrms-backend-go/internal/handler/http/response"
	payrollService "github.com/staffhub-hr/hrms-backend-go/internal/service/payroll"
)

type SalaryStructureHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SalaryStructureHandlerImpl struct {
	structureService *payrollService.StructureService
}

func NewSalaryStructureHandler(service *payrollService.StructureService) SalaryStructureHandler {
	return &SalaryStructureHandlerImpl{structureService: service}
}

// Create implements SalaryStructureHandler.
func (h *SalaryStructureHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryStructureRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create salary structure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.structureService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure created successfully", toStructureResponse(created))
}

// Get implements SalaryStructureHandler.
func (h *SalaryStructureHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	structure, err := h.structureService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toStructureResponse(structure))
}

// List implements SalaryStructureHandler.
func (h *SalaryStructureHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	structures, err := h.structureService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]payroll.SalaryStructureResponse, 0, len(structures))
	for _, structure := range structures {
		result = append(result, toStructureResponse(structure))
	}
	response.Success(w, result)
}

// Update implements SalaryStructureHandler. The request carries the full
// structure; partial updates are not supported for salary components.
func (h *SalaryStructureHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryStructureRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update salary structure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := h.structureService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Basic = req.Basic
	existing.HRA = req.HRA
	existing.Conveyance = req.Conveyance
	existing.MedicalAllowance = req.MedicalAllowance
	existing.SpecialAllowance = req.SpecialAllowance
	existing.ProfessionalTax = req.ProfessionalTax
	existing.PF = req.PF
	existing.ESI = req.ESI

	if err := h.structureService.Update(r.Context(), existing); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure updated successfully", toStructureResponse(existing))
}

// Delete implements SalaryStructureHandler.
func (h *SalaryStructureHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.structureService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure deactivated successfully", nil)
}

func toStructureResponse(structure payroll.SalaryStructure) payroll.SalaryStructureResponse {
	return payroll.SalaryStructureResponse{
		ID:               structure.ID,
		Name:             structure.Name,
		Basic:            structure.Basic,
		HRA:              structure.HRA,
		Conveyance:       structure.Conveyance,
		MedicalAllowance: structure.MedicalAllowance,
		SpecialAllowance: structure.SpecialAllowance,
		ProfessionalTax:  structure.ProfessionalTax,
		PF:               structure.PF,
		ESI:              structure.ESI,
		IsActive:         structure.IsActive,
	}
}
