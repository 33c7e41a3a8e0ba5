package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
	leaveService "github.com/staffhub-hr/hrms-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveService.LeaveService
	clock        timezone.Clock
}

func NewLeaveHandler(service *leaveService.LeaveService, clock timezone.Clock) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: service, clock: clock}
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", toLeaveRequestResponse(request))
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	approverID, err := userIDFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	request, err := h.leaveService.Approve(r.Context(), requestID, approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", toLeaveRequestResponse(request))
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req leave.RejectLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	approverID, err := userIDFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	request, err := h.leaveService.Reject(r.Context(), requestID, approverID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", toLeaveRequestResponse(request))
}

// CancelRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	request, err := h.leaveService.Cancel(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", toLeaveRequestResponse(request))
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, year, ok := h.parseYearQuery(w, r)
	if !ok {
		return
	}

	requests, err := h.leaveService.ListRequests(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, toLeaveRequestResponse(request))
	}
	response.Success(w, result)
}

// Summary implements LeaveHandler.
func (h *LeaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, year, ok := h.parseYearQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.leaveService.Summary(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	byType := make(map[string]int, len(summary.ByType))
	for leaveType, days := range summary.ByType {
		byType[string(leaveType)] = days
	}

	response.Success(w, leave.SummaryResponse{
		EmployeeID:     summary.EmployeeID,
		Year:           summary.Year,
		TotalRequests:  summary.TotalRequests,
		ApprovedCount:  summary.ApprovedCount,
		RejectedCount:  summary.RejectedCount,
		PendingCount:   summary.PendingCount,
		TotalDaysTaken: summary.TotalDaysTaken,
		ByType:         byType,
	})
}

// Balances implements LeaveHandler.
func (h *LeaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	employeeID, year, ok := h.parseYearQuery(w, r)
	if !ok {
		return
	}

	balances, err := h.leaveService.Balances(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]leave.BalanceResponse, 0, len(balances))
	for _, balance := range balances {
		result = append(result, leave.BalanceResponse{
			LeaveType:      string(balance.LeaveType),
			Year:           balance.Year,
			TotalDays:      balance.TotalDays,
			UsedDays:       balance.UsedDays,
			RemainingDays:  balance.RemainingDays,
			CarriedForward: balance.CarriedForward,
		})
	}
	response.Success(w, result)
}

// parseYearQuery reads employee_id and an optional year query parameter,
// defaulting to the current business-local year.
func (h *LeaveHandlerImpl) parseYearQuery(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	query := r.URL.Query()

	employeeID := query.Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return "", 0, false
	}

	year := timezone.ToLocal(h.clock.Now()).Year()
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return "", 0, false
		}
		year = parsed
	}

	return employeeID, year, true
}

func userIDFromClaims(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	userID, _ := claims["user_id"].(string)
	return userID, nil
}

func toLeaveRequestResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:         request.ID,
		EmployeeID: request.EmployeeID,
		StartDate:  timezone.LocalDateKey(request.StartDate),
		EndDate:    timezone.LocalDateKey(request.EndDate),
		LeaveType:  string(request.LeaveType),
		Status:     string(request.Status),
		Days:       leaveService.CalculateLeaveDays(request.StartDate, request.EndDate),
		Reason:     request.Reason,
		ApprovedBy: request.ApprovedBy,
	}
}
