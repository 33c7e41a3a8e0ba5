package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
	attendanceService "github.com/staffhub-hr/hrms-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	CreateManualEntry(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.AttendanceService
}

func NewAttendanceHandler(service *attendanceService.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: service}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", toAttendanceResponse(record))
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AttendanceID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", toAttendanceResponse(record))
}

// CreateManualEntry implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateManualEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateManualEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CreateManualEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created successfully", toAttendanceResponse(record))
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, start, end, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	records, err := h.attendanceService.List(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, toAttendanceResponse(record))
	}
	response.Success(w, result)
}

// Summary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, start, end, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.attendanceService.Summary(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.SummaryResponse{
		EmployeeID:         summary.EmployeeID,
		TotalRecords:       summary.TotalRecords,
		PresentDays:        summary.PresentDays,
		AbsentDays:         summary.AbsentDays,
		LateDays:           summary.LateDays,
		HalfDays:           summary.HalfDays,
		OnLeaveDays:        summary.OnLeaveDays,
		TotalWorkHours:     summary.TotalWorkHours,
		TotalOvertimeHours: summary.TotalOvertimeHours,
	})
}

func parseRangeQuery(w http.ResponseWriter, r *http.Request) (employeeID string, start, end time.Time, ok bool) {
	query := r.URL.Query()

	employeeID = query.Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return "", time.Time{}, time.Time{}, false
	}

	start, err := time.ParseInLocation("2006-01-02", query.Get("start_date"), timezone.Business)
	if err != nil {
		response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
		return "", time.Time{}, time.Time{}, false
	}

	end, err = time.ParseInLocation("2006-01-02", query.Get("end_date"), timezone.Business)
	if err != nil {
		response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
		return "", time.Time{}, time.Time{}, false
	}

	return employeeID, start, end, true
}

func toAttendanceResponse(record attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		Date:          timezone.LocalDateKey(record.Date),
		Status:        string(record.Status),
		WorkHours:     record.WorkHours,
		OvertimeHours: record.OvertimeHours,
		Notes:         record.Notes,
		IsManualEntry: record.IsManualEntry,
	}
	if record.CheckIn != nil {
		checkIn := timezone.ToLocal(*record.CheckIn).Format(time.RFC3339)
		resp.CheckIn = &checkIn
	}
	if record.CheckOut != nil {
		checkOut := timezone.ToLocal(*record.CheckOut).Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}
