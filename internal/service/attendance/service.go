package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

type AttendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          timezone.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clock timezone.Clock,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clock,
	}
}

// CheckIn opens today's attendance record for the employee. At most one
// record may exist per employee per business-local day.
func (s *AttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	now := s.clock.Now()
	checkIn, err := ValidateCheckIn(req.EmployeeID, req.ParsedTimestamp, now)
	if err != nil {
		return attendance.Attendance{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if !emp.IsActive {
		return attendance.Attendance{}, fmt.Errorf("%w: employee is not active", attendance.ErrInvalidAttendanceData)
	}

	date := timezone.LocalMidnight(checkIn)
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAttendanceAlreadyExists
	}

	record := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     DetermineStatus(checkIn, nil, false),
		Notes:      req.Notes,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// CheckOut closes an open attendance record and derives hours and status.
func (s *AttendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if record.CheckIn == nil {
		return attendance.Attendance{}, attendance.ErrNoCheckInRecord
	}

	now := s.clock.Now()
	checkOut, err := ValidateCheckOut(record.ID, *record.CheckIn, req.ParsedTimestamp, now)
	if err != nil {
		return attendance.Attendance{}, err
	}

	record.CheckOut = &checkOut
	record.WorkHours = CalculateWorkHours(*record.CheckIn, checkOut)
	record.OvertimeHours = CalculateOvertime(record.WorkHours)
	record.Status = DetermineStatus(*record.CheckIn, &checkOut, record.IsManualEntry)

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return record, nil
}

// CreateManualEntry records an admin correction. Status defaults to present
// unless the request overrides it.
func (s *AttendanceService) CreateManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	day := req.ParsedDate
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, timezone.Business)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAttendanceAlreadyExists
	}

	record := attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          date,
		Status:        attendance.StatusPresent,
		Notes:         req.Notes,
		IsManualEntry: true,
	}

	if req.CheckIn != nil {
		in, ok := parseTimestamp(*req.CheckIn)
		if !ok {
			return attendance.Attendance{}, fmt.Errorf("%w: check_in must be a valid ISO8601 datetime", attendance.ErrInvalidAttendanceData)
		}
		record.CheckIn = &in
	}
	if req.CheckOut != nil {
		if record.CheckIn == nil {
			return attendance.Attendance{}, attendance.ErrNoCheckInRecord
		}
		out, ok := parseTimestamp(*req.CheckOut)
		if !ok {
			return attendance.Attendance{}, fmt.Errorf("%w: check_out must be a valid ISO8601 datetime", attendance.ErrInvalidAttendanceData)
		}
		if !out.After(*record.CheckIn) {
			return attendance.Attendance{}, fmt.Errorf("%w: check-out time must be after check-in time", attendance.ErrInvalidAttendanceData)
		}
		record.CheckOut = &out
		record.WorkHours = CalculateWorkHours(*record.CheckIn, out)
		record.OvertimeHours = CalculateOvertime(record.WorkHours)
	}

	// An explicit status wins over the manual-entry default.
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// List returns an employee's records across an inclusive date range.
func (s *AttendanceService) List(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee id is required", attendance.ErrInvalidAttendanceData)
	}
	if err := ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// Delete removes an attendance record. Reserved for admin corrections of
// bad manual entries.
func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: attendance id is required", attendance.ErrInvalidAttendanceData)
	}
	return s.attendanceRepo.Delete(ctx, id)
}

// Summary aggregates an employee's records across an inclusive date range.
func (s *AttendanceService) Summary(ctx context.Context, employeeID string, start, end time.Time) (attendance.Summary, error) {
	records, err := s.List(ctx, employeeID, start, end)
	if err != nil {
		return attendance.Summary{}, err
	}
	return CalculateSummary(records), nil
}

func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
