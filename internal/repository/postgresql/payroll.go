package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollRunColumns = `
	id, month, year, status, approved_by, approved_at, created_at, updated_at
`

func scanPayrollRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.Month, &run.Year, &run.Status,
		&run.ApprovedBy, &run.ApprovedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	return run, err
}

// CreateRun implements payroll.PayrollRepository.
func (r *payrollRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (id, month, year, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	run.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, run.ID, run.Month, run.Year, run.Status).
		Scan(&run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return run, nil
}

// GetRunByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRunColumns + ` FROM payroll_runs WHERE id = $1`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run by id: %w", err)
	}

	return run, nil
}

// GetRunByPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetRunByPeriod(ctx context.Context, month, year int) (*payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRunColumns + ` FROM payroll_runs WHERE month = $1 AND year = $2`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll run by period: %w", err)
	}

	return &run, nil
}

// ListRuns implements payroll.PayrollRepository.
func (r *payrollRepository) ListRuns(ctx context.Context, year int) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRunColumns + ` FROM payroll_runs WHERE year = $1 ORDER BY month`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll runs: %w", err)
	}

	return runs, nil
}

// UpdateRunStatus implements payroll.PayrollRepository.
func (r *payrollRepository) UpdateRunStatus(ctx context.Context, run payroll.PayrollRun) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, run.ID, run.Status, run.ApprovedBy, run.ApprovedAt)
	if err != nil {
		return fmt.Errorf("failed to update payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRunNotFound
	}

	return nil
}

// DeleteRun implements payroll.PayrollRepository.
func (r *payrollRepository) DeleteRun(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM payroll_entries WHERE payroll_run_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete payroll entries: %w", err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM payroll_runs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete payroll run: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return payroll.ErrPayrollRunNotFound
		}

		return nil
	})
}

// ReplaceEntries implements payroll.PayrollRepository. The delete and the
// inserts share one transaction so a reader never sees the run half-built.
func (r *payrollRepository) ReplaceEntries(ctx context.Context, runID string, entries []payroll.PayrollEntry) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM payroll_entries WHERE payroll_run_id = $1`, runID); err != nil {
			return fmt.Errorf("failed to delete payroll entries: %w", err)
		}

		query := `
			INSERT INTO payroll_entries (
				id, payroll_run_id, employee_id, gross_salary, lop_days,
				lop_deduction, total_deductions, net_salary
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		for _, entry := range entries {
			_, err := q.Exec(txCtx, query,
				uuid.NewString(), runID, entry.EmployeeID, entry.GrossSalary, entry.LOPDays,
				entry.LOPDeduction, entry.TotalDeductions, entry.NetSalary,
			)
			if err != nil {
				return fmt.Errorf("failed to insert payroll entry for employee %s: %w", entry.EmployeeID, err)
			}
		}

		return nil
	})
}

const payrollEntryColumns = `
	e.id, e.payroll_run_id, e.employee_id, e.gross_salary, e.lop_days,
	e.lop_deduction, e.total_deductions, e.net_salary, e.created_at, e.updated_at,
	emp.full_name, emp.code, emp.department
`

func scanPayrollEntry(row pgx.Row) (payroll.PayrollEntry, error) {
	var entry payroll.PayrollEntry
	err := row.Scan(
		&entry.ID, &entry.PayrollRunID, &entry.EmployeeID, &entry.GrossSalary, &entry.LOPDays,
		&entry.LOPDeduction, &entry.TotalDeductions, &entry.NetSalary, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName, &entry.EmployeeCode, &entry.Department,
	)
	return entry, err
}

// ListEntries implements payroll.PayrollRepository.
func (r *payrollRepository) ListEntries(ctx context.Context, runID string) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollEntryColumns + `
		FROM payroll_entries e
		JOIN employees emp ON emp.id = e.employee_id
		WHERE e.payroll_run_id = $1
		ORDER BY emp.code
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		entry, err := scanPayrollEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll entries: %w", err)
	}

	return entries, nil
}

// CountEntries implements payroll.PayrollRepository.
func (r *payrollRepository) CountEntries(ctx context.Context, runID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_entries WHERE payroll_run_id = $1`, runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	return count, nil
}

// GetEntryByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetEntryByID(ctx context.Context, id string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollEntryColumns + `
		FROM payroll_entries e
		JOIN employees emp ON emp.id = e.employee_id
		WHERE e.id = $1
	`

	entry, err := scanPayrollEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollEntry{}, payroll.ErrPayrollEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll entry by id: %w", err)
	}

	return entry, nil
}

// UpdateEntry implements payroll.PayrollRepository.
func (r *payrollRepository) UpdateEntry(ctx context.Context, entry payroll.PayrollEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries
		SET gross_salary = $2, lop_days = $3, lop_deduction = $4,
			total_deductions = $5, net_salary = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID, entry.GrossSalary, entry.LOPDays, entry.LOPDeduction,
		entry.TotalDeductions, entry.NetSalary,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollEntryNotFound
	}

	return nil
}

// GetRunSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetRunSummary(ctx context.Context, runID string) (payroll.RunSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(gross_salary), 0),
			   COALESCE(SUM(total_deductions), 0),
			   COALESCE(SUM(net_salary), 0)
		FROM payroll_entries
		WHERE payroll_run_id = $1
	`

	summary := payroll.RunSummary{PayrollRunID: runID}
	err := q.QueryRow(ctx, query, runID).Scan(
		&summary.EmployeeCount, &summary.TotalGross, &summary.TotalDeductions, &summary.TotalNet,
	)
	if err != nil {
		return payroll.RunSummary{}, fmt.Errorf("failed to get payroll run summary: %w", err)
	}

	return summary, nil
}

// GetDepartmentSummaries implements payroll.PayrollRepository. Department
// membership is the employee's current department at query time.
func (r *payrollRepository) GetDepartmentSummaries(ctx context.Context, runID string) ([]payroll.DepartmentSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT emp.department,
			   COUNT(*),
			   COALESCE(SUM(e.gross_salary), 0),
			   COALESCE(SUM(e.total_deductions), 0),
			   COALESCE(SUM(e.net_salary), 0)
		FROM payroll_entries e
		JOIN employees emp ON emp.id = e.employee_id
		WHERE e.payroll_run_id = $1
		GROUP BY emp.department
		ORDER BY emp.department
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get department summaries: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.DepartmentSummary
	for rows.Next() {
		var s payroll.DepartmentSummary
		if err := rows.Scan(&s.Department, &s.EmployeeCount, &s.TotalGross, &s.TotalDeductions, &s.TotalNet); err != nil {
			return nil, fmt.Errorf("failed to scan department summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department summaries: %w", err)
	}

	return summaries, nil
}
