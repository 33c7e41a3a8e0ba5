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

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

const salaryStructureColumns = `
	id, name, basic, hra, conveyance, medical_allowance, special_allowance,
	professional_tax, pf, esi, is_active, created_at, updated_at
`

func scanSalaryStructure(row pgx.Row) (payroll.SalaryStructure, error) {
	var s payroll.SalaryStructure
	err := row.Scan(
		&s.ID, &s.Name, &s.Basic, &s.HRA, &s.Conveyance, &s.MedicalAllowance, &s.SpecialAllowance,
		&s.ProfessionalTax, &s.PF, &s.ESI, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) Create(ctx context.Context, s payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			id, name, basic, hra, conveyance, medical_allowance, special_allowance,
			professional_tax, pf, esi, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	s.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.Basic, s.HRA, s.Conveyance, s.MedicalAllowance, s.SpecialAllowance,
		s.ProfessionalTax, s.PF, s.ESI, s.IsActive,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return s, nil
}

// GetByID implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) GetByID(ctx context.Context, id string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures WHERE id = $1`

	s, err := scanSalaryStructure(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure by id: %w", err)
	}

	return s, nil
}

// GetByName implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) GetByName(ctx context.Context, name string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures WHERE name = $1`

	s, err := scanSalaryStructure(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure by name: %w", err)
	}

	return s, nil
}

// List implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) List(ctx context.Context, activeOnly bool) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		s, err := scanSalaryStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read salary structures: %w", err)
	}

	return structures, nil
}

// Update implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) Update(ctx context.Context, s payroll.SalaryStructure) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures
		SET name = $2, basic = $3, hra = $4, conveyance = $5, medical_allowance = $6,
			special_allowance = $7, professional_tax = $8, pf = $9, esi = $10,
			is_active = $11, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.Name, s.Basic, s.HRA, s.Conveyance, s.MedicalAllowance,
		s.SpecialAllowance, s.ProfessionalTax, s.PF, s.ESI, s.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryStructureNotFound
	}

	return nil
}

// Delete implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_structures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryStructureNotFound
	}

	return nil
}
