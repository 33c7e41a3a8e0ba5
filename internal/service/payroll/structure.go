package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/payroll"
)

// StructureService manages the salary structure master data referenced by
// employees.
type StructureService struct {
	structureRepo payroll.SalaryStructureRepository
}

func NewStructureService(structureRepo payroll.SalaryStructureRepository) *StructureService {
	return &StructureService{structureRepo: structureRepo}
}

func (s *StructureService) Create(ctx context.Context, req payroll.CreateSalaryStructureRequest) (payroll.SalaryStructure, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructure{}, err
	}

	_, err := s.structureRepo.GetByName(ctx, req.Name)
	if err == nil {
		return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNameExists
	}
	if !errors.Is(err, payroll.ErrSalaryStructureNotFound) {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to check salary structure name: %w", err)
	}

	structure := payroll.SalaryStructure{
		Name:             req.Name,
		Basic:            req.Basic,
		HRA:              req.HRA,
		Conveyance:       req.Conveyance,
		MedicalAllowance: req.MedicalAllowance,
		SpecialAllowance: req.SpecialAllowance,
		ProfessionalTax:  req.ProfessionalTax,
		PF:               req.PF,
		ESI:              req.ESI,
		IsActive:         true,
	}

	created, err := s.structureRepo.Create(ctx, structure)
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return created, nil
}

func (s *StructureService) Get(ctx context.Context, id string) (payroll.SalaryStructure, error) {
	return s.structureRepo.GetByID(ctx, id)
}

func (s *StructureService) List(ctx context.Context, activeOnly bool) ([]payroll.SalaryStructure, error) {
	return s.structureRepo.List(ctx, activeOnly)
}

func (s *StructureService) Update(ctx context.Context, structure payroll.SalaryStructure) error {
	if _, err := s.structureRepo.GetByID(ctx, structure.ID); err != nil {
		return err
	}
	return s.structureRepo.Update(ctx, structure)
}

func (s *StructureService) Delete(ctx context.Context, id string) error {
	if _, err := s.structureRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.structureRepo.Delete(ctx, id)
}
