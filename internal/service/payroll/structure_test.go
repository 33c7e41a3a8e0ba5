package payroll

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/payroll"
)

type stubStructureRepo struct {
	byName  map[string]payroll.SalaryStructure
	nameErr error
	created []payroll.SalaryStructure
}

func (s *stubStructureRepo) Create(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	structure.ID = "struct-new"
	s.created = append(s.created, structure)
	return structure, nil
}

func (s *stubStructureRepo) GetByID(ctx context.Context, id string) (payroll.SalaryStructure, error) {
	return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
}

func (s *stubStructureRepo) GetByName(ctx context.Context, name string) (payroll.SalaryStructure, error) {
	if s.nameErr != nil {
		return payroll.SalaryStructure{}, s.nameErr
	}
	if structure, ok := s.byName[name]; ok {
		return structure, nil
	}
	return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
}

func (s *stubStructureRepo) List(ctx context.Context, activeOnly bool) ([]payroll.SalaryStructure, error) {
	return nil, nil
}

func (s *stubStructureRepo) Update(ctx context.Context, structure payroll.SalaryStructure) error {
	return nil
}

func (s *stubStructureRepo) Delete(ctx context.Context, id string) error { return nil }

func validStructureRequest() payroll.CreateSalaryStructureRequest {
	return payroll.CreateSalaryStructureRequest{
		Name:             "Engineer L1",
		Basic:            decimal.NewFromInt(15000),
		HRA:              decimal.NewFromInt(6000),
		Conveyance:       decimal.NewFromInt(1600),
		MedicalAllowance: decimal.NewFromInt(1250),
		SpecialAllowance: decimal.NewFromInt(4150),
		ProfessionalTax:  decimal.NewFromInt(200),
		PF:               decimal.NewFromInt(800),
		ESI:              decimal.NewFromInt(200),
	}
}

func TestStructureCreateMarksActive(t *testing.T) {
	repo := &stubStructureRepo{}
	svc := NewStructureService(repo)

	created, err := svc.Create(context.Background(), validStructureRequest())
	require.NoError(t, err)

	assert.Equal(t, "Engineer L1", created.Name)
	assert.True(t, created.IsActive)
	require.Len(t, repo.created, 1)
}

func TestStructureCreateRejectsDuplicateName(t *testing.T) {
	repo := &stubStructureRepo{
		byName: map[string]payroll.SalaryStructure{
			"Engineer L1": {ID: "struct-1", Name: "Engineer L1"},
		},
	}
	svc := NewStructureService(repo)

	_, err := svc.Create(context.Background(), validStructureRequest())
	assert.ErrorIs(t, err, payroll.ErrSalaryStructureNameExists)
	assert.Empty(t, repo.created)
}

func TestStructureCreatePropagatesNameCheckFailure(t *testing.T) {
	repo := &stubStructureRepo{nameErr: errors.New("connection refused")}
	svc := NewStructureService(repo)

	_, err := svc.Create(context.Background(), validStructureRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, payroll.ErrSalaryStructureNameExists)
	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, repo.created, "insert must not run when the name check fails")
}
