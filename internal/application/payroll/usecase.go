// Package payroll administra empleados y corridas de nómina. Una corrida
// genera un recibo por empleado con una deducción global en porcentaje:
// neto = bruto − bruto × pct/100. Los recibos fotografían el salario del
// momento; cambios posteriores al empleado no los alteran.
package payroll

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// UseCase empleados y corridas de nómina.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// ── Empleados ─────────────────────────────────────────────────────────────────

func (uc *UseCase) CreateEmployee(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.MonthlySalary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var out dto.EmployeeResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		emp := entity.Employee{
			ID:            uuid.New().String(),
			Name:          in.Name,
			Role:          in.Role,
			MonthlySalary: in.MonthlySalary,
		}
		ds.Employees = append(ds.Employees, emp)
		out = employeeResponse(emp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UseCase) UpdateEmployee(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.MonthlySalary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var out dto.EmployeeResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		emp := ds.EmployeeByID(id)
		if emp == nil {
			return domain.ErrNotFound
		}
		emp.Name = in.Name
		emp.Role = in.Role
		emp.MonthlySalary = in.MonthlySalary
		out = employeeResponse(*emp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEmployee elimina al empleado; sus recibos y asistencias quedan como
// rastro histórico con la referencia colgante.
func (uc *UseCase) DeleteEmployee(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Employees {
			if ds.Employees[i].ID == id {
				ds.Employees = append(ds.Employees[:i], ds.Employees[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (uc *UseCase) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	out := []dto.EmployeeResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		for _, emp := range ds.Employees {
			out = append(out, employeeResponse(emp))
		}
		return nil
	})
	return out, err
}

// ── Corridas de nómina ────────────────────────────────────────────────────────

// Run genera un recibo por empleado con la deducción global indicada.
// El porcentaje se recorta a 0..100; sin empleados no hay corrida.
func (uc *UseCase) Run(ctx context.Context, in dto.RunPayrollRequest) ([]dto.PayslipResponse, error) {
	pct := in.DeductionPercent
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	out := []dto.PayslipResponse{}
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		if len(ds.Employees) == 0 {
			return domain.ErrInvalidState
		}
		for _, emp := range ds.Employees {
			gross := emp.MonthlySalary
			deductions := gross.Mul(pct).Div(hundred)
			slip := entity.Payslip{
				ID:         uuid.New().String(),
				Date:       date,
				EmployeeID: emp.ID,
				Gross:      gross,
				Deductions: deductions,
				Net:        gross.Sub(deductions),
				Notes:      in.Notes,
			}
			ds.Payslips = append(ds.Payslips, slip)
			out = append(out, payslipResponse(ds, slip))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListPayslips devuelve los recibos más recientes primero.
func (uc *UseCase) ListPayslips(ctx context.Context) ([]dto.PayslipResponse, error) {
	out := []dto.PayslipResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		slips := make([]entity.Payslip, len(ds.Payslips))
		copy(slips, ds.Payslips)
		sort.SliceStable(slips, func(i, j int) bool { return slips[i].Date > slips[j].Date })
		for _, slip := range slips {
			out = append(out, payslipResponse(ds, slip))
		}
		return nil
	})
	return out, err
}

func (uc *UseCase) DeletePayslip(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Payslips {
			if ds.Payslips[i].ID == id {
				ds.Payslips = append(ds.Payslips[:i], ds.Payslips[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func employeeResponse(emp entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Role:          emp.Role,
		MonthlySalary: emp.MonthlySalary,
	}
}

func payslipResponse(ds *entity.Dataset, slip entity.Payslip) dto.PayslipResponse {
	name := "—"
	if emp := ds.EmployeeByID(slip.EmployeeID); emp != nil {
		name = emp.Name
	}
	return dto.PayslipResponse{
		ID:           slip.ID,
		Date:         slip.Date,
		EmployeeID:   slip.EmployeeID,
		EmployeeName: name,
		Gross:        slip.Gross,
		Deductions:   slip.Deductions,
		Net:          slip.Net,
		Notes:        slip.Notes,
	}
}
