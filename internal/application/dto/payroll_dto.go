package dto

import "github.com/shopspring/decimal"

// EmployeeRequest body para crear/actualizar un empleado.
type EmployeeRequest struct {
	Name          string          `json:"name" validate:"required"`
	Role          string          `json:"role"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

// RunPayrollRequest body para POST /api/payroll/runs: genera un recibo por
// empleado con deducción global en porcentaje (se recorta a 0..100).
type RunPayrollRequest struct {
	Date             string          `json:"date"`
	DeductionPercent decimal.Decimal `json:"deduction_percent"`
	Notes            string          `json:"notes"`
}

// PayslipResponse recibo de nómina con el empleado resuelto.
type PayslipResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Gross        decimal.Decimal `json:"gross"`
	Deductions   decimal.Decimal `json:"deductions"`
	Net          decimal.Decimal `json:"net"`
	Notes        string          `json:"notes,omitempty"`
}
