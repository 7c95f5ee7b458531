package entity

import "github.com/shopspring/decimal"

// Payslip es un recibo de nómina generado por una corrida de pago.
// Neto = bruto − deducciones; las deducciones son un porcentaje global
// aplicado al salario mensual del empleado.
type Payslip struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"` // YYYY-MM-DD
	EmployeeID string          `json:"employee_id"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
	Notes      string          `json:"notes,omitempty"`
}
