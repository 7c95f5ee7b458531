package entity

import "github.com/shopspring/decimal"

// Employee representa un empleado de nómina.
type Employee struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}
