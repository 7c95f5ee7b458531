package dto

import "github.com/shopspring/decimal"

// ClientRequest body para crear/actualizar un cliente.
type ClientRequest struct {
	Name    string          `json:"name" validate:"required"`
	TaxID   string          `json:"tax_id"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email" validate:"omitempty,email"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	TaxID   string          `json:"tax_id,omitempty"`
	Phone   string          `json:"phone,omitempty"`
	Email   string          `json:"email,omitempty"`
	Address string          `json:"address,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// SupplierRequest body para crear/actualizar un proveedor.
type SupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Terms   string `json:"terms"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Terms   string `json:"terms,omitempty"`
}
