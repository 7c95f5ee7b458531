package dto

import "github.com/shopspring/decimal"

// ManualInvoiceRequest body para POST /api/invoices (factura manual sin venta
// ligada). Impuesto y total se calculan con la tasa vigente al emitir.
type ManualInvoiceRequest struct {
	ClientID string          `json:"client_id" validate:"required"`
	Date     string          `json:"date"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Status   string          `json:"status" validate:"omitempty,oneof=issued pending"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Folio      string          `json:"folio"`
	SaleID     string          `json:"sale_id,omitempty"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	Paid       bool            `json:"paid"`
}
