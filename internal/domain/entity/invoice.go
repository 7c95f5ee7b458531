package entity

import "github.com/shopspring/decimal"

// Estados de una factura. El pago es de una sola vía: no existe "des-pagar".
const (
	InvoiceStatusIssued  = "issued"
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice representa una factura. Subtotal, impuesto y total son una
// fotografía tomada al emitir: ediciones posteriores de la venta no cambian
// una factura ya emitida. SaleID vacío = factura manual sin venta ligada.
// A lo más una factura referencia una venta dada (se valida al emitir).
type Invoice struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`  // YYYY-MM-DD
	Folio    string          `json:"folio"` // ej. F-0001
	SaleID   string          `json:"sale_id,omitempty"`
	ClientID string          `json:"client_id"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status"` // issued | pending | paid
	Paid     bool            `json:"paid"`
}
