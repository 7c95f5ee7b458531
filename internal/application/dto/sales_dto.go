package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea de venta en el body. Si UnitPrice es cero se toma el
// precio actual del producto; si UnitCost viene nil se fotografía el costo
// actual del producto (el costo nunca se relee después).
type SaleItemRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
}

// SaveSaleRequest body para crear (POST /api/sales) o reemplazar
// (PUT /api/sales/:id) una venta. El guardado es full replace, no merge.
type SaveSaleRequest struct {
	Date     string            `json:"date"`
	Folio    string            `json:"folio"` // vacío = se asigna V-NNNN
	ClientID string            `json:"client_id" validate:"required"`
	Status   string            `json:"status" validate:"omitempty,oneof=pending closed cancelled"`
	Notes    string            `json:"notes"`
	Items    []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta con el producto resuelto.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleTotalsResponse totales derivados; se recalculan en cada lectura.
type SaleTotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Cost     decimal.Decimal `json:"cost"`
	Margin   decimal.Decimal `json:"margin"`
}

// SaleResponse venta en respuestas. ClientName es "—" si el cliente ya no
// existe (referencia colgante tolerada).
type SaleResponse struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"`
	Folio      string             `json:"folio"`
	ClientID   string             `json:"client_id"`
	ClientName string             `json:"client_name"`
	Status     string             `json:"status"`
	Notes      string             `json:"notes,omitempty"`
	Items      []SaleItemResponse `json:"items,omitempty"`
	Totals     SaleTotalsResponse `json:"totals"`
}
