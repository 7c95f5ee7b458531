package entity

import "github.com/shopspring/decimal"

// Estados de una venta. No hay estado terminal: cualquier estado puede volver
// a editarse; el único control duro es la verificación de stock al cerrar.
const (
	SaleStatusPending   = "pending"
	SaleStatusClosed    = "closed"
	SaleStatusCancelled = "cancelled"
)

// SaleItem es una línea de venta. UnitCost es una fotografía del costo del
// producto al momento de agregar la línea: no se relee del producto en
// recálculos posteriores, así el margen histórico queda estable aunque el
// costo del producto cambie después.
type SaleItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"` // > 0
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// Sale representa una venta. Los totales nunca se guardan sobre la venta:
// siempre se derivan de los items y de la tasa de impuesto vigente (la
// factura los fotografía al emitirse).
type Sale struct {
	ID       string     `json:"id"`
	Date     string     `json:"date"`  // YYYY-MM-DD
	Folio    string     `json:"folio"` // ej. V-0001; único por convención
	ClientID string     `json:"client_id"`
	Status   string     `json:"status"` // pending | closed | cancelled
	Notes    string     `json:"notes,omitempty"`
	Items    []SaleItem `json:"items"`
}
