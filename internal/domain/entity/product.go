package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// Stock solo se muta a través del libro de inventario (inventory): cada cambio
// queda emparejado con exactamente un StockMovement.
type Product struct {
	ID         string          `json:"id"`
	SKU        string          `json:"sku"` // asignado por el usuario; único por convención
	Name       string          `json:"name"`
	Category   string          `json:"category,omitempty"`
	Cost       decimal.Decimal `json:"cost"`  // costo unitario
	Price      decimal.Decimal `json:"price"` // precio de venta
	Stock      int64           `json:"stock"` // nunca negativo
	MinStock   int64           `json:"min_stock"`
	SupplierID string          `json:"supplier_id,omitempty"`
}

// Critical indica si el producto está por debajo de su stock mínimo.
func (p Product) Critical() bool { return p.Stock < p.MinStock }
