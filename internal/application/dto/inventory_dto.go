package dto

import "github.com/shopspring/decimal"

// ProductRequest body para crear/actualizar un producto. Al crear, Stock se
// registra como movimiento de entrada implícito ("Alta de producto").
type ProductRequest struct {
	SKU        string          `json:"sku" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Category   string          `json:"category"`
	Cost       decimal.Decimal `json:"cost"`
	Price      decimal.Decimal `json:"price"`
	Stock      int64           `json:"stock" validate:"min=0"`
	MinStock   int64           `json:"min_stock" validate:"min=0"`
	SupplierID string          `json:"supplier_id"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	MinStock     int64           `json:"min_stock"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Critical     bool            `json:"critical"`
}

// AdjustStockRequest body para POST /api/inventory/adjustments.
type AdjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Kind      string `json:"kind" validate:"required,oneof=in out"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Note      string `json:"note"`
}

// MovementResponse movimiento de inventario con el producto resuelto.
// SKU y ProductName se rellenan con "—" si el producto ya no existe.
type MovementResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	ProductID   string `json:"product_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Note        string `json:"note,omitempty"`
}
