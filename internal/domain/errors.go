package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidState      = errors.New("operación no válida para el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// StockShortage describe el faltante de una línea al intentar cerrar una venta.
type StockShortage struct {
	SKU       string `json:"sku"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}

// InsufficientStockError agrupa todos los faltantes detectados al cerrar una
// venta. Se construye antes de tocar inventario: si se retorna, ningún stock
// fue modificado.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (%d < %d)", s.SKU, s.Available, s.Requested))
	}
	return "stock insuficiente: " + strings.Join(parts, ", ")
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
