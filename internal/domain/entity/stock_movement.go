package entity

// Tipos de movimiento de inventario.
const (
	MovementKindIn  = "in"  // entrada
	MovementKindOut = "out" // salida
)

// StockMovement es el registro inmutable de un cambio de stock (audit trail).
// Solo se agrega; nunca se edita ni se borra, salvo por un restore de backup.
// Si el producto referenciado se elimina después, el movimiento permanece con
// la referencia colgante (se tolera, no es error).
type StockMovement struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Kind      string `json:"kind"` // in | out
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"` // siempre positivo
	Note      string `json:"note,omitempty"`
}
