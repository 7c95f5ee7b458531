package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// Dirección del efecto de stock de una venta.
const (
	DirectionConsume = -1 // cerrar venta: descuenta stock
	DirectionRestore = +1 // revertir venta: lo devuelve
)

// ApplySaleEffect aplica o revierte el efecto de inventario de una venta
// sobre el dataset: ajusta el stock de cada línea (con piso en cero) y deja
// un movimiento por línea que referencia el folio de la venta.
//
// El piso en cero es defensivo; los callers no deben apoyarse en él para
// tapar errores de stock insuficiente — la verificación ocurre antes, en el
// ciclo de vida de la venta. Si el producto de una línea ya no existe la
// línea se omite en silencio (hueco de integridad tolerado, no error).
//
// Esta función no sabe nada del estado de la venta: el caller es responsable
// de invocarla exactamente una vez por transición hacia/desde "closed".
func ApplySaleEffect(ds *entity.Dataset, sale *entity.Sale, direction int) {
	date := sale.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	for _, it := range sale.Items {
		prd := ds.ProductByID(it.ProductID)
		if prd == nil {
			continue
		}
		newStock := prd.Stock + int64(direction)*it.Quantity
		if newStock < 0 {
			newStock = 0
		}
		prd.Stock = newStock

		kind := entity.MovementKindIn
		note := "Reverso " + sale.Folio
		if direction < 0 {
			kind = entity.MovementKindOut
			note = "Venta " + sale.Folio
		}
		ds.Movements = append(ds.Movements, entity.StockMovement{
			ID:        uuid.New().String(),
			Date:      date,
			Kind:      kind,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Note:      note,
		})
	}
}
