// Package billing contiene los cálculos puros de facturación.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// Totals totales derivados de una venta. Nunca se guardan sobre la venta;
// se recalculan cada vez que se muestran o se emite una factura.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Cost     decimal.Decimal
	Margin   decimal.Decimal
}

// SaleTotals calcula subtotal, impuesto, total, costo y margen de las líneas
// con la tasa de impuesto vigente (servicio de dominio, sin efectos):
//
//	subtotal = Σ precio×qty
//	tax      = subtotal × tasa/100
//	total    = subtotal + tax
//	cost     = Σ costoFoto×qty   (costo capturado al agregar la línea)
//	margin   = subtotal − cost
func SaleTotals(items []entity.SaleItem, taxRatePercent decimal.Decimal) Totals {
	var subtotal, cost decimal.Decimal
	for _, it := range items {
		qty := decimal.NewFromInt(it.Quantity)
		subtotal = subtotal.Add(it.UnitPrice.Mul(qty))
		cost = cost.Add(it.UnitCost.Mul(qty))
	}
	tax := subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
		Cost:     cost,
		Margin:   subtotal.Sub(cost),
	}
}

// ManualTotals calcula impuesto y total a partir de un subtotal capturado a
// mano (facturas manuales sin venta ligada), con la misma fórmula.
func ManualTotals(subtotal, taxRatePercent decimal.Decimal) (tax, total decimal.Decimal) {
	tax = subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	return tax, subtotal.Add(tax)
}
