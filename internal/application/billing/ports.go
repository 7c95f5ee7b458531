package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// InvoiceLineForPDF línea ya resuelta para la representación impresa.
type InvoiceLineForPDF struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// InvoicePDFGenerator puerto de salida para generar la representación gráfica
// de una factura. La implementación vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		settings entity.Settings,
		client *entity.Client,
		lines []InvoiceLineForPDF,
	) ([]byte, error)
}
