package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// PDFUseCase arma el contexto de una factura y delega la generación del
// documento al puerto InvoicePDFGenerator.
type PDFUseCase struct {
	ledger storage.Ledger
	gen    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(ledger storage.Ledger, gen InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{ledger: ledger, gen: gen}
}

// InvoicePDF genera el PDF de la factura y devuelve los bytes junto con un
// nombre de archivo sugerido. Las líneas salen de la venta ligada si existe;
// una factura manual (o con la venta ya borrada) se imprime como una sola
// línea de concepto con su subtotal fotografiado.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	var (
		invoice  entity.Invoice
		settings entity.Settings
		client   *entity.Client
		lines    []InvoiceLineForPDF
	)
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		inv := ds.InvoiceByID(id)
		if inv == nil {
			return domain.ErrNotFound
		}
		invoice = *inv
		settings = ds.Settings
		if cli := ds.ClientByID(inv.ClientID); cli != nil {
			c := *cli
			client = &c
		}
		lines = pdfLines(ds, inv)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	data, err := uc.gen.GenerateInvoicePDF(ctx, &invoice, settings, client, lines)
	if err != nil {
		return nil, "", fmt.Errorf("billing: generar pdf de %s: %w", invoice.Folio, err)
	}
	return data, fmt.Sprintf("factura-%s.pdf", invoice.Folio), nil
}

func pdfLines(ds *entity.Dataset, inv *entity.Invoice) []InvoiceLineForPDF {
	if inv.SaleID != "" {
		if sale := ds.SaleByID(inv.SaleID); sale != nil {
			lines := make([]InvoiceLineForPDF, 0, len(sale.Items))
			for _, it := range sale.Items {
				name := "—"
				if prd := ds.ProductByID(it.ProductID); prd != nil {
					name = prd.Name
				}
				lines = append(lines, InvoiceLineForPDF{
					ProductName: name,
					Quantity:    it.Quantity,
					UnitPrice:   it.UnitPrice,
					LineTotal:   it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
				})
			}
			return lines
		}
	}
	return []InvoiceLineForPDF{{
		ProductName: "Factura " + inv.Folio,
		Quantity:    1,
		UnitPrice:   inv.Subtotal,
		LineTotal:   inv.Subtotal,
	}}
}
