// Package billing emite facturas desde ventas cerradas y gestiona su ciclo
// de pago. Los totales de la factura son una fotografía al momento de emitir:
// la venta puede reabrirse o editarse después sin alterar la factura.
package billing

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	domainbilling "github.com/alset-systems/erp-api/internal/domain/billing"
	"github.com/alset-systems/erp-api/internal/domain/entity"
	"github.com/alset-systems/erp-api/internal/domain/folio"
)

// FolioPrefix serie documental de las facturas.
const FolioPrefix = "F"

// UseCase emisión y ciclo de pago de facturas.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// IssueFromSale emite la factura de una venta cerrada:
//
//   - la venta debe existir (ErrNotFound) y estar cerrada (ErrInvalidState);
//   - a lo más una factura por venta (ErrDuplicate si ya hay una);
//   - subtotal, impuesto y total se fotografían de los items y la tasa
//     vigente en este instante.
func (uc *UseCase) IssueFromSale(ctx context.Context, saleID string) (*dto.InvoiceResponse, error) {
	var out dto.InvoiceResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		sale := ds.SaleByID(saleID)
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status != entity.SaleStatusClosed {
			return domain.ErrInvalidState
		}
		if ds.InvoiceBySaleID(saleID) != nil {
			return domain.ErrDuplicate
		}

		totals := domainbilling.SaleTotals(sale.Items, ds.Settings.TaxRatePercent)
		inv := entity.Invoice{
			ID:       uuid.New().String(),
			Date:     time.Now().Format("2006-01-02"),
			Folio:    folio.Next(FolioPrefix, invoiceFolios(ds)),
			SaleID:   sale.ID,
			ClientID: sale.ClientID,
			Subtotal: totals.Subtotal,
			Tax:      totals.Tax,
			Total:    totals.Total,
			Status:   entity.InvoiceStatusIssued,
		}
		ds.Invoices = append(ds.Invoices, inv)
		out = invoiceResponse(ds, inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// IssueManual emite una factura sin venta ligada a partir de un subtotal
// capturado a mano; impuesto y total salen de la tasa vigente.
func (uc *UseCase) IssueManual(ctx context.Context, in dto.ManualInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || in.Subtotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusIssued
	}
	var out dto.InvoiceResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		tax, total := domainbilling.ManualTotals(in.Subtotal, ds.Settings.TaxRatePercent)
		inv := entity.Invoice{
			ID:       uuid.New().String(),
			Date:     in.Date,
			Folio:    folio.Next(FolioPrefix, invoiceFolios(ds)),
			ClientID: in.ClientID,
			Subtotal: in.Subtotal,
			Tax:      tax,
			Total:    total,
			Status:   status,
		}
		if inv.Date == "" {
			inv.Date = time.Now().Format("2006-01-02")
		}
		ds.Invoices = append(ds.Invoices, inv)
		out = invoiceResponse(ds, inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkPaid marca la factura como pagada. La operación es de una sola vía e
// idempotente: pagar una factura ya pagada no es error y no cambia nada.
func (uc *UseCase) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	var out dto.InvoiceResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		inv := ds.InvoiceByID(id)
		if inv == nil {
			return domain.ErrNotFound
		}
		inv.Paid = true
		inv.Status = entity.InvoiceStatusPaid
		out = invoiceResponse(ds, *inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina la factura. La venta ligada (si existe) no se toca: vuelve a
// ser facturable.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Invoices {
			if ds.Invoices[i].ID == id {
				ds.Invoices = append(ds.Invoices[:i], ds.Invoices[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Get devuelve una factura por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	var out dto.InvoiceResponse
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		inv := ds.InvoiceByID(id)
		if inv == nil {
			return domain.ErrNotFound
		}
		out = invoiceResponse(ds, *inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List devuelve las facturas más recientes primero, con filtro opcional por
// folio, cliente o estado.
func (uc *UseCase) List(ctx context.Context, query string) ([]dto.InvoiceResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []dto.InvoiceResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		invs := make([]entity.Invoice, len(ds.Invoices))
		copy(invs, ds.Invoices)
		sort.SliceStable(invs, func(i, j int) bool { return invs[i].Date > invs[j].Date })
		for _, inv := range invs {
			resp := invoiceResponse(ds, inv)
			if q != "" &&
				!strings.Contains(strings.ToLower(resp.Folio), q) &&
				!strings.Contains(strings.ToLower(resp.ClientName), q) &&
				!strings.Contains(strings.ToLower(resp.Status), q) {
				continue
			}
			out = append(out, resp)
		}
		return nil
	})
	return out, err
}

func invoiceFolios(ds *entity.Dataset) []string {
	folios := make([]string, 0, len(ds.Invoices))
	for _, inv := range ds.Invoices {
		folios = append(folios, inv.Folio)
	}
	return folios
}

func invoiceResponse(ds *entity.Dataset, inv entity.Invoice) dto.InvoiceResponse {
	clientName := "—"
	if cli := ds.ClientByID(inv.ClientID); cli != nil {
		clientName = cli.Name
	}
	return dto.InvoiceResponse{
		ID:         inv.ID,
		Date:       inv.Date,
		Folio:      inv.Folio,
		SaleID:     inv.SaleID,
		ClientID:   inv.ClientID,
		ClientName: clientName,
		Subtotal:   inv.Subtotal,
		Tax:        inv.Tax,
		Total:      inv.Total,
		Status:     inv.Status,
		Paid:       inv.Paid,
	}
}
