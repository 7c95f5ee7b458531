// Package analytics deriva los indicadores del negocio: KPIs del tablero,
// rankings de clientes y productos, y el indicador de salud. Todo se calcula
// sobre ventas cerradas; las pendientes y canceladas no cuentan.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	domainbilling "github.com/alset-systems/erp-api/internal/domain/billing"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// Pesos del indicador de salud: cada producto crítico y cada factura sin
// pagar restan puntos de un máximo de 100.
const (
	criticalPenalty = 8
	unpaidPenalty   = 4
	topLimit        = 5
)

// UseCase indicadores derivados del negocio.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// Dashboard KPIs de los últimos days días (<= 0 cae a 30).
func (uc *UseCase) Dashboard(ctx context.Context, days int) (*dto.DashboardResponse, error) {
	if days <= 0 {
		days = 30
	}
	from := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	out := dto.DashboardResponse{
		SalesTotal:     decimal.Zero,
		MonthlyPayroll: decimal.Zero,
		LatestSales:    []dto.SaleResponse{},
	}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		sales := make([]entity.Sale, len(ds.Sales))
		copy(sales, ds.Sales)
		sort.SliceStable(sales, func(i, j int) bool { return sales[i].Date > sales[j].Date })

		for _, sale := range sales {
			if sale.Status != entity.SaleStatusClosed || sale.Date < from {
				continue
			}
			totals := domainbilling.SaleTotals(sale.Items, ds.Settings.TaxRatePercent)
			out.SalesTotal = out.SalesTotal.Add(totals.Total)
			out.SalesCount++
			if len(out.LatestSales) < topLimit {
				out.LatestSales = append(out.LatestSales, latestSale(ds, sale, totals))
			}
		}

		out.InvoiceCount = len(ds.Invoices)
		for _, inv := range ds.Invoices {
			if inv.Paid {
				out.InvoicesPaid++
			}
		}
		for _, prd := range ds.Products {
			if prd.Critical() {
				out.CriticalProducts++
			}
		}
		for _, emp := range ds.Employees {
			out.MonthlyPayroll = out.MonthlyPayroll.Add(emp.MonthlySalary)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary analíticas sobre ventas cerradas en [from, to] (extremos vacíos no
// acotan), más el indicador de salud del negocio completo.
func (uc *UseCase) Summary(ctx context.Context, from, to string) (*dto.AnalyticsSummaryResponse, error) {
	out := dto.AnalyticsSummaryResponse{
		Subtotal:      decimal.Zero,
		Cost:          decimal.Zero,
		Margin:        decimal.Zero,
		Total:         decimal.Zero,
		MarginPercent: decimal.Zero,
		TopClients:    []dto.TopClientDTO{},
		TopProducts:   []dto.TopProductDTO{},
	}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		byClient := map[string]decimal.Decimal{}
		byProduct := map[string]int64{}

		for _, sale := range ds.Sales {
			if sale.Status != entity.SaleStatusClosed || !inRange(sale.Date, from, to) {
				continue
			}
			totals := domainbilling.SaleTotals(sale.Items, ds.Settings.TaxRatePercent)
			out.Subtotal = out.Subtotal.Add(totals.Subtotal)
			out.Cost = out.Cost.Add(totals.Cost)
			out.Margin = out.Margin.Add(totals.Margin)
			out.Total = out.Total.Add(totals.Total)

			byClient[sale.ClientID] = byClient[sale.ClientID].Add(totals.Total)
			for _, it := range sale.Items {
				byProduct[it.ProductID] += it.Quantity
			}
		}
		if out.Subtotal.IsPositive() {
			out.MarginPercent = out.Margin.Div(out.Subtotal).Mul(decimal.NewFromInt(100)).Round(2)
		}

		out.TopClients = topClients(ds, byClient)
		out.TopProducts = topProducts(ds, byProduct)

		for _, prd := range ds.Products {
			if prd.Critical() {
				out.CriticalProducts++
			}
		}
		for _, inv := range ds.Invoices {
			if !inv.Paid {
				out.UnpaidInvoices++
			}
		}
		out.HealthScore = healthScore(out.CriticalProducts, out.UnpaidInvoices)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// healthScore 100 menos las penalizaciones, acotado a 0..100.
func healthScore(criticals, unpaid int) int {
	score := 100 - criticals*criticalPenalty - unpaid*unpaidPenalty
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func topClients(ds *entity.Dataset, byClient map[string]decimal.Decimal) []dto.TopClientDTO {
	out := make([]dto.TopClientDTO, 0, len(byClient))
	for id, total := range byClient {
		name := "—"
		if cli := ds.ClientByID(id); cli != nil {
			name = cli.Name
		}
		out = append(out, dto.TopClientDTO{ClientName: name, Total: total})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].ClientName < out[j].ClientName
	})
	if len(out) > topLimit {
		out = out[:topLimit]
	}
	return out
}

func topProducts(ds *entity.Dataset, byProduct map[string]int64) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(byProduct))
	for id, units := range byProduct {
		sku, name := "—", "—"
		if prd := ds.ProductByID(id); prd != nil {
			sku, name = prd.SKU, prd.Name
		}
		out = append(out, dto.TopProductDTO{SKU: sku, ProductName: name, Units: units})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Units != out[j].Units {
			return out[i].Units > out[j].Units
		}
		return out[i].SKU < out[j].SKU
	})
	if len(out) > topLimit {
		out = out[:topLimit]
	}
	return out
}

func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

func latestSale(ds *entity.Dataset, sale entity.Sale, totals domainbilling.Totals) dto.SaleResponse {
	clientName := "—"
	if cli := ds.ClientByID(sale.ClientID); cli != nil {
		clientName = cli.Name
	}
	return dto.SaleResponse{
		ID:         sale.ID,
		Date:       sale.Date,
		Folio:      sale.Folio,
		ClientID:   sale.ClientID,
		ClientName: clientName,
		Status:     sale.Status,
		Totals: dto.SaleTotalsResponse{
			Subtotal: totals.Subtotal,
			Tax:      totals.Tax,
			Total:    totals.Total,
			Cost:     totals.Cost,
			Margin:   totals.Margin,
		},
	}
}
