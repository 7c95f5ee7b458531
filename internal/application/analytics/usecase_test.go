package analytics_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alset-systems/erp-api/internal/application/analytics"
	"github.com/alset-systems/erp-api/internal/domain/entity"
	"github.com/alset-systems/erp-api/internal/infrastructure/jsonstore"
)

func seededUseCase(t *testing.T, mutate func(ds *entity.Dataset)) *analytics.UseCase {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, store.Update(context.Background(), func(ds *entity.Dataset) error {
		mutate(ds)
		return nil
	}))
	return analytics.NewUseCase(store)
}

func closedSale(id, date, clientID string, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{
		ID: id, Date: date, Folio: "V-" + id, ClientID: clientID,
		Status: entity.SaleStatusClosed, Items: items,
	}
}

func TestSummary_SoloCuentaVentasCerradas(t *testing.T) {
	uc := seededUseCase(t, func(ds *entity.Dataset) {
		ds.Clients = append(ds.Clients, entity.Client{ID: "c1", Name: "Rancho El Mezquite"})
		ds.Products = append(ds.Products, entity.Product{ID: "p1", SKU: "VAL-001", Name: "Válvula"})
		line := entity.SaleItem{ProductID: "p1", Quantity: 2,
			UnitPrice: decimal.NewFromInt(100), UnitCost: decimal.NewFromInt(50)}
		ds.Sales = append(ds.Sales,
			closedSale("0001", "2026-08-01", "c1", line),
			entity.Sale{ID: "0002", Date: "2026-08-02", ClientID: "c1",
				Status: entity.SaleStatusPending, Items: []entity.SaleItem{line}},
		)
	})

	sum, err := uc.Summary(context.Background(), "", "")
	require.NoError(t, err)

	// Una sola venta cerrada: 2×100 subtotal, 2×50 costo.
	assert.True(t, sum.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, sum.Cost.Equal(decimal.NewFromInt(100)))
	assert.True(t, sum.Margin.Equal(decimal.NewFromInt(100)))
	assert.True(t, sum.MarginPercent.Equal(decimal.NewFromInt(50)))
	require.Len(t, sum.TopClients, 1)
	assert.Equal(t, "Rancho El Mezquite", sum.TopClients[0].ClientName)
	require.Len(t, sum.TopProducts, 1)
	assert.Equal(t, int64(2), sum.TopProducts[0].Units)
}

func TestSummary_RangoDeFechas(t *testing.T) {
	uc := seededUseCase(t, func(ds *entity.Dataset) {
		line := entity.SaleItem{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}
		ds.Sales = append(ds.Sales,
			closedSale("0001", "2026-01-15", "c1", line),
			closedSale("0002", "2026-06-15", "c1", line),
		)
	})

	sum, err := uc.Summary(context.Background(), "2026-06-01", "2026-06-30")
	require.NoError(t, err)
	assert.True(t, sum.Subtotal.Equal(decimal.NewFromInt(100)))
}

func TestHealthScore_PenalizaCriticosYFacturasSinPagar(t *testing.T) {
	uc := seededUseCase(t, func(ds *entity.Dataset) {
		// 2 productos críticos (×8) y 3 facturas sin pagar (×4): 100−16−12 = 72.
		ds.Products = append(ds.Products,
			entity.Product{ID: "p1", SKU: "A", Stock: 0, MinStock: 5},
			entity.Product{ID: "p2", SKU: "B", Stock: 1, MinStock: 5},
			entity.Product{ID: "p3", SKU: "C", Stock: 9, MinStock: 5},
		)
		for _, id := range []string{"f1", "f2", "f3"} {
			ds.Invoices = append(ds.Invoices, entity.Invoice{ID: id, Status: entity.InvoiceStatusPending})
		}
	})

	sum, err := uc.Summary(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.CriticalProducts)
	assert.Equal(t, 3, sum.UnpaidInvoices)
	assert.Equal(t, 72, sum.HealthScore)
}

func TestHealthScore_NuncaBajaDeCero(t *testing.T) {
	uc := seededUseCase(t, func(ds *entity.Dataset) {
		for i := 0; i < 40; i++ {
			ds.Invoices = append(ds.Invoices, entity.Invoice{Status: entity.InvoiceStatusPending})
		}
	})

	sum, err := uc.Summary(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, sum.HealthScore)
}

func TestDashboard(t *testing.T) {
	uc := seededUseCase(t, func(ds *entity.Dataset) {
		ds.Clients = append(ds.Clients, entity.Client{ID: "c1", Name: "Rancho El Mezquite"})
		line := entity.SaleItem{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}
		// Venta vieja fuera de la ventana de 30 días.
		ds.Sales = append(ds.Sales,
			closedSale("0001", "2020-01-01", "c1", line),
			closedSale("0002", "2099-01-01", "c1", line),
		)
		ds.Invoices = append(ds.Invoices,
			entity.Invoice{ID: "f1", Paid: true, Status: entity.InvoiceStatusPaid},
			entity.Invoice{ID: "f2", Status: entity.InvoiceStatusPending},
		)
		ds.Employees = append(ds.Employees,
			entity.Employee{ID: "e1", MonthlySalary: decimal.NewFromInt(12000)},
			entity.Employee{ID: "e2", MonthlySalary: decimal.NewFromInt(9000)},
		)
	})

	dash, err := uc.Dashboard(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 1, dash.SalesCount, "la venta de 2020 queda fuera de la ventana")
	// 100 + 16% IVA.
	assert.True(t, dash.SalesTotal.Equal(decimal.NewFromInt(116)))
	assert.Equal(t, 2, dash.InvoiceCount)
	assert.Equal(t, 1, dash.InvoicesPaid)
	assert.True(t, dash.MonthlyPayroll.Equal(decimal.NewFromInt(21000)))
	require.Len(t, dash.LatestSales, 1)
	assert.Equal(t, "Rancho El Mezquite", dash.LatestSales[0].ClientName)
}
