package billing_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alset-systems/erp-api/internal/application/billing"
	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/sales"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
	"github.com/alset-systems/erp-api/internal/infrastructure/jsonstore"
)

type fixture struct {
	store    *jsonstore.Store
	invoices *billing.UseCase
	sales    *sales.UseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), "ledger.json"))
	err := store.Update(context.Background(), func(ds *entity.Dataset) error {
		ds.Clients = append(ds.Clients, entity.Client{ID: "c1", Name: "AgroServicios La Cima"})
		ds.Products = append(ds.Products, entity.Product{
			ID: "p1", SKU: "VAL-001", Name: "Válvula 1\"", Stock: 50,
			Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(50),
		})
		return nil
	})
	require.NoError(t, err)
	return fixture{
		store:    store,
		invoices: billing.NewUseCase(store),
		sales:    sales.NewUseCase(store),
	}
}

func (f fixture) closedSale(t *testing.T, qty int64) *dto.SaleResponse {
	t.Helper()
	resp, err := f.sales.Create(context.Background(), dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: qty}},
	})
	require.NoError(t, err)
	return resp
}

func TestIssueFromSale_FotografiaTotales(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sale := f.closedSale(t, 2) // 2×100 = 200, IVA 16% = 32

	inv, err := f.invoices.IssueFromSale(ctx, sale.ID)
	require.NoError(t, err)

	assert.Equal(t, "F-0001", inv.Folio)
	assert.Equal(t, sale.ID, inv.SaleID)
	assert.Equal(t, "AgroServicios La Cima", inv.ClientName)
	assert.Equal(t, entity.InvoiceStatusIssued, inv.Status)
	assert.False(t, inv.Paid)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, inv.Tax.Equal(decimal.NewFromInt(32)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(232)))
}

// La factura es una fotografía: editar la venta después no la altera.
func TestIssueFromSale_EdicionPosteriorNoAlteraLaFactura(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sale := f.closedSale(t, 2)

	inv, err := f.invoices.IssueFromSale(ctx, sale.ID)
	require.NoError(t, err)

	_, err = f.sales.Update(ctx, sale.ID, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: 9}},
	})
	require.NoError(t, err)

	again, err := f.invoices.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, again.Total.Equal(decimal.NewFromInt(232)))
}

func TestIssueFromSale_VentaNoCerradaFalla(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pending, err := f.sales.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.invoices.IssueFromSale(ctx, pending.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.invoices.IssueFromSale(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssueFromSale_UnaFacturaPorVenta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sale := f.closedSale(t, 1)

	_, err := f.invoices.IssueFromSale(ctx, sale.ID)
	require.NoError(t, err)

	_, err = f.invoices.IssueFromSale(ctx, sale.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Borrar la factura deja la venta facturable otra vez, con folio nuevo.
func TestDelete_LaVentaVuelveASerFacturable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sale := f.closedSale(t, 1)

	first, err := f.invoices.IssueFromSale(ctx, sale.ID)
	require.NoError(t, err)
	require.NoError(t, f.invoices.Delete(ctx, first.ID))

	second, err := f.invoices.IssueFromSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "F-0002", second.Folio, "el folio nunca se reutiliza")
}

func TestIssueManual_CalculaConLaTasaVigente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invoices.IssueManual(ctx, dto.ManualInvoiceRequest{
		ClientID: "c1",
		Subtotal: decimal.NewFromInt(1000),
		Status:   entity.InvoiceStatusPending,
	})
	require.NoError(t, err)

	assert.Empty(t, inv.SaleID)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	assert.True(t, inv.Tax.Equal(decimal.NewFromInt(160)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(1160)))

	_, err = f.invoices.IssueManual(ctx, dto.ManualInvoiceRequest{Subtotal: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin cliente")
}

func TestMarkPaid_EsDeUnaSolaViaEIdempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sale := f.closedSale(t, 1)

	inv, err := f.invoices.IssueFromSale(ctx, sale.ID)
	require.NoError(t, err)

	paid, err := f.invoices.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)

	again, err := f.invoices.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, again.Paid)

	_, err = f.invoices.MarkPaid(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltraPorEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sale := f.closedSale(t, 1)

	inv, err := f.invoices.IssueFromSale(ctx, sale.ID)
	require.NoError(t, err)
	_, err = f.invoices.IssueManual(ctx, dto.ManualInvoiceRequest{
		ClientID: "c1", Subtotal: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	_, err = f.invoices.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)

	all, err := f.invoices.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	paid, err := f.invoices.List(ctx, "paid")
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, inv.ID, paid[0].ID)
}
