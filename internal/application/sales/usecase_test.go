package sales_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/sales"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
	"github.com/alset-systems/erp-api/internal/infrastructure/jsonstore"
)

func newFixture(t *testing.T) (*sales.UseCase, *jsonstore.Store) {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), "ledger.json"))
	err := store.Update(context.Background(), func(ds *entity.Dataset) error {
		ds.Clients = append(ds.Clients, entity.Client{ID: "c1", Name: "Rancho El Mezquite"})
		ds.Products = append(ds.Products,
			entity.Product{ID: "p1", SKU: "VAL-001", Name: "Válvula 1\"", Stock: 10,
				Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(50)},
			entity.Product{ID: "p2", SKU: "PMP-075", Name: "Bomba 3/4 HP", Stock: 2,
				Price: decimal.NewFromInt(900), Cost: decimal.NewFromInt(600)},
		)
		return nil
	})
	require.NoError(t, err)
	return sales.NewUseCase(store), store
}

func stockOf(t *testing.T, store *jsonstore.Store, id string) int64 {
	t.Helper()
	var stock int64
	require.NoError(t, store.View(context.Background(), func(ds *entity.Dataset) error {
		prd := ds.ProductByID(id)
		require.NotNil(t, prd)
		stock = prd.Stock
		return nil
	}))
	return stock
}

func item(productID string, qty int64) dto.SaleItemRequest {
	return dto.SaleItemRequest{ProductID: productID, Quantity: qty}
}

func TestCreate_PendienteNoTocaStockYAsignaFolio(t *testing.T) {
	uc, store := newFixture(t)

	resp, err := uc.Create(context.Background(), dto.SaveSaleRequest{
		ClientID: "c1",
		Items:    []dto.SaleItemRequest{item("p1", 3)},
	})
	require.NoError(t, err)

	assert.Equal(t, "V-0001", resp.Folio)
	assert.Equal(t, entity.SaleStatusPending, resp.Status)
	assert.Equal(t, "Rancho El Mezquite", resp.ClientName)
	// Precio cero en el request toma el precio vigente del producto.
	assert.True(t, resp.Totals.Subtotal.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, int64(10), stockOf(t, store, "p1"))
}

func TestCreate_CerradaDescuentaStockYRegistraMovimientos(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p1", 4), item("p2", 1)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), stockOf(t, store, "p1"))
	assert.Equal(t, int64(1), stockOf(t, store, "p2"))

	require.NoError(t, store.View(ctx, func(ds *entity.Dataset) error {
		require.Len(t, ds.Movements, 2)
		for _, mv := range ds.Movements {
			assert.Equal(t, entity.MovementKindOut, mv.Kind)
			assert.Equal(t, "Venta "+resp.Folio, mv.Note)
		}
		return nil
	}))
}

func TestCreate_StockInsuficienteAbortaSinMutar(t *testing.T) {
	uc, store := newFixture(t)

	_, err := uc.Create(context.Background(), dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p1", 5), item("p2", 3)},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Shortages, 1)
	assert.Equal(t, "PMP-075", stockErr.Shortages[0].SKU)
	assert.Equal(t, int64(2), stockErr.Shortages[0].Available)
	assert.Equal(t, int64(3), stockErr.Shortages[0].Requested)

	// Nada se movió: ni siquiera las líneas que sí cabían.
	assert.Equal(t, int64(10), stockOf(t, store, "p1"))
	assert.Equal(t, int64(2), stockOf(t, store, "p2"))
	require.NoError(t, store.View(context.Background(), func(ds *entity.Dataset) error {
		assert.Empty(t, ds.Sales)
		assert.Empty(t, ds.Movements)
		return nil
	}))
}

// Editar una venta cerrada reduce la cantidad: la verificación de stock cuenta
// a favor lo que la reversión del efecto anterior va a devolver, así que la
// edición procede aun con stock en cero.
func TestUpdate_ReduceCantidadConStockEnCero(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p1", 10)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), stockOf(t, store, "p1"))

	_, err = uc.Update(ctx, resp.ID, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p1", 3)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), stockOf(t, store, "p1"))
}

func TestUpdate_AumentarMasAllaDelTotalFalla(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p1", 8)},
	})
	require.NoError(t, err)

	// Disponible efectivo = 2 en stock + 8 por revertir = 10; pedir 11 falla.
	_, err = uc.Update(ctx, resp.ID, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p1", 11)},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	// La venta original sigue intacta con su efecto aplicado.
	assert.Equal(t, int64(2), stockOf(t, store, "p1"))
}

func TestUpdate_ReabrirRestauraStock(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p1", 6)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), stockOf(t, store, "p1"))

	_, err = uc.Update(ctx, resp.ID, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusPending,
		Items:    []dto.SaleItemRequest{item("p1", 6)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), stockOf(t, store, "p1"))

	require.NoError(t, store.View(ctx, func(ds *entity.Dataset) error {
		require.Len(t, ds.Movements, 2)
		assert.Equal(t, "Reverso "+resp.Folio, ds.Movements[1].Note)
		assert.Equal(t, entity.MovementKindIn, ds.Movements[1].Kind)
		return nil
	}))
}

func TestUpdate_ConservaFolioYNoDuplicaEfecto(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Folio:    "V-0042",
		Items:    []dto.SaleItemRequest{item("p1", 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "V-0042", resp.Folio)

	// Re-guardar idéntica: reverso + aplicación dejan el stock igual.
	upd, err := uc.Update(ctx, resp.ID, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Folio:    "V-0042",
		Items:    []dto.SaleItemRequest{item("p1", 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "V-0042", upd.Folio)
	assert.Equal(t, int64(8), stockOf(t, store, "p1"))

	// El folio manual entra a la serie: el siguiente automático lo supera.
	next, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Items:    []dto.SaleItemRequest{item("p1", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "V-0043", next.Folio)
}

func TestDelete_CerradaRestauraStock(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{item("p2", 2)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), stockOf(t, store, "p2"))

	require.NoError(t, uc.Delete(ctx, resp.ID))
	assert.Equal(t, int64(2), stockOf(t, store, "p2"))

	_, err = uc.Get(ctx, resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSave_Validaciones(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.SaveSaleRequest{Items: []dto.SaleItemRequest{item("p1", 1)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin cliente")

	_, err = uc.Create(ctx, dto.SaveSaleRequest{ClientID: "c1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin items")

	_, err = uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Items:    []dto.SaleItemRequest{item("p1", 0)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Update(ctx, "no-existe", dto.SaveSaleRequest{
		ClientID: "c1",
		Items:    []dto.SaleItemRequest{item("p1", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSave_FotografiaCostoYPermiteSobreescribirPrecio(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()

	price := decimal.NewFromInt(80)
	resp, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1",
		Items: []dto.SaleItemRequest{{
			ProductID: "p1", Quantity: 2, UnitPrice: price,
		}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Totals.Subtotal.Equal(decimal.NewFromInt(160)))
	// Costo fotografiado del producto (50×2 = 100).
	assert.True(t, resp.Totals.Cost.Equal(decimal.NewFromInt(100)))

	// Subir el costo del producto después no altera el margen histórico.
	require.NoError(t, store.Update(ctx, func(ds *entity.Dataset) error {
		ds.ProductByID("p1").Cost = decimal.NewFromInt(70)
		return nil
	}))
	again, err := uc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, again.Totals.Cost.Equal(decimal.NewFromInt(100)))
}

func TestList_FiltraYOrdena(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1", Date: "2026-01-10",
		Items: []dto.SaleItemRequest{item("p1", 1)},
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.SaveSaleRequest{
		ClientID: "c1", Date: "2026-02-20", Status: entity.SaleStatusClosed,
		Items: []dto.SaleItemRequest{item("p1", 1)},
	})
	require.NoError(t, err)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2026-02-20", all[0].Date, "más reciente primero")

	closed, err := uc.List(ctx, "closed")
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, entity.SaleStatusClosed, closed[0].Status)
}
