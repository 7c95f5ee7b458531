package jsonstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alset-systems/erp-api/internal/domain/entity"
	"github.com/alset-systems/erp-api/internal/infrastructure/jsonstore"
)

func newStore(t *testing.T) (*jsonstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	return jsonstore.New(path), path
}

func TestView_ArchivoAusenteDevuelveDefaults(t *testing.T) {
	store, _ := newStore(t)

	err := store.View(context.Background(), func(ds *entity.Dataset) error {
		assert.Empty(t, ds.Clients)
		assert.Empty(t, ds.Sales)
		assert.Equal(t, "ALSET Irrigation Systems", ds.Settings.CompanyName)
		assert.True(t, ds.Settings.TaxRatePercent.IntPart() == 16)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdate_PersisteYRelee(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	err := store.Update(ctx, func(ds *entity.Dataset) error {
		ds.Clients = append(ds.Clients, entity.Client{ID: "c1", Name: "Rancho El Mezquite"})
		return nil
	})
	require.NoError(t, err)

	// El archivo definitivo existe y no quedan temporales colgando.
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
	entries, _ := os.ReadDir(filepath.Dir(path))
	assert.Len(t, entries, 1)

	err = store.View(ctx, func(ds *entity.Dataset) error {
		require.Len(t, ds.Clients, 1)
		assert.Equal(t, "Rancho El Mezquite", ds.Clients[0].Name)
		return nil
	})
	require.NoError(t, err)
}

// TestUpdate_ErrorNoEscribe: si fn falla, el archivo queda intacto (rollback).
func TestUpdate_ErrorNoEscribe(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, func(ds *entity.Dataset) error {
		ds.Clients = append(ds.Clients, entity.Client{ID: "c1", Name: "Cliente"})
		return nil
	}))

	boom := assert.AnError
	err := store.Update(ctx, func(ds *entity.Dataset) error {
		ds.Clients = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	_ = store.View(ctx, func(ds *entity.Dataset) error {
		assert.Len(t, ds.Clients, 1, "la mutación fallida no debe persistirse")
		return nil
	})
}

// TestLoad_ArchivoCorruptoDevuelveDefaults: un JSON ilegible nunca propaga
// error; se arranca con el dataset por defecto.
func TestLoad_ArchivoCorruptoDevuelveDefaults(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))

	err := store.View(context.Background(), func(ds *entity.Dataset) error {
		assert.Empty(t, ds.Clients)
		assert.Equal(t, "MXN", ds.Settings.Currency)
		return nil
	})
	require.NoError(t, err)
}

// TestLoad_SeccionesAusentesQuedanEnDefault: un documento parcial se decodifica
// sobre los defaults (equivalente al merge del backup original).
func TestLoad_SeccionesAusentesQuedanEnDefault(t *testing.T) {
	store, path := newStore(t)
	partial := `{"clients":[{"id":"c9","name":"Solo clientes","balance":"0"}]}`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	err := store.View(context.Background(), func(ds *entity.Dataset) error {
		require.Len(t, ds.Clients, 1)
		assert.Equal(t, "ALSET Irrigation Systems", ds.Settings.CompanyName)
		assert.Empty(t, ds.Sales)
		return nil
	})
	require.NoError(t, err)
}

func TestSeedIfEmpty(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedIfEmpty(ctx))

	var products int
	err := store.View(ctx, func(ds *entity.Dataset) error {
		products = len(ds.Products)
		require.Len(t, ds.Sales, 1)
		require.Len(t, ds.Invoices, 1)

		// La venta cerrada ya descontó stock y dejó su rastro de movimientos.
		sale := ds.Sales[0]
		assert.Equal(t, entity.SaleStatusClosed, sale.Status)
		for _, it := range sale.Items {
			prd := ds.ProductByID(it.ProductID)
			require.NotNil(t, prd)
			assert.GreaterOrEqual(t, prd.Stock, int64(0))
		}
		// 3 entradas iniciales + 2 salidas por la venta.
		assert.Len(t, ds.Movements, 5)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, products)

	// Segunda llamada es no-op.
	require.NoError(t, store.SeedIfEmpty(ctx))
	_ = store.View(ctx, func(ds *entity.Dataset) error {
		assert.Equal(t, products, len(ds.Products))
		return nil
	})
}
