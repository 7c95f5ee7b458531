package directory_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alset-systems/erp-api/internal/application/directory"
	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/infrastructure/jsonstore"
)

func newUseCase(t *testing.T) *directory.UseCase {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), "ledger.json"))
	return directory.NewUseCase(store)
}

func TestClientes_CRUD(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	cli, err := uc.CreateClient(ctx, dto.ClientRequest{
		Name: "Rancho El Mezquite", TaxID: "RME900101AB1", Phone: "551-000-1111",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cli.ID)

	upd, err := uc.UpdateClient(ctx, cli.ID, dto.ClientRequest{
		Name: "Rancho El Mezquite SA", TaxID: "RME900101AB1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rancho El Mezquite SA", upd.Name)

	got, err := uc.GetClient(ctx, cli.ID)
	require.NoError(t, err)
	assert.Equal(t, "RME900101AB1", got.TaxID)

	require.NoError(t, uc.DeleteClient(ctx, cli.ID))
	_, err = uc.GetClient(ctx, cli.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListClients_Filtro(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateClient(ctx, dto.ClientRequest{Name: "Rancho El Mezquite"})
	require.NoError(t, err)
	_, err = uc.CreateClient(ctx, dto.ClientRequest{Name: "AgroServicios La Cima"})
	require.NoError(t, err)

	all, err := uc.ListClients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	agro, err := uc.ListClients(ctx, "agro")
	require.NoError(t, err)
	require.Len(t, agro, 1)
	assert.Equal(t, "AgroServicios La Cima", agro[0].Name)
}

func TestProveedores_CRUD(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateSupplier(ctx, dto.SupplierRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin nombre")

	sup, err := uc.CreateSupplier(ctx, dto.SupplierRequest{
		Name: "HydroParts MX", Terms: "30 días",
	})
	require.NoError(t, err)

	got, err := uc.GetSupplier(ctx, sup.ID)
	require.NoError(t, err)
	assert.Equal(t, "30 días", got.Terms)

	require.NoError(t, uc.DeleteSupplier(ctx, sup.ID))
	assert.ErrorIs(t, uc.DeleteSupplier(ctx, sup.ID), domain.ErrNotFound)
}
