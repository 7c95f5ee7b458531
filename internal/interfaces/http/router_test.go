package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alset-systems/erp-api/internal/application/analytics"
	"github.com/alset-systems/erp-api/internal/application/attendance"
	"github.com/alset-systems/erp-api/internal/application/backup"
	"github.com/alset-systems/erp-api/internal/application/billing"
	"github.com/alset-systems/erp-api/internal/application/directory"
	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/inventory"
	"github.com/alset-systems/erp-api/internal/application/payroll"
	"github.com/alset-systems/erp-api/internal/application/reports"
	"github.com/alset-systems/erp-api/internal/application/sales"
	"github.com/alset-systems/erp-api/internal/application/settings"
	"github.com/alset-systems/erp-api/internal/domain/entity"
	"github.com/alset-systems/erp-api/internal/infrastructure/jsonstore"
	"github.com/alset-systems/erp-api/internal/infrastructure/pdf"
	apphttp "github.com/alset-systems/erp-api/internal/interfaces/http"
)

// buildTestApp levanta la aplicación completa contra un almacén temporal con
// un cliente y un producto sembrados.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), "ledger.json"))
	err := store.Update(context.Background(), func(ds *entity.Dataset) error {
		ds.Clients = append(ds.Clients, entity.Client{ID: "c1", Name: "Rancho El Mezquite"})
		ds.Products = append(ds.Products, entity.Product{
			ID: "p1", SKU: "PMP-075", Name: "Bomba 3/4 HP", Stock: 2,
			Price: decimal.NewFromInt(900), Cost: decimal.NewFromInt(600),
		})
		return nil
	})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DirectoryUC:  directory.NewUseCase(store),
		InventoryUC:  inventory.NewUseCase(store),
		SalesUC:      sales.NewUseCase(store),
		InvoiceUC:    billing.NewUseCase(store),
		InvoicePDF:   billing.NewPDFUseCase(store, pdf.NewMarotoPDFGenerator()),
		PayrollUC:    payroll.NewUseCase(store),
		AttendanceUC: attendance.NewUseCase(store),
		ReportsUC:    reports.NewUseCase(store),
		AnalyticsUC:  analytics.NewUseCase(store),
		SettingsUC:   settings.NewUseCase(store),
		BackupUC:     backup.NewUseCase(store),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestVentaCerrada_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)

	// Cerrar una venta de 1 bomba.
	resp := doJSON(t, app, fiber.MethodPost, "/api/sales", dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	sale := decode[dto.SaleResponse](t, resp)
	assert.Equal(t, "V-0001", sale.Folio)

	// El stock bajó a 1.
	resp = doJSON(t, app, fiber.MethodGet, "/api/products/p1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	prd := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, int64(1), prd.Stock)

	// Emitir su factura.
	resp = doJSON(t, app, fiber.MethodPost, "/api/sales/"+sale.ID+"/invoice", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	inv := decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "F-0001", inv.Folio)

	// Una segunda emisión es conflicto.
	resp = doJSON(t, app, fiber.MethodPost, "/api/sales/"+sale.ID+"/invoice", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Pagarla.
	resp = doJSON(t, app, fiber.MethodPost, "/api/invoices/"+inv.ID+"/pay", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.InvoiceResponse](t, resp).Paid)
}

func TestVentaCerrada_SinStockRespondeFaltantes(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/sales", dto.SaveSaleRequest{
		ClientID: "c1",
		Status:   entity.SaleStatusClosed,
		Items:    []dto.SaleItemRequest{{ProductID: "p1", Quantity: 5}},
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Shortages)
}

func TestValidacion_BodyInvalido(t *testing.T) {
	app := buildTestApp(t)

	// Venta sin items: lo rechaza el validador antes de llegar al caso de uso.
	resp := doJSON(t, app, fiber.MethodPost, "/api/sales", dto.SaveSaleRequest{ClientID: "c1"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/clients", dto.ClientRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRecursoInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/sales/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/products/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReportesCSV(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/reports/inventory/csv", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PMP-075")

	resp = doJSON(t, app, fiber.MethodGet, "/api/reports/inexistente", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBackup_ExportImport(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/backup/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	exported, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/backup/import", bytes.NewReader(exported))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
