package jsonstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/domain/billing"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// SeedIfEmpty carga datos de demostración si el dataset no tiene clientes ni
// productos, para que la instalación no arranque en blanco. El dataset
// sembrado es consistente: la venta cerrada ya tiene su efecto de stock
// aplicado y sus movimientos registrados, y la factura fotografía los totales.
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	return s.Update(ctx, func(ds *entity.Dataset) error {
		if len(ds.Clients) > 0 || len(ds.Products) > 0 {
			return nil
		}

		today := time.Now().Format("2006-01-02")
		saleDate := time.Now().AddDate(0, 0, -8).Format("2006-01-02")

		c1 := entity.Client{ID: uuid.New().String(), Name: "Rancho El Mezquite"}
		c2 := entity.Client{ID: uuid.New().String(), Name: "AgroServicios La Cima"}
		ds.Clients = append(ds.Clients, c1, c2)

		p1 := entity.Supplier{ID: uuid.New().String(), Name: "HydroParts MX", Terms: "30 días"}
		p2 := entity.Supplier{ID: uuid.New().String(), Name: "ElectroPump Supply", Terms: "Contado"}
		ds.Suppliers = append(ds.Suppliers, p1, p2)

		valve := entity.Product{
			ID: uuid.New().String(), SKU: "VAL-001", Name: "Válvula 2\" PVC", Category: "Conexiones",
			Cost: decimal.NewFromInt(120), Price: decimal.NewFromInt(210),
			Stock: 28, MinStock: 10, SupplierID: p1.ID,
		}
		pump := entity.Product{
			ID: uuid.New().String(), SKU: "PMP-075", Name: "Bomba 7.5HP", Category: "Bombas",
			Cost: decimal.NewFromInt(9800), Price: decimal.NewFromInt(13800),
			Stock: 3, MinStock: 4, SupplierID: p2.ID,
		}
		pipe := entity.Product{
			ID: uuid.New().String(), SKU: "TUB-160", Name: "Tubería 160 PSI (rollo)", Category: "Tubería",
			Cost: decimal.NewFromInt(740), Price: decimal.NewFromInt(1120),
			Stock: 12, MinStock: 6, SupplierID: p1.ID,
		}
		ds.Products = append(ds.Products, valve, pump, pipe)

		for _, p := range []entity.Product{valve, pump, pipe} {
			ds.Movements = append(ds.Movements, entity.StockMovement{
				ID: uuid.New().String(), Date: today, Kind: entity.MovementKindIn,
				ProductID: p.ID, Quantity: p.Stock, Note: "Inventario inicial",
			})
		}

		e1 := entity.Employee{ID: uuid.New().String(), Name: "Luis Ramírez", Role: "Técnico", MonthlySalary: decimal.NewFromInt(14500)}
		e2 := entity.Employee{ID: uuid.New().String(), Name: "Karla N.", Role: "Administración", MonthlySalary: decimal.NewFromInt(13200)}
		ds.Employees = append(ds.Employees, e1, e2)

		// Venta cerrada de demostración con su efecto de stock ya aplicado.
		sale := entity.Sale{
			ID: uuid.New().String(), Date: saleDate, Folio: "V-0001",
			ClientID: c1.ID, Status: entity.SaleStatusClosed, Notes: "Instalación incluida",
			Items: []entity.SaleItem{
				{ProductID: pump.ID, Quantity: 1, UnitPrice: pump.Price, UnitCost: pump.Cost},
				{ProductID: valve.ID, Quantity: 4, UnitPrice: valve.Price, UnitCost: valve.Cost},
			},
		}
		ds.Sales = append(ds.Sales, sale)
		for _, it := range sale.Items {
			prd := ds.ProductByID(it.ProductID)
			prd.Stock -= it.Quantity
			ds.Movements = append(ds.Movements, entity.StockMovement{
				ID: uuid.New().String(), Date: sale.Date, Kind: entity.MovementKindOut,
				ProductID: it.ProductID, Quantity: it.Quantity, Note: "Venta " + sale.Folio,
			})
		}

		totals := billing.SaleTotals(sale.Items, ds.Settings.TaxRatePercent)
		ds.Invoices = append(ds.Invoices, entity.Invoice{
			ID: uuid.New().String(), Date: sale.Date, Folio: "F-0001",
			SaleID: sale.ID, ClientID: sale.ClientID,
			Subtotal: totals.Subtotal, Tax: totals.Tax, Total: totals.Total,
			Status: entity.InvoiceStatusIssued, Paid: false,
		})
		return nil
	})
}
