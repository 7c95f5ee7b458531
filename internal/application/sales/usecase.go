// Package sales orquesta el ciclo de vida de una venta: alta, edición,
// borrado y las transiciones de estado con su efecto de inventario.
//
// Garantía central: para una venta dada hay a lo más un efecto de stock
// "vivo", y siempre corresponde a sus items actuales. Al editar una venta que
// estaba cerrada se revierte primero el efecto anterior (con los items
// anteriores) y solo después se aplica el nuevo (con los items nuevos); al
// borrarla se revierte y listo. El orden revertir-antes-de-aplicar evita
// rechazos transitorios por stock cuando una línea no cambia entre ediciones.
package sales

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/inventory"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	domainbilling "github.com/alset-systems/erp-api/internal/domain/billing"
	"github.com/alset-systems/erp-api/internal/domain/entity"
	"github.com/alset-systems/erp-api/internal/domain/folio"
)

// FolioPrefix serie documental de las ventas.
const FolioPrefix = "V"

// UseCase ciclo de vida de ventas.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// Create crea una venta nueva. Ver Save.
func (uc *UseCase) Create(ctx context.Context, in dto.SaveSaleRequest) (*dto.SaleResponse, error) {
	return uc.save(ctx, "", in)
}

// Update reemplaza una venta existente (full replace, no merge). Ver Save.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.SaveSaleRequest) (*dto.SaleResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.save(ctx, id, in)
}

// save es la operación única de crear/actualizar:
//
//  1. Valida: cliente y al menos un item (sin mutación si falla).
//  2. Si el destino es "closed", verifica suficiencia de stock por línea
//     contando a favor lo que la reversión del efecto anterior va a devolver;
//     cualquier faltante aborta con el detalle por SKU y sin tocar stock.
//  3. Si la venta existía y estaba cerrada, revierte su efecto anterior con
//     los items *anteriores*.
//  4. Persiste el payload nuevo.
//  5. Si quedó cerrada, aplica el efecto con los items *nuevos*.
//
// Todo ocurre dentro de un solo Update del ledger: o se persiste completo o
// no se persiste nada.
func (uc *UseCase) save(ctx context.Context, id string, in dto.SaveSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.SaleStatusPending
	}
	switch status {
	case entity.SaleStatusPending, entity.SaleStatusClosed, entity.SaleStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var out dto.SaleResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		var prev *entity.Sale
		if id != "" {
			prev = ds.SaleByID(id)
			if prev == nil {
				return domain.ErrNotFound
			}
		}

		items := resolveItems(ds, in.Items)

		if status == entity.SaleStatusClosed {
			if err := checkStock(ds, prev, items); err != nil {
				return err
			}
		}

		// Revertir el efecto anterior con los items anteriores, antes de
		// pisar el registro.
		if prev != nil && prev.Status == entity.SaleStatusClosed {
			inventory.ApplySaleEffect(ds, prev, inventory.DirectionRestore)
		}

		sale := entity.Sale{
			ID:       id,
			Date:     in.Date,
			Folio:    strings.TrimSpace(in.Folio),
			ClientID: in.ClientID,
			Status:   status,
			Notes:    in.Notes,
			Items:    items,
		}
		if sale.ID == "" {
			sale.ID = uuid.New().String()
		}
		if sale.Date == "" {
			sale.Date = time.Now().Format("2006-01-02")
		}
		if sale.Folio == "" {
			sale.Folio = folio.Next(FolioPrefix, saleFolios(ds))
		}

		if prev != nil {
			*ds.SaleByID(id) = sale
		} else {
			ds.Sales = append(ds.Sales, sale)
		}

		if sale.Status == entity.SaleStatusClosed {
			inventory.ApplySaleEffect(ds, &sale, inventory.DirectionConsume)
		}

		out = saleResponse(ds, sale, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina la venta; si estaba cerrada revierte antes su efecto de
// stock. Una factura que referencie esta venta se deja en su lugar con la
// referencia colgante (no hay cascada; decisión documentada).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Sales {
			if ds.Sales[i].ID != id {
				continue
			}
			if ds.Sales[i].Status == entity.SaleStatusClosed {
				inventory.ApplySaleEffect(ds, &ds.Sales[i], inventory.DirectionRestore)
			}
			ds.Sales = append(ds.Sales[:i], ds.Sales[i+1:]...)
			return nil
		}
		return domain.ErrNotFound
	})
}

// Get devuelve la venta con items y totales recalculados.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	var out dto.SaleResponse
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		sale := ds.SaleByID(id)
		if sale == nil {
			return domain.ErrNotFound
		}
		out = saleResponse(ds, *sale, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List devuelve las ventas más recientes primero, con filtro opcional por
// folio, cliente o estado.
func (uc *UseCase) List(ctx context.Context, query string) ([]dto.SaleResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []dto.SaleResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		sales := make([]entity.Sale, len(ds.Sales))
		copy(sales, ds.Sales)
		sort.SliceStable(sales, func(i, j int) bool { return sales[i].Date > sales[j].Date })
		for _, sale := range sales {
			resp := saleResponse(ds, sale, false)
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

// resolveItems materializa las líneas del request: precio cero toma el precio
// actual del producto y costo ausente fotografía el costo actual. Si el
// producto no existe se conservan los valores capturados tal cual.
func resolveItems(ds *entity.Dataset, in []dto.SaleItemRequest) []entity.SaleItem {
	items := make([]entity.SaleItem, 0, len(in))
	for _, it := range in {
		item := entity.SaleItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		if it.UnitCost != nil {
			item.UnitCost = *it.UnitCost
		}
		if prd := ds.ProductByID(it.ProductID); prd != nil {
			if item.UnitPrice.IsZero() {
				item.UnitPrice = prd.Price
			}
			if it.UnitCost == nil {
				item.UnitCost = prd.Cost
			}
		}
		items = append(items, item)
	}
	return items
}

// checkStock verifica que cada línea quepa en el stock disponible. Lo que la
// reversión del efecto anterior va a devolver cuenta como disponible, de modo
// que re-cerrar una venta con una línea sin cambios no se rechaza por el
// stock que esa misma venta tiene tomado. No muta nada: acumula todos los
// faltantes y falla con el detalle completo.
func checkStock(ds *entity.Dataset, prev *entity.Sale, items []entity.SaleItem) error {
	reverted := map[string]int64{}
	if prev != nil && prev.Status == entity.SaleStatusClosed {
		for _, it := range prev.Items {
			reverted[it.ProductID] += it.Quantity
		}
	}

	requested := map[string]int64{}
	var shortages []domain.StockShortage
	seen := map[string]bool{}
	for _, it := range items {
		prd := ds.ProductByID(it.ProductID)
		if prd == nil {
			// Producto inexistente: la línea no tendrá efecto de stock.
			continue
		}
		requested[it.ProductID] += it.Quantity
		available := prd.Stock + reverted[it.ProductID]
		if available < requested[it.ProductID] && !seen[it.ProductID] {
			seen[it.ProductID] = true
			shortages = append(shortages, domain.StockShortage{
				SKU:       prd.SKU,
				Available: available,
				Requested: requested[it.ProductID],
			})
		}
	}
	if len(shortages) > 0 {
		return &domain.InsufficientStockError{Shortages: shortages}
	}
	return nil
}

func saleFolios(ds *entity.Dataset) []string {
	folios := make([]string, 0, len(ds.Sales))
	for _, s := range ds.Sales {
		folios = append(folios, s.Folio)
	}
	return folios
}

func saleResponse(ds *entity.Dataset, sale entity.Sale, withItems bool) dto.SaleResponse {
	clientName := "—"
	if cli := ds.ClientByID(sale.ClientID); cli != nil {
		clientName = cli.Name
	}
	totals := domainbilling.SaleTotals(sale.Items, ds.Settings.TaxRatePercent)
	resp := dto.SaleResponse{
		ID:         sale.ID,
		Date:       sale.Date,
		Folio:      sale.Folio,
		ClientID:   sale.ClientID,
		ClientName: clientName,
		Status:     sale.Status,
		Notes:      sale.Notes,
		Totals: dto.SaleTotalsResponse{
			Subtotal: totals.Subtotal,
			Tax:      totals.Tax,
			Total:    totals.Total,
			Cost:     totals.Cost,
			Margin:   totals.Margin,
		},
	}
	if withItems {
		for _, it := range sale.Items {
			sku, name := "—", "—"
			if prd := ds.ProductByID(it.ProductID); prd != nil {
				sku, name = prd.SKU, prd.Name
			}
			resp.Items = append(resp.Items, dto.SaleItemResponse{
				ProductID: it.ProductID,
				SKU:       sku,
				Name:      name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				UnitCost:  it.UnitCost,
				LineTotal: it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
			})
		}
	}
	return resp
}
