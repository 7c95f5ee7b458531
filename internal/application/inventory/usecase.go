// Package inventory contiene el libro de inventario: el catálogo de
// productos, los ajustes manuales de stock y el rastro de movimientos.
// Todo cambio de stock queda emparejado con exactamente un movimiento, de
// modo que la suma de entradas y salidas de un producto, partiendo de su
// stock inicial, siempre iguala su stock actual.
package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// UseCase casos de uso de inventario.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// CreateProduct da de alta un producto. Si trae stock inicial se registra el
// movimiento de entrada implícito "Alta de producto".
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out dto.ProductResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		prd := entity.Product{
			ID:         uuid.New().String(),
			SKU:        in.SKU,
			Name:       in.Name,
			Category:   in.Category,
			Cost:       in.Cost,
			Price:      in.Price,
			Stock:      in.Stock,
			MinStock:   in.MinStock,
			SupplierID: in.SupplierID,
		}
		ds.Products = append(ds.Products, prd)
		if prd.Stock > 0 {
			ds.Movements = append(ds.Movements, entity.StockMovement{
				ID:        uuid.New().String(),
				Date:      time.Now().Format("2006-01-02"),
				Kind:      entity.MovementKindIn,
				ProductID: prd.ID,
				Quantity:  prd.Stock,
				Note:      "Alta de producto",
			})
		}
		out = productResponse(ds, prd)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct reemplaza los campos del producto. El stock se edita aquí tal
// cual el usuario lo capture (como en el alta manual); los ajustes con rastro
// de movimiento van por Adjust.
func (uc *UseCase) UpdateProduct(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out dto.ProductResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		prd := ds.ProductByID(id)
		if prd == nil {
			return domain.ErrNotFound
		}
		prd.SKU = in.SKU
		prd.Name = in.Name
		prd.Category = in.Category
		prd.Cost = in.Cost
		prd.Price = in.Price
		prd.Stock = in.Stock
		prd.MinStock = in.MinStock
		prd.SupplierID = in.SupplierID
		out = productResponse(ds, *prd)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct elimina el producto del catálogo. Sus movimientos permanecen
// como rastro histórico con la referencia colgante.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Products {
			if ds.Products[i].ID == id {
				ds.Products = append(ds.Products[:i], ds.Products[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// GetProduct devuelve un producto por id.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		prd := ds.ProductByID(id)
		if prd == nil {
			return domain.ErrNotFound
		}
		out = productResponse(ds, *prd)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProducts lista el catálogo, con filtro opcional por SKU, nombre o
// categoría (búsqueda parcial, sin distinguir mayúsculas).
func (uc *UseCase) ListProducts(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []dto.ProductResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		for _, prd := range ds.Products {
			if q != "" &&
				!strings.Contains(strings.ToLower(prd.SKU), q) &&
				!strings.Contains(strings.ToLower(prd.Name), q) &&
				!strings.Contains(strings.ToLower(prd.Category), q) {
				continue
			}
			out = append(out, productResponse(ds, prd))
		}
		return nil
	})
	return out, err
}

// Adjust registra un ajuste manual de stock (entrada o salida) con su
// movimiento. Una salida mayor al stock disponible se rechaza.
func (uc *UseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) error {
	if in.ProductID == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if in.Kind != entity.MovementKindIn && in.Kind != entity.MovementKindOut {
		return domain.ErrInvalidInput
	}
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		prd := ds.ProductByID(in.ProductID)
		if prd == nil {
			return domain.ErrNotFound
		}
		if in.Kind == entity.MovementKindOut {
			if prd.Stock < in.Quantity {
				return &domain.InsufficientStockError{Shortages: []domain.StockShortage{
					{SKU: prd.SKU, Available: prd.Stock, Requested: in.Quantity},
				}}
			}
			prd.Stock -= in.Quantity
		} else {
			prd.Stock += in.Quantity
		}
		ds.Movements = append(ds.Movements, entity.StockMovement{
			ID:        uuid.New().String(),
			Date:      time.Now().Format("2006-01-02"),
			Kind:      in.Kind,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Note:      in.Note,
		})
		return nil
	})
}

// ListMovements devuelve los movimientos más recientes primero, con SKU y
// nombre resueltos ("—" si el producto ya no existe). limit <= 0 devuelve
// todos.
func (uc *UseCase) ListMovements(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	out := []dto.MovementResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		movs := make([]entity.StockMovement, len(ds.Movements))
		copy(movs, ds.Movements)
		sort.SliceStable(movs, func(i, j int) bool { return movs[i].Date > movs[j].Date })
		if limit > 0 && len(movs) > limit {
			movs = movs[:limit]
		}
		for _, m := range movs {
			sku, name := "—", "—"
			if prd := ds.ProductByID(m.ProductID); prd != nil {
				sku, name = prd.SKU, prd.Name
			}
			out = append(out, dto.MovementResponse{
				ID:          m.ID,
				Date:        m.Date,
				Kind:        m.Kind,
				ProductID:   m.ProductID,
				SKU:         sku,
				ProductName: name,
				Quantity:    m.Quantity,
				Note:        m.Note,
			})
		}
		return nil
	})
	return out, err
}

func productResponse(ds *entity.Dataset, prd entity.Product) dto.ProductResponse {
	supplierName := ""
	if sup := ds.SupplierByID(prd.SupplierID); sup != nil {
		supplierName = sup.Name
	}
	return dto.ProductResponse{
		ID:           prd.ID,
		SKU:          prd.SKU,
		Name:         prd.Name,
		Category:     prd.Category,
		Cost:         prd.Cost,
		Price:        prd.Price,
		Stock:        prd.Stock,
		MinStock:     prd.MinStock,
		SupplierID:   prd.SupplierID,
		SupplierName: supplierName,
		Critical:     prd.Critical(),
	}
}
