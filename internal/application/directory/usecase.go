// Package directory administra el directorio comercial: clientes y
// proveedores. Borrar un cliente o proveedor no toca los documentos que lo
// referencian; las referencias colgantes se resuelven a "—" al mostrarse.
package directory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// UseCase CRUD de clientes y proveedores.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (uc *UseCase) CreateClient(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.ClientResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		cli := entity.Client{
			ID:      uuid.New().String(),
			Name:    in.Name,
			TaxID:   in.TaxID,
			Phone:   in.Phone,
			Email:   in.Email,
			Address: in.Address,
			Balance: in.Balance,
		}
		ds.Clients = append(ds.Clients, cli)
		out = clientResponse(cli)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UseCase) UpdateClient(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.ClientResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		cli := ds.ClientByID(id)
		if cli == nil {
			return domain.ErrNotFound
		}
		cli.Name = in.Name
		cli.TaxID = in.TaxID
		cli.Phone = in.Phone
		cli.Email = in.Email
		cli.Address = in.Address
		cli.Balance = in.Balance
		out = clientResponse(*cli)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UseCase) DeleteClient(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Clients {
			if ds.Clients[i].ID == id {
				ds.Clients = append(ds.Clients[:i], ds.Clients[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (uc *UseCase) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	var out dto.ClientResponse
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		cli := ds.ClientByID(id)
		if cli == nil {
			return domain.ErrNotFound
		}
		out = clientResponse(*cli)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients lista clientes con filtro opcional por nombre, teléfono o email.
func (uc *UseCase) ListClients(ctx context.Context, query string) ([]dto.ClientResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []dto.ClientResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		for _, cli := range ds.Clients {
			if q != "" &&
				!strings.Contains(strings.ToLower(cli.Name), q) &&
				!strings.Contains(strings.ToLower(cli.Phone), q) &&
				!strings.Contains(strings.ToLower(cli.Email), q) {
				continue
			}
			out = append(out, clientResponse(cli))
		}
		return nil
	})
	return out, err
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (uc *UseCase) CreateSupplier(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.SupplierResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		sup := entity.Supplier{
			ID:      uuid.New().String(),
			Name:    in.Name,
			Phone:   in.Phone,
			Email:   in.Email,
			Address: in.Address,
			Terms:   in.Terms,
		}
		ds.Suppliers = append(ds.Suppliers, sup)
		out = supplierResponse(sup)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UseCase) UpdateSupplier(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.SupplierResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		sup := ds.SupplierByID(id)
		if sup == nil {
			return domain.ErrNotFound
		}
		sup.Name = in.Name
		sup.Phone = in.Phone
		sup.Email = in.Email
		sup.Address = in.Address
		sup.Terms = in.Terms
		out = supplierResponse(*sup)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UseCase) DeleteSupplier(ctx context.Context, id string) error {
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		for i := range ds.Suppliers {
			if ds.Suppliers[i].ID == id {
				ds.Suppliers = append(ds.Suppliers[:i], ds.Suppliers[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (uc *UseCase) GetSupplier(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	var out dto.SupplierResponse
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		sup := ds.SupplierByID(id)
		if sup == nil {
			return domain.ErrNotFound
		}
		out = supplierResponse(*sup)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UseCase) ListSuppliers(ctx context.Context, query string) ([]dto.SupplierResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []dto.SupplierResponse{}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		for _, sup := range ds.Suppliers {
			if q != "" &&
				!strings.Contains(strings.ToLower(sup.Name), q) &&
				!strings.Contains(strings.ToLower(sup.Email), q) {
				continue
			}
			out = append(out, supplierResponse(sup))
		}
		return nil
	})
	return out, err
}

func clientResponse(cli entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:      cli.ID,
		Name:    cli.Name,
		TaxID:   cli.TaxID,
		Phone:   cli.Phone,
		Email:   cli.Email,
		Address: cli.Address,
		Balance: cli.Balance,
	}
}

func supplierResponse(sup entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:      sup.ID,
		Name:    sup.Name,
		Phone:   sup.Phone,
		Email:   sup.Email,
		Address: sup.Address,
		Terms:   sup.Terms,
	}
}
