// Package settings expone la configuración del negocio.
package settings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// UseCase lectura y actualización de la configuración.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// Get devuelve la configuración vigente.
func (uc *UseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	var out dto.SettingsResponse
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		out = response(ds.Settings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza la configuración. La tasa de impuesto se recorta a 0..100;
// la nueva tasa solo afecta cálculos posteriores, las facturas emitidas
// conservan su fotografía.
func (uc *UseCase) Update(ctx context.Context, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if in.CompanyName == "" || len(in.Currency) != 3 {
		return nil, domain.ErrInvalidInput
	}
	rate := in.TaxRatePercent
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	if rate.GreaterThan(hundred) {
		rate = hundred
	}

	var out dto.SettingsResponse
	err := uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		ds.Settings = entity.Settings{
			CompanyName:    in.CompanyName,
			Currency:       in.Currency,
			TaxRatePercent: rate,
		}
		out = response(ds.Settings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func response(s entity.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		CompanyName:    s.CompanyName,
		Currency:       s.Currency,
		TaxRatePercent: s.TaxRatePercent,
	}
}
