// Package backup exporta e importa el documento completo del negocio como
// JSON. La importación decodifica sobre un dataset por defecto (las secciones
// ausentes quedan en su valor inicial) y reemplaza todo de una vez.
package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// UseCase exportación e importación del dataset.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// Export devuelve el documento completo como JSON indentado, listo para
// descargar como respaldo.
func (uc *UseCase) Export(ctx context.Context) ([]byte, error) {
	var data []byte
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		var mErr error
		data, mErr = json.MarshalIndent(ds, "", "  ")
		return mErr
	})
	if err != nil {
		return nil, fmt.Errorf("backup: exportar: %w", err)
	}
	return data, nil
}

// Import reemplaza el documento completo con el respaldo. Un JSON ilegible es
// ErrInvalidInput y no toca nada; las secciones ausentes del respaldo quedan
// en su valor por defecto.
func (uc *UseCase) Import(ctx context.Context, data []byte) error {
	incoming := entity.NewDataset()
	if err := json.Unmarshal(data, incoming); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.ledger.Update(ctx, func(ds *entity.Dataset) error {
		*ds = *incoming
		return nil
	})
}
