// Package storage define el puerto de persistencia que consumen los casos de
// uso. Todo el estado del negocio vive en un solo documento (Dataset) que se
// lee y se reemplaza completo; el patrón leer-todo/mutar/escribir-todo sería
// un lost-update con llamadores concurrentes, así que la implementación debe
// serializar cada Update.
package storage

import (
	"context"

	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// Ledger carga y reemplaza el dataset como una unidad.
type Ledger interface {
	// View ejecuta fn con una instantánea del dataset, solo lectura.
	View(ctx context.Context, fn func(ds *entity.Dataset) error) error

	// Update ejecuta fn sobre el dataset y, si fn no retorna error, persiste
	// el documento completo de forma atómica. Si fn falla no se escribe nada
	// (equivalente al Commit/Rollback de una transacción).
	Update(ctx context.Context, fn func(ds *entity.Dataset) error) error
}
