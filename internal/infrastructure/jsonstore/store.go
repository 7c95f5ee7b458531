// Package jsonstore implementa storage.Ledger sobre un archivo JSON único.
//
// Cada escritura reemplaza el documento completo: se escribe a un archivo
// temporal en el mismo directorio y se renombra sobre el definitivo, así una
// caída a mitad de escritura nunca deja un dataset corrupto a medias. Un
// RWMutex serializa las secuencias leer-mutar-escribir; sin él dos cierres de
// venta concurrentes podrían pasar ambos la verificación de stock contra la
// misma instantánea y sobregirar el inventario.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

var _ storage.Ledger = (*Store)(nil)

// Store persiste el dataset en un archivo JSON.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New construye el store. El archivo puede no existir todavía.
func New(path string) *Store {
	return &Store{path: path}
}

// View ejecuta fn con el dataset actual, solo lectura.
func (s *Store) View(ctx context.Context, fn func(ds *entity.Dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.load())
}

// Update ejecuta fn sobre el dataset y persiste el documento completo si fn
// no retorna error. La mutación ocurre sobre una copia en memoria: si fn
// falla, el archivo queda intacto.
func (s *Store) Update(ctx context.Context, fn func(ds *entity.Dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ds := s.load()
	if err := fn(ds); err != nil {
		return err
	}
	return s.save(ds)
}

// load lee el archivo y lo decodifica sobre un dataset con defaults, de modo
// que las secciones ausentes quedan en su valor inicial. Si el archivo no
// existe o no parsea, devuelve el dataset por defecto: un storage ausente o
// corrupto nunca propaga error al caller.
func (s *Store) load() *entity.Dataset {
	ds := entity.NewDataset()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			// Ilegible por permisos u otro motivo: mismo trato que ausente.
			return entity.NewDataset()
		}
		return ds
	}
	if err := json.Unmarshal(raw, ds); err != nil {
		return entity.NewDataset()
	}
	return ds
}

// save escribe el dataset con replace atómico (temp + rename).
func (s *Store) save(ds *entity.Dataset) error {
	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: codificar dataset: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonstore: crear directorio de datos: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("jsonstore: archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: escribir dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: reemplazar dataset: %w", err)
	}
	return nil
}
