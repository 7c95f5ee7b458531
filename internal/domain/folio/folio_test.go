package folio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alset-systems/erp-api/internal/domain/folio"
)

func TestNext_SerieVacia(t *testing.T) {
	assert.Equal(t, "V-0001", folio.Next("V", nil))
	assert.Equal(t, "F-0001", folio.Next("F", []string{}))
}

// TestNext_TomaElMaximo verifica que se toma el máximo sufijo, no el último:
// con huecos en la serie el siguiente folio continúa desde el mayor.
func TestNext_TomaElMaximo(t *testing.T) {
	got := folio.Next("V", []string{"V-0001", "V-0003"})
	assert.Equal(t, "V-0004", got)
}

func TestNext_IgnoraFoliosSinNumero(t *testing.T) {
	got := folio.Next("V", []string{"borrador", "", "V-0002"})
	assert.Equal(t, "V-0003", got)
}

func TestNext_FoliosManualesSinRelleno(t *testing.T) {
	// Folios capturados a mano sin ceros a la izquierda también cuentan.
	got := folio.Next("F", []string{"F-7", "F-0003"})
	assert.Equal(t, "F-0008", got)
}

func TestNext_NoDesbordaElRelleno(t *testing.T) {
	got := folio.Next("V", []string{"V-9999"})
	assert.Equal(t, "V-10000", got)
}
