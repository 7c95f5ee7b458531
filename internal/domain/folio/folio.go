// Package folio genera folios consecutivos legibles (ej. V-0001, F-0002).
package folio

import (
	"fmt"
	"regexp"
	"strconv"
)

var digits = regexp.MustCompile(`\d+`)

// Next devuelve el siguiente folio para una serie: toma el máximo sufijo
// numérico encontrado en los folios existentes (0 si no hay ninguno) y
// devuelve prefix-NNNN con relleno a 4 dígitos.
//
// Es un max-scan, no un contador persistido: tolera huecos y borrados fuera
// de orden. No es seguro ante creación concurrente; el store serializa las
// operaciones de escritura precisamente por esto.
func Next(prefix string, existing []string) string {
	max := 0
	for _, f := range existing {
		m := digits.FindString(f)
		if m == "" {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, max+1)
}
