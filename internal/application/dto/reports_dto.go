package dto

// ReportResponse reporte tabular genérico: columnas + filas ya resueltas
// (nombres en lugar de IDs, montos con dos decimales). El mismo payload
// alimenta la vista JSON y el render CSV.
type ReportResponse struct {
	Type    string     `json:"type"`
	From    string     `json:"from,omitempty"`
	To      string     `json:"to,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
