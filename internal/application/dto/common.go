package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Shortages any    `json:"shortages,omitempty"` // detalle de faltantes en INSUFFICIENT_STOCK
}
