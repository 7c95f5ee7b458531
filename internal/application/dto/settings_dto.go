package dto

import "github.com/shopspring/decimal"

// SettingsRequest body para actualizar la configuración del negocio.
// La tasa de impuesto se recorta a 0..100.
type SettingsRequest struct {
	CompanyName    string          `json:"company_name" validate:"required"`
	Currency       string          `json:"currency" validate:"required,len=3"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
}

// SettingsResponse configuración vigente.
type SettingsResponse struct {
	CompanyName    string          `json:"company_name"`
	Currency       string          `json:"currency"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
}
