package entity

import "github.com/shopspring/decimal"

// Settings configuración del negocio guardada dentro del dataset.
// TaxRatePercent se lee en el momento de calcular totales, nunca se cachea.
type Settings struct {
	CompanyName    string          `json:"company_name"`
	Currency       string          `json:"currency"` // código ISO 4217, ej. MXN
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
}

// DefaultSettings valores iniciales del negocio.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:    "ALSET Irrigation Systems",
		Currency:       "MXN",
		TaxRatePercent: decimal.NewFromInt(16),
	}
}
