package entity

import "github.com/shopspring/decimal"

// Client representa un cliente del negocio.
type Client struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	TaxID   string          `json:"tax_id,omitempty"` // RFC
	Phone   string          `json:"phone,omitempty"`
	Email   string          `json:"email,omitempty"`
	Address string          `json:"address,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}
