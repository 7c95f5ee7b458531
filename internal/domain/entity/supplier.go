package entity

// Supplier representa un proveedor.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Terms   string `json:"terms,omitempty"` // condiciones de pago, ej. "30 días"
}
