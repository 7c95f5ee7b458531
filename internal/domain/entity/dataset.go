package entity

// Dataset es el documento completo del negocio. Se carga y se reemplaza como
// una sola unidad (replace-on-write); no existe persistencia parcial.
type Dataset struct {
	Settings   Settings           `json:"settings"`
	Clients    []Client           `json:"clients"`
	Suppliers  []Supplier         `json:"suppliers"`
	Products   []Product          `json:"products"`
	Movements  []StockMovement    `json:"movements"`
	Sales      []Sale             `json:"sales"`
	Invoices   []Invoice          `json:"invoices"`
	Employees  []Employee         `json:"employees"`
	Payslips   []Payslip          `json:"payslips"`
	Attendance []AttendanceRecord `json:"attendance"`
}

// NewDataset devuelve un dataset vacío con la configuración por defecto.
func NewDataset() *Dataset {
	return &Dataset{Settings: DefaultSettings()}
}

// ProductByID devuelve un puntero al producto dentro del dataset, o nil.
// El puntero apunta al slice del dataset: mutarlo muta el dataset.
func (d *Dataset) ProductByID(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// ClientByID devuelve el cliente o nil.
func (d *Dataset) ClientByID(id string) *Client {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			return &d.Clients[i]
		}
	}
	return nil
}

// SupplierByID devuelve el proveedor o nil.
func (d *Dataset) SupplierByID(id string) *Supplier {
	for i := range d.Suppliers {
		if d.Suppliers[i].ID == id {
			return &d.Suppliers[i]
		}
	}
	return nil
}

// SaleByID devuelve la venta o nil.
func (d *Dataset) SaleByID(id string) *Sale {
	for i := range d.Sales {
		if d.Sales[i].ID == id {
			return &d.Sales[i]
		}
	}
	return nil
}

// InvoiceByID devuelve la factura o nil.
func (d *Dataset) InvoiceByID(id string) *Invoice {
	for i := range d.Invoices {
		if d.Invoices[i].ID == id {
			return &d.Invoices[i]
		}
	}
	return nil
}

// InvoiceBySaleID devuelve la factura ligada a una venta, o nil.
func (d *Dataset) InvoiceBySaleID(saleID string) *Invoice {
	if saleID == "" {
		return nil
	}
	for i := range d.Invoices {
		if d.Invoices[i].SaleID == saleID {
			return &d.Invoices[i]
		}
	}
	return nil
}

// EmployeeByID devuelve el empleado o nil.
func (d *Dataset) EmployeeByID(id string) *Employee {
	for i := range d.Employees {
		if d.Employees[i].ID == id {
			return &d.Employees[i]
		}
	}
	return nil
}
