package dto

import "github.com/shopspring/decimal"

// DashboardResponse KPIs del tablero principal para un rango de días.
type DashboardResponse struct {
	SalesTotal       decimal.Decimal `json:"sales_total"`
	SalesCount       int             `json:"sales_count"`
	InvoiceCount     int             `json:"invoice_count"`
	InvoicesPaid     int             `json:"invoices_paid"`
	CriticalProducts int             `json:"critical_products"`
	MonthlyPayroll   decimal.Decimal `json:"monthly_payroll"`
	LatestSales      []SaleResponse  `json:"latest_sales"`
}

// TopClientDTO total vendido a un cliente (solo ventas cerradas).
type TopClientDTO struct {
	ClientName string          `json:"client_name"`
	Total      decimal.Decimal `json:"total"`
}

// TopProductDTO unidades vendidas de un producto (solo ventas cerradas).
type TopProductDTO struct {
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Units       int64  `json:"units"`
}

// AnalyticsSummaryResponse analíticas del negocio sobre ventas cerradas en un
// rango, más el indicador de salud.
type AnalyticsSummaryResponse struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	Cost             decimal.Decimal `json:"cost"`
	Margin           decimal.Decimal `json:"margin"`
	Total            decimal.Decimal `json:"total"`
	MarginPercent    decimal.Decimal `json:"margin_percent"`
	TopClients       []TopClientDTO  `json:"top_clients"`
	TopProducts      []TopProductDTO `json:"top_products"`
	CriticalProducts int             `json:"critical_products"`
	UnpaidInvoices   int             `json:"unpaid_invoices"`
	HealthScore      int             `json:"health_score"` // 0..100
}
