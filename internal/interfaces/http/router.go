package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alset-systems/erp-api/internal/application/analytics"
	"github.com/alset-systems/erp-api/internal/application/attendance"
	"github.com/alset-systems/erp-api/internal/application/backup"
	"github.com/alset-systems/erp-api/internal/application/billing"
	"github.com/alset-systems/erp-api/internal/application/directory"
	"github.com/alset-systems/erp-api/internal/application/inventory"
	"github.com/alset-systems/erp-api/internal/application/payroll"
	"github.com/alset-systems/erp-api/internal/application/reports"
	"github.com/alset-systems/erp-api/internal/application/sales"
	"github.com/alset-systems/erp-api/internal/application/settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DirectoryUC  *directory.UseCase
	InventoryUC  *inventory.UseCase
	SalesUC      *sales.UseCase
	InvoiceUC    *billing.UseCase
	InvoicePDF   *billing.PDFUseCase
	PayrollUC    *payroll.UseCase
	AttendanceUC *attendance.UseCase
	ReportsUC    *reports.UseCase
	AnalyticsUC  *analytics.UseCase
	SettingsUC   *settings.UseCase
	BackupUC     *backup.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Directorio comercial
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	clients := api.Group("/clients")
	clients.Post("/", directoryHandler.CreateClient)
	clients.Get("/", directoryHandler.ListClients)
	clients.Get("/:id", directoryHandler.GetClient)
	clients.Put("/:id", directoryHandler.UpdateClient)
	clients.Delete("/:id", directoryHandler.DeleteClient)

	suppliers := api.Group("/suppliers")
	suppliers.Post("/", directoryHandler.CreateSupplier)
	suppliers.Get("/", directoryHandler.ListSuppliers)
	suppliers.Get("/:id", directoryHandler.GetSupplier)
	suppliers.Put("/:id", directoryHandler.UpdateSupplier)
	suppliers.Delete("/:id", directoryHandler.DeleteSupplier)

	// Catálogo e inventario
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	products := api.Group("/products")
	products.Post("/", inventoryHandler.CreateProduct)
	products.Get("/", inventoryHandler.ListProducts)
	products.Get("/:id", inventoryHandler.GetProduct)
	products.Put("/:id", inventoryHandler.UpdateProduct)
	products.Delete("/:id", inventoryHandler.DeleteProduct)

	invGroup := api.Group("/inventory")
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Ventas
	salesHandler := NewSalesHandler(deps.SalesUC)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.Get)
	salesGroup.Put("/:id", salesHandler.Update)
	salesGroup.Delete("/:id", salesHandler.Delete)
	salesGroup.Post("/:saleId/invoice", invoiceHandler.IssueFromSale)

	// Facturación
	invoices := api.Group("/invoices")
	invoices.Post("/", invoiceHandler.IssueManual)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Post("/:id/pay", invoiceHandler.MarkPaid)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Nómina
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	employees := api.Group("/employees")
	employees.Post("/", payrollHandler.CreateEmployee)
	employees.Get("/", payrollHandler.ListEmployees)
	employees.Put("/:id", payrollHandler.UpdateEmployee)
	employees.Delete("/:id", payrollHandler.DeleteEmployee)

	payrollGroup := api.Group("/payroll")
	payrollGroup.Post("/runs", payrollHandler.Run)
	payrollGroup.Get("/payslips", payrollHandler.ListPayslips)
	payrollGroup.Delete("/payslips/:id", payrollHandler.DeletePayslip)

	// Asistencia
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendanceGroup := api.Group("/attendance")
	attendanceGroup.Post("/check-in", attendanceHandler.CheckIn)
	attendanceGroup.Post("/check-out", attendanceHandler.CheckOut)
	attendanceGroup.Get("/summary", attendanceHandler.Summary)
	attendanceGroup.Get("/", attendanceHandler.List)
	attendanceGroup.Delete("/:id", attendanceHandler.Delete)

	// Reportes y analíticas
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/:type/csv", reportsHandler.CSV)
	reportsGroup.Get("/:type", reportsHandler.Build)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Get("/dashboard", analyticsHandler.Dashboard)
	analyticsGroup.Get("/summary", analyticsHandler.Summary)

	// Configuración y respaldos
	adminHandler := NewAdminHandler(deps.SettingsUC, deps.BackupUC)
	api.Get("/settings", adminHandler.GetSettings)
	api.Put("/settings", adminHandler.UpdateSettings)
	api.Get("/backup/export", adminHandler.Export)
	api.Post("/backup/import", adminHandler.Import)
}
