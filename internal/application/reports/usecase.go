// Package reports arma reportes tabulares sobre el documento del negocio y
// los exporta a CSV. Todas las filas salen ya resueltas: nombres en lugar de
// IDs y montos con dos decimales, listas para mostrarse o descargarse.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/alset-systems/erp-api/internal/application/dto"
	"github.com/alset-systems/erp-api/internal/application/storage"
	"github.com/alset-systems/erp-api/internal/domain"
	domainbilling "github.com/alset-systems/erp-api/internal/domain/billing"
	"github.com/alset-systems/erp-api/internal/domain/entity"
)

// Tipos de reporte disponibles.
const (
	TypeSales      = "sales"
	TypeInventory  = "inventory"
	TypeMovements  = "movements"
	TypeInvoices   = "invoices"
	TypePayroll    = "payroll"
	TypeAttendance = "attendance"
)

// UseCase generación de reportes.
type UseCase struct {
	ledger storage.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger storage.Ledger) *UseCase {
	return &UseCase{ledger: ledger}
}

// Build arma el reporte del tipo pedido acotado al rango de fechas
// [from, to] (extremos vacíos = sin cota). Un tipo desconocido es
// ErrInvalidInput.
func (uc *UseCase) Build(ctx context.Context, reportType, from, to string) (*dto.ReportResponse, error) {
	var build func(ds *entity.Dataset, from, to string) ([]string, [][]string)
	switch reportType {
	case TypeSales:
		build = salesReport
	case TypeInventory:
		build = inventoryReport
	case TypeMovements:
		build = movementsReport
	case TypeInvoices:
		build = invoicesReport
	case TypePayroll:
		build = payrollReport
	case TypeAttendance:
		build = attendanceReport
	default:
		return nil, fmt.Errorf("%w: tipo de reporte %q", domain.ErrInvalidInput, reportType)
	}

	out := dto.ReportResponse{Type: reportType, From: from, To: to}
	err := uc.ledger.View(ctx, func(ds *entity.Dataset) error {
		out.Columns, out.Rows = build(ds, from, to)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CSV renderiza el reporte como CSV (cabecera + filas) y devuelve los bytes
// junto con un nombre de archivo sugerido.
func (uc *UseCase) CSV(ctx context.Context, reportType, from, to string) ([]byte, string, error) {
	report, err := uc.Build(ctx, reportType, from, to)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(report.Columns); err != nil {
		return nil, "", fmt.Errorf("reports: escribir csv: %w", err)
	}
	if err := w.WriteAll(report.Rows); err != nil {
		return nil, "", fmt.Errorf("reports: escribir csv: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("reporte-%s.csv", reportType), nil
}

// inRange fecha dentro de [from, to]; extremos vacíos no acotan.
// Las fechas YYYY-MM-DD se comparan lexicográficamente.
func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

func salesReport(ds *entity.Dataset, from, to string) ([]string, [][]string) {
	cols := []string{"Fecha", "Folio", "Cliente", "Estado", "Subtotal", "Impuesto", "Total"}
	rows := [][]string{}
	sales := sortedByDate(ds.Sales, func(s entity.Sale) string { return s.Date })
	for _, sale := range sales {
		if !inRange(sale.Date, from, to) {
			continue
		}
		client := "—"
		if cli := ds.ClientByID(sale.ClientID); cli != nil {
			client = cli.Name
		}
		totals := domainbilling.SaleTotals(sale.Items, ds.Settings.TaxRatePercent)
		rows = append(rows, []string{
			sale.Date, sale.Folio, client, sale.Status,
			totals.Subtotal.StringFixed(2),
			totals.Tax.StringFixed(2),
			totals.Total.StringFixed(2),
		})
	}
	return cols, rows
}

// inventoryReport es una fotografía del catálogo; el rango de fechas no aplica.
func inventoryReport(ds *entity.Dataset, _, _ string) ([]string, [][]string) {
	cols := []string{"SKU", "Producto", "Categoría", "Stock", "Mínimo", "Crítico", "Costo", "Precio"}
	rows := [][]string{}
	for _, prd := range ds.Products {
		critical := "no"
		if prd.Critical() {
			critical = "sí"
		}
		rows = append(rows, []string{
			prd.SKU, prd.Name, prd.Category,
			fmt.Sprintf("%d", prd.Stock),
			fmt.Sprintf("%d", prd.MinStock),
			critical,
			prd.Cost.StringFixed(2),
			prd.Price.StringFixed(2),
		})
	}
	return cols, rows
}

func movementsReport(ds *entity.Dataset, from, to string) ([]string, [][]string) {
	cols := []string{"Fecha", "Tipo", "SKU", "Producto", "Cantidad", "Nota"}
	rows := [][]string{}
	movs := sortedByDate(ds.Movements, func(m entity.StockMovement) string { return m.Date })
	for _, mv := range movs {
		if !inRange(mv.Date, from, to) {
			continue
		}
		sku, name := "—", "—"
		if prd := ds.ProductByID(mv.ProductID); prd != nil {
			sku, name = prd.SKU, prd.Name
		}
		rows = append(rows, []string{
			mv.Date, mv.Kind, sku, name,
			fmt.Sprintf("%d", mv.Quantity),
			mv.Note,
		})
	}
	return cols, rows
}

func invoicesReport(ds *entity.Dataset, from, to string) ([]string, [][]string) {
	cols := []string{"Fecha", "Folio", "Cliente", "Estado", "Subtotal", "Impuesto", "Total", "Pagada"}
	rows := [][]string{}
	invs := sortedByDate(ds.Invoices, func(i entity.Invoice) string { return i.Date })
	for _, inv := range invs {
		if !inRange(inv.Date, from, to) {
			continue
		}
		client := "—"
		if cli := ds.ClientByID(inv.ClientID); cli != nil {
			client = cli.Name
		}
		paid := "no"
		if inv.Paid {
			paid = "sí"
		}
		rows = append(rows, []string{
			inv.Date, inv.Folio, client, inv.Status,
			inv.Subtotal.StringFixed(2),
			inv.Tax.StringFixed(2),
			inv.Total.StringFixed(2),
			paid,
		})
	}
	return cols, rows
}

func payrollReport(ds *entity.Dataset, from, to string) ([]string, [][]string) {
	cols := []string{"Fecha", "Empleado", "Bruto", "Deducciones", "Neto"}
	rows := [][]string{}
	slips := sortedByDate(ds.Payslips, func(p entity.Payslip) string { return p.Date })
	for _, slip := range slips {
		if !inRange(slip.Date, from, to) {
			continue
		}
		name := "—"
		if emp := ds.EmployeeByID(slip.EmployeeID); emp != nil {
			name = emp.Name
		}
		rows = append(rows, []string{
			slip.Date, name,
			slip.Gross.StringFixed(2),
			slip.Deductions.StringFixed(2),
			slip.Net.StringFixed(2),
		})
	}
	return cols, rows
}

func attendanceReport(ds *entity.Dataset, from, to string) ([]string, [][]string) {
	cols := []string{"Fecha", "Empleado", "Entrada", "Salida", "Minutos tarde"}
	rows := [][]string{}
	records := sortedByDate(ds.Attendance, func(a entity.AttendanceRecord) string { return a.Date })
	for _, rec := range records {
		if !inRange(rec.Date, from, to) {
			continue
		}
		name := "—"
		if emp := ds.EmployeeByID(rec.EmployeeID); emp != nil {
			name = emp.Name
		}
		rows = append(rows, []string{
			rec.Date, name, rec.CheckIn, rec.CheckOut,
			fmt.Sprintf("%d", rec.LateMinutes),
		})
	}
	return cols, rows
}

// sortedByDate copia y ordena descendente por fecha.
func sortedByDate[T any](items []T, date func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return date(out[i]) > date(out[j]) })
	return out
}
